package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/lyndonlyu/gearshift/internal/catalog"
	"github.com/lyndonlyu/gearshift/internal/detector"
	"github.com/lyndonlyu/gearshift/internal/selector"
	"github.com/spf13/cobra"
)

var modeFormat string

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Operating mode management",
}

var modeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all surfaced modes",
	RunE:  runModeList,
}

var modeShowCmd = &cobra.Command{
	Use:   "show <mode>",
	Short: "Show one mode's attributes",
	Args:  cobra.ExactArgs(1),
	RunE:  runModeShow,
}

var modeSelectCmd = &cobra.Command{
	Use:   "select <mode>",
	Short: "Pin a mode manually and show the change event",
	Args:  cobra.ExactArgs(1),
	RunE:  runModeSelect,
}

func init() {
	modeListCmd.Flags().StringVar(&modeFormat, "format", "", "Output format (json)")
	modeCmd.AddCommand(modeListCmd, modeShowCmd, modeSelectCmd)
	rootCmd.AddCommand(modeCmd)
}

func runModeList(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	entries := c.ListAll()

	if modeFormat == "json" {
		out, err := catalog.FormatModeListJSON(entries)
		if err != nil {
			return err
		}
		fmt.Println(out)
	} else {
		fmt.Print(catalog.FormatModeList(entries))
	}
	return nil
}

func runModeShow(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	id := args[0]
	m, ok := c.Get(id)
	if !ok {
		return fmt.Errorf("mode %q is not in the catalog", id)
	}

	card := catalog.FormatModeCard(id, m)
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		// Rendering is best-effort; fall back to the raw markdown.
		fmt.Print(card)
		return nil
	}
	rendered, err := r.Render(card)
	if err != nil {
		fmt.Print(card)
		return nil
	}
	fmt.Print(rendered)
	return nil
}

func runModeSelect(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	id := args[0]
	if _, ok := c.Get(id); !ok && id != catalog.Auto {
		// The selector itself never validates identifiers; warn but
		// proceed.
		fmt.Println(styleDim.Render(fmt.Sprintf("warning: %q is not in the catalog", id)))
	}

	sel := selector.New(detector.NewHeuristic(c))
	sel.Subscribe(func(e selector.ModeChangeEvent) {
		fmt.Printf("mode change: %s -> %s (manual=%v)\n", e.From, e.To, e.Manual)
	})
	sel.SetMode(id)

	label := catalog.FormatModeLabel(c, sel.CurrentMode())
	if sel.CurrentMode() == catalog.Auto {
		label = catalog.Auto
	}
	fmt.Println("Mode selected: " + styleMode.Render(label))
	return nil
}

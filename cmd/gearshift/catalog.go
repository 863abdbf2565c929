package main

import (
	"fmt"
	"os"

	"github.com/lyndonlyu/gearshift/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogInitForce bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Mode catalog management",
}

var catalogInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in catalog document to ~/.gearshift/modes.yaml",
	RunE:  runCatalogInit,
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate a catalog document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogCheck,
}

func init() {
	catalogInitCmd.Flags().BoolVar(&catalogInitForce, "force", false, "Overwrite an existing document")
	catalogCmd.AddCommand(catalogInitCmd, catalogCheckCmd)
	rootCmd.AddCommand(catalogCmd)
}

// loadCatalog resolves the catalog for the current invocation. An explicit
// --catalog path must exist; the default path falls back to the built-in
// catalog until `catalog init` has been run.
func loadCatalog() (*catalog.Catalog, error) {
	if catalogFlag != "" {
		return catalog.Init(catalogFlag)
	}
	path, err := defaultCatalogPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return catalog.Default(), nil
	}
	return catalog.Init(path)
}

func runCatalogInit(cmd *cobra.Command, args []string) error {
	path, err := defaultCatalogPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !catalogInitForce {
		return fmt.Errorf("catalog document already exists at %s (use --force to overwrite)", path)
	}

	data, err := catalog.DefaultDocument()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Println(styleSuccess.Render("Catalog written: " + path))
	return nil
}

func runCatalogCheck(cmd *cobra.Command, args []string) error {
	path := catalogFlag
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		p, err := defaultCatalogPath()
		if err != nil {
			return err
		}
		path = p
	}

	c, err := catalog.Load(path)
	if err != nil {
		fmt.Println(styleError.Render("Invalid: " + err.Error()))
		return err
	}

	entries := c.ListAll()
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Valid: %s", path)))
	fmt.Printf("Surfaced modes: %d\n", len(entries))
	f := c.Scoring().Factors
	fmt.Printf("Factor weights: keyword=%.2f file=%.2f domain=%.2f task=%.2f\n",
		f.KeywordComplexity.Weight, f.FileScope.Weight, f.DomainDepth.Weight, f.TaskType.Weight)
	return nil
}

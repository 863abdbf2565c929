package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lyndonlyu/gearshift/internal/catalog"
	"github.com/lyndonlyu/gearshift/internal/decisionlog"
	"github.com/lyndonlyu/gearshift/internal/detector"
	"github.com/lyndonlyu/gearshift/internal/scorer"
	"github.com/lyndonlyu/gearshift/internal/selector"
	"github.com/spf13/cobra"
)

var (
	detectFiles     []string
	detectFileCount int
	detectPin       string
	detectFormat    string
	detectNoLog     bool
	detectStats     bool
)

var detectCmd = &cobra.Command{
	Use:   "detect <query> [query...]",
	Short: "Classify tasks and suggest operating modes",
	Long:  "Runs each query through one selector session: detection results are printed in order, and --stats summarizes the session history.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().StringSliceVar(&detectFiles, "files", nil, "Active file paths (comma-separated)")
	detectCmd.Flags().IntVar(&detectFileCount, "file-count", 1, "Number of files in scope")
	detectCmd.Flags().StringVar(&detectPin, "pin", "", "Pin a mode before detection (passed to the detector as a hint)")
	detectCmd.Flags().StringVar(&detectFormat, "format", "", "Output format (json)")
	detectCmd.Flags().BoolVar(&detectNoLog, "no-log", false, "Skip appending outcomes to the decision log")
	detectCmd.Flags().BoolVar(&detectStats, "stats", false, "Print session history and per-mode counts")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	var log *decisionlog.Log
	if !detectNoLog {
		path, err := decisionLogPath()
		if err != nil {
			return err
		}
		log, err = decisionlog.Open(path)
		if err != nil {
			return err
		}
		defer log.Close()
	}

	sel := selector.New(detector.NewHeuristic(c))
	if detectPin != "" {
		sel.SetMode(detectPin)
	}

	var suggested *selector.ModeChangeEvent
	sel.Subscribe(func(e selector.ModeChangeEvent) {
		if !e.Manual {
			suggested = &e
		}
	})

	for _, query := range args {
		suggested = nil
		task := scorer.TaskContext{
			Query:       query,
			ActiveFiles: detectFiles,
			FileCount:   detectFileCount,
		}
		result, err := sel.ProcessQuery(task)
		if err != nil {
			return err
		}

		if detectFormat == "json" {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("json marshal: %w", err)
			}
			fmt.Println(string(data))
		} else {
			fmt.Println(styleBanner.Render("Detection: " + query))
			fmt.Printf("Mode:       %s\n", styleMode.Render(catalog.FormatModeLabel(c, result.Mode)))
			fmt.Printf("Complexity: %s\n", renderScore(result.ComplexityScore))
			fmt.Printf("Confidence: %s\n", renderConfidence(result.Confidence))
			fmt.Printf("Reasons:    %s\n", strings.Join(result.Reasons, "; "))
			if suggested != nil {
				fmt.Println(styleDim.Render(fmt.Sprintf("suggested switch: %s -> %s", suggested.From, suggested.To)))
			} else if detectPin != "" {
				fmt.Println(styleDim.Render("pinned to " + detectPin + "; suggestion recorded, no switch"))
			}
		}

		if log != nil {
			if _, err := log.Append(result.Mode, result.ComplexityScore, result.Confidence, query); err != nil {
				return err
			}
		}
	}

	if detectStats {
		fmt.Println(styleBanner.Render("Session history"))
		fmt.Print(selector.FormatHistory(sel.History()))
		fmt.Print(selector.FormatStats(sel.Stats()))
	}
	return nil
}

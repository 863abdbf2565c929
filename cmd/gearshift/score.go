package main

import (
	"fmt"

	"github.com/lyndonlyu/gearshift/internal/scorer"
	"github.com/spf13/cobra"
)

var (
	scoreFiles     []string
	scoreFileCount int
	scoreFormat    string
)

var scoreCmd = &cobra.Command{
	Use:   "score <query>",
	Short: "Show the complexity score and per-factor breakdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringSliceVar(&scoreFiles, "files", nil, "Active file paths (comma-separated)")
	scoreCmd.Flags().IntVar(&scoreFileCount, "file-count", 1, "Number of files in scope")
	scoreCmd.Flags().StringVar(&scoreFormat, "format", "", "Output format (json)")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	task := scorer.TaskContext{
		Query:       args[0],
		ActiveFiles: scoreFiles,
		FileCount:   scoreFileCount,
	}
	contributions, score := scorer.Breakdown(task, c.Scoring())

	if scoreFormat == "json" {
		out, err := scorer.FormatBreakdownJSON(contributions, score)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Print(scorer.FormatBreakdown(contributions, score))
	return nil
}

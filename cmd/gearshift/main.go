package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var catalogFlag string

var rootCmd = &cobra.Command{
	Use:   "gearshift",
	Short: "Gearshift - task complexity classification and mode selection",
	Long:  "Gearshift classifies a task description into an operating mode that controls token budget, sub-agent concurrency, and reasoning depth.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gearshift v0.1.0")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "",
		"Path to the mode catalog document (default ~/.gearshift/modes.yaml)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

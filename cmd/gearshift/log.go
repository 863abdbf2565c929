package main

import (
	"fmt"

	"github.com/lyndonlyu/gearshift/internal/decisionlog"
	"github.com/spf13/cobra"
)

var (
	logLimit  int
	logFormat string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Decision log management",
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded detection decisions, newest first",
	RunE:  runLogList,
}

var logClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded decisions",
	RunE:  runLogClear,
}

func init() {
	logListCmd.Flags().IntVar(&logLimit, "limit", 20, "Maximum records to show (0 for all)")
	logListCmd.Flags().StringVar(&logFormat, "format", "", "Output format (json)")
	logCmd.AddCommand(logListCmd, logClearCmd)
	rootCmd.AddCommand(logCmd)
}

func openLog() (*decisionlog.Log, error) {
	path, err := decisionLogPath()
	if err != nil {
		return nil, err
	}
	return decisionlog.Open(path)
}

func runLogList(cmd *cobra.Command, args []string) error {
	log, err := openLog()
	if err != nil {
		return err
	}
	defer log.Close()

	records, err := log.List(logLimit)
	if err != nil {
		return err
	}

	if logFormat == "json" {
		out, err := decisionlog.FormatRecordListJSON(records)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Print(decisionlog.FormatRecordList(records))
	return nil
}

func runLogClear(cmd *cobra.Command, args []string) error {
	log, err := openLog()
	if err != nil {
		return err
	}
	defer log.Close()

	removed, err := log.Clear()
	if err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Removed %d decision(s)", removed)))
	return nil
}

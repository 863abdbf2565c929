package decisionlog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatRecordList returns a formatted table of decision records.
// Returns "No decisions recorded.\n" if the slice is empty.
func FormatRecordList(records []Record) string {
	if len(records) == 0 {
		return "No decisions recorded.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-36s %-10s %-6s %-6s %-21s %s\n",
		"ID", "MODE", "SCORE", "CONF", "CREATED", "QUERY")
	for _, r := range records {
		query := r.Query
		if runes := []rune(query); len(runes) > 40 {
			query = string(runes[:40]) + "…"
		}
		fmt.Fprintf(&b, "%-36s %-10s %-6d %-6.2f %-21s %s\n",
			r.ID, r.Mode, r.Score, r.Confidence, r.CreatedAt, query)
	}
	return b.String()
}

// FormatRecordListJSON returns the records as indented JSON.
func FormatRecordListJSON(records []Record) (string, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("decisionlog: json marshal: %w", err)
	}
	return string(data), nil
}

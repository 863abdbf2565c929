package selector

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// FormatHistory returns a formatted table of history entries, oldest
// first. Returns "No history entries.\n" if the slice is empty.
func FormatHistory(entries []HistoryEntry) string {
	if len(entries) == 0 {
		return "No history entries.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %-25s %s\n", "MODE", "TIMESTAMP", "QUERY")
	for _, e := range entries {
		fmt.Fprintf(&b, "%-12s %-25s %s\n",
			e.Mode, e.Timestamp.Format("2006-01-02T15:04:05Z07:00"), e.Query)
	}
	return b.String()
}

// FormatStats returns per-mode detection counts, sorted by mode id for
// stable output.
func FormatStats(stats map[string]int) string {
	if len(stats) == 0 {
		return "No history entries.\n"
	}
	modes := make([]string, 0, len(stats))
	for m := range stats {
		modes = append(modes, m)
	}
	sort.Strings(modes)

	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %s\n", "MODE", "COUNT")
	for _, m := range modes {
		fmt.Fprintf(&b, "%-12s %d\n", m, stats[m])
	}
	return b.String()
}

// FormatHistoryJSON returns the history entries as indented JSON.
func FormatHistoryJSON(entries []HistoryEntry) (string, error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("selector: json marshal: %w", err)
	}
	return string(data), nil
}

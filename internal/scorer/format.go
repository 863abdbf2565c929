package scorer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatBreakdown formats factor contributions and the final score as a
// human-readable table.
func FormatBreakdown(contributions []Contribution, score int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %-6s %-8s %s\n", "FACTOR", "BASE", "WEIGHT", "WEIGHTED")
	for _, c := range contributions {
		fmt.Fprintf(&b, "%-20s %-6.1f %-8.2f %.2f\n", c.Factor, c.Base, c.Weight, c.Weighted)
	}
	fmt.Fprintf(&b, "Score: %d/10\n", score)
	return b.String()
}

// FormatBreakdownJSON formats contributions and the final score as
// indented JSON.
func FormatBreakdownJSON(contributions []Contribution, score int) (string, error) {
	payload := struct {
		Factors []Contribution `json:"factors"`
		Score   int            `json:"score"`
	}{Factors: contributions, Score: score}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("scorer: json marshal: %w", err)
	}
	return string(data), nil
}

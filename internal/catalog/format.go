package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatModeList formats catalog entries as a human-readable table.
func FormatModeList(entries []Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %-4s %-12s %-13s %-14s %s\n",
		"ID", "", "NAME", "TOKEN_BUDGET", "THINKING", "MAX_SUBAGENTS")
	for _, e := range entries {
		fmt.Fprintf(&b, "%-12s %-4s %-12s %-13d %-14s %d\n",
			e.ID, e.Mode.Icon, e.Mode.Name, e.Mode.TokenBudget,
			e.Mode.ThinkingDepth, e.Mode.MaxSubagents)
	}
	return b.String()
}

// FormatModeListJSON formats catalog entries as indented JSON.
func FormatModeListJSON(entries []Entry) (string, error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("catalog: json marshal: %w", err)
	}
	return string(data), nil
}

// FormatModeCard renders a single mode as markdown, suitable for a
// terminal markdown renderer.
func FormatModeCard(id string, m Mode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s (`%s`)\n\n", m.Icon, m.Name, id)
	if m.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", m.Description)
	}
	fmt.Fprintf(&b, "- Token budget: %d\n", m.TokenBudget)
	fmt.Fprintf(&b, "- Thinking depth: %s\n", m.ThinkingDepth)
	fmt.Fprintf(&b, "- Max sub-agents: %d\n", m.MaxSubagents)
	return b.String()
}

// FormatModeLabel returns "icon Name" for a known mode. Unknown modes
// degrade to a placeholder since display is best-effort.
func FormatModeLabel(c *Catalog, id string) string {
	m, ok := c.Get(id)
	if !ok {
		return fmt.Sprintf("(unknown mode %q)", id)
	}
	if m.Icon == "" {
		return m.Name
	}
	return m.Icon + " " + m.Name
}

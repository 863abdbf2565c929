package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleBanner  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleMode    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	styleScoreLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleScoreMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleScoreHigh = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// renderScore colors the complexity score by band: 1-3 green, 4-7
// yellow, 8-10 red.
func renderScore(score int) string {
	label := fmt.Sprintf("%d/10", score)
	switch {
	case score >= 8:
		return styleScoreHigh.Render(label)
	case score >= 4:
		return styleScoreMid.Render(label)
	default:
		return styleScoreLow.Render(label)
	}
}

// renderConfidence formats a 0-1 confidence as a dim percentage.
func renderConfidence(confidence float64) string {
	return styleDim.Render(fmt.Sprintf("%.0f%%", confidence*100))
}

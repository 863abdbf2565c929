// Package detector turns a task context into a mode suggestion with a
// complexity score, a confidence value, and ranked reasons.
package detector

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lyndonlyu/gearshift/internal/catalog"
	"github.com/lyndonlyu/gearshift/internal/scorer"
)

// ErrEmptyQuery is returned when the task context has no query text.
var ErrEmptyQuery = errors.New("detector: empty query")

// Context is the full input to a detection: the task plus the selector's
// derived fields. UserPreference is empty unless the selector is pinned
// to a manual mode.
type Context struct {
	Task           scorer.TaskContext `json:"task"`
	PreviousMode   string             `json:"previous_mode,omitempty"`
	UserPreference string             `json:"user_preference,omitempty"`
}

// Result is a mode suggestion. Reasons are ordered most-significant
// first.
type Result struct {
	Mode            string   `json:"mode"`
	ComplexityScore int      `json:"complexity_score"`
	Confidence      float64  `json:"confidence"`
	Reasons         []string `json:"reasons"`
}

// Detector suggests a mode for a task context. Implementations must be
// deterministic for a given context.
type Detector interface {
	Detect(ctx Context) (Result, error)
}

// Heuristic is the built-in detector: it scores the task against the
// catalog's factor weights and maps the score onto mode bands.
type Heuristic struct {
	catalog *catalog.Catalog
}

// NewHeuristic creates a detector backed by the given catalog.
func NewHeuristic(c *catalog.Catalog) *Heuristic {
	return &Heuristic{catalog: c}
}

// Score bands. The bands cover [1,10] without gaps so every score maps
// to a mode.
func bandMode(score int) string {
	switch {
	case score >= 9:
		return "design"
	case score >= 7:
		return "deep"
	case score >= 4:
		return "standard"
	default:
		return "quick"
	}
}

// Detect scores the task and suggests a mode. A pinned user preference
// never overrides the banded suggestion; it only moves confidence and is
// reported as a reason.
func (h *Heuristic) Detect(ctx Context) (Result, error) {
	if ctx.Task.Query == "" {
		return Result{}, ErrEmptyQuery
	}

	contributions, score := scorer.Breakdown(ctx.Task, h.catalog.Scoring())
	mode := bandMode(score)

	reasons := []string{
		fmt.Sprintf("complexity %d/10 maps to %s", score, mode),
	}
	if dominant, ok := dominantFactor(contributions); ok {
		reasons = append(reasons,
			fmt.Sprintf("dominant factor %s (+%.1f)", dominant.Factor, dominant.Weighted))
	}

	confidence := baseConfidence(contributions)
	switch {
	case ctx.UserPreference == "":
		// Auto mode passes no hint.
	case ctx.UserPreference == mode:
		confidence += 0.15
		reasons = append(reasons, fmt.Sprintf("agrees with pinned mode %s", ctx.UserPreference))
	default:
		confidence -= 0.1
		reasons = append(reasons, fmt.Sprintf("differs from pinned mode %s", ctx.UserPreference))
	}
	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}

	return Result{
		Mode:            mode,
		ComplexityScore: score,
		Confidence:      confidence,
		Reasons:         reasons,
	}, nil
}

// baseConfidence grows with the number of factors that actually
// contributed: a score supported by several signals is more trustworthy
// than one carried by a single factor.
func baseConfidence(contributions []scorer.Contribution) float64 {
	active := 0
	for _, c := range contributions {
		if c.Weighted > 0 {
			active++
		}
	}
	return 0.4 + float64(active)/10
}

func dominantFactor(contributions []scorer.Contribution) (scorer.Contribution, bool) {
	if len(contributions) == 0 {
		return scorer.Contribution{}, false
	}
	sorted := make([]scorer.Contribution, len(contributions))
	copy(sorted, contributions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weighted > sorted[j].Weighted
	})
	if sorted[0].Weighted <= 0 {
		return scorer.Contribution{}, false
	}
	return sorted[0], true
}

// Package scorer reduces a task description plus file context into a
// bounded complexity score using the catalog's weighted factors.
package scorer

import (
	"math"
	"strings"

	"github.com/lyndonlyu/gearshift/internal/catalog"
)

// TaskContext is the per-call input to scoring. It is transient and never
// retained after the call.
type TaskContext struct {
	Query       string   `json:"query"`
	ActiveFiles []string `json:"active_files,omitempty"`
	FileCount   int      `json:"file_count"` // defaults to 1 when unset
}

// Contribution is one factor's share of the accumulated score.
type Contribution struct {
	Factor   string  `json:"factor"`
	Base     float64 `json:"base"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// Extension classes for the domain-depth factor. Polyglot and UI-heavy
// edits are costlier than plain typed-source edits.
var (
	systemsExts = []string{".rs", ".c", ".cc", ".cpp", ".h", ".go", ".zig"}
	uiExts      = []string{".tsx", ".jsx", ".vue", ".svelte"}
	typedExts   = []string{".ts"}
)

// Score returns the complexity of the task in [1,10]. Deterministic and
// side-effect-free: the same context and config always produce the same
// score. The clamp runs after rounding so saturated factors or large
// weights can never push the result outside the interval.
func Score(ctx TaskContext, cfg catalog.ScoringConfig) int {
	_, score := Breakdown(ctx, cfg)
	return score
}

// Breakdown returns each factor's contribution alongside the final score.
func Breakdown(ctx TaskContext, cfg catalog.ScoringConfig) ([]Contribution, int) {
	query := strings.ToLower(ctx.Query)
	f := cfg.Factors

	contributions := []Contribution{
		contribution("keyword_complexity", keywordBase(query, f.KeywordComplexity), f.KeywordComplexity.Weight),
		contribution("file_scope", fileScopeBase(ctx.FileCount), f.FileScope.Weight),
		contribution("domain_depth", domainDepthBase(ctx.ActiveFiles), f.DomainDepth.Weight),
		contribution("task_type", taskTypeBase(query), f.TaskType.Weight),
	}

	var total float64
	for _, c := range contributions {
		total += c.Weighted
	}

	score := int(math.Round(total))
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return contributions, score
}

func contribution(factor string, base, weight float64) Contribution {
	return Contribution{Factor: factor, Base: base, Weight: weight, Weighted: base * weight}
}

// keywordBase checks the buckets in high, medium, low order; the first
// bucket with a match wins and the rest are not consulted. Matching is
// substring-based on the lowered query — a keyword inside an unrelated
// word still matches, which is a deliberate permissive bias kept for
// compatibility.
func keywordBase(query string, kw catalog.KeywordFactor) float64 {
	switch {
	case containsAny(query, kw.High):
		return 8
	case containsAny(query, kw.Medium):
		return 5
	case containsAny(query, kw.Low):
		return 2
	default:
		return 0
	}
}

// fileScopeBase maps the file count onto strict descending thresholds.
func fileScopeBase(count int) float64 {
	if count <= 0 {
		count = 1
	}
	switch {
	case count > 10:
		return 10
	case count > 5:
		return 7
	case count > 1:
		return 4
	default:
		return 2
	}
}

// domainDepthBase inspects active-file extensions. Any systems-language
// file dominates; otherwise mixed UI + typed source costs more than UI
// alone. An empty file list lands on the floor value.
func domainDepthBase(files []string) float64 {
	var hasUI, hasTyped bool
	for _, f := range files {
		name := strings.ToLower(f)
		if hasSuffixAny(name, systemsExts) {
			return 8
		}
		if hasSuffixAny(name, uiExts) {
			hasUI = true
		}
		if hasSuffixAny(name, typedExts) {
			hasTyped = true
		}
	}
	switch {
	case hasUI && hasTyped:
		return 6
	case hasUI:
		return 4
	default:
		return 2
	}
}

// Task-type phrase classes, checked in fixed priority order.
var (
	designPhrases    = []string{"design", "architecture"}
	featurePhrases   = []string{"implement", "feature", "add support"}
	componentPhrases = []string{"component", "build", "create"}
	fixPhrases       = []string{"fix", "update", "bug", "patch"}
)

func taskTypeBase(query string) float64 {
	switch {
	case containsAny(query, designPhrases):
		return 10
	case containsAny(query, featurePhrases):
		return 6
	case containsAny(query, componentPhrases):
		return 4
	case containsAny(query, fixPhrases):
		return 2
	default:
		return 1
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func hasSuffixAny(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

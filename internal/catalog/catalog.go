// Package catalog loads and caches the declarative mode catalog: per-mode
// static attributes (icon, token budget, thinking depth, sub-agent limit)
// and the complexity-scoring configuration used by the scorer.
package catalog

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Auto is the distinguished selector state in which the mode is derived
// from detection instead of being pinned by the user. It is not a catalog
// entry.
const Auto = "auto"

// primaryModes lists the catalog entries surfaced unconditionally, in
// display order.
var primaryModes = []string{"quick", "standard", "deep", "design"}

// advancedModes is the allow-list of advanced feature modes. An entry is
// surfaced by ListAll only if its catalog entry declares an icon; entries
// without an icon are filtered silently.
var advancedModes = []string{"research", "review", "refactor", "brainstorm"}

// Mode holds the static attributes of one operating mode.
type Mode struct {
	Icon          string `yaml:"icon"           json:"icon,omitempty"`
	Name          string `yaml:"name"           json:"name"`
	Description   string `yaml:"description"    json:"description,omitempty"`
	TokenBudget   int    `yaml:"token_budget"   json:"token_budget"`
	ThinkingDepth string `yaml:"thinking_depth" json:"thinking_depth"`
	MaxSubagents  int    `yaml:"max_subagents"  json:"max_subagents"`
}

// Entry pairs a mode identifier with its attributes, preserving catalog
// display order.
type Entry struct {
	ID   string `json:"id"`
	Mode Mode   `json:"mode"`
}

// KeywordFactor is the keyword-complexity factor: a weight plus three
// keyword buckets checked in high, medium, low order (first match wins).
type KeywordFactor struct {
	Weight float64  `yaml:"weight"`
	High   []string `yaml:"high"`
	Medium []string `yaml:"medium"`
	Low    []string `yaml:"low"`
}

// Factor is a weighted scoring factor without keyword buckets.
type Factor struct {
	Weight float64 `yaml:"weight"`
}

// Factors holds the four scoring factors.
type Factors struct {
	KeywordComplexity KeywordFactor `yaml:"keyword_complexity"`
	FileScope         Factor        `yaml:"file_scope"`
	DomainDepth       Factor        `yaml:"domain_depth"`
	TaskType          Factor        `yaml:"task_type"`
}

// ScoringConfig is the complexity-scoring section of the catalog document.
type ScoringConfig struct {
	Factors Factors `yaml:"factors"`
}

// Document is the on-disk catalog schema.
type Document struct {
	Modes             map[string]Mode `yaml:"modes"`
	ComplexityScoring ScoringConfig   `yaml:"complexity_scoring"`
}

// Catalog is an immutable, validated view of a catalog document.
type Catalog struct {
	modes   map[string]Mode
	scoring ScoringConfig
}

// Parse validates a catalog document. Bucket keywords are normalized to
// lower case so scoring can match without re-folding.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	if err := validate(&doc); err != nil {
		return nil, err
	}
	kw := &doc.ComplexityScoring.Factors.KeywordComplexity
	kw.High = lowercase(kw.High)
	kw.Medium = lowercase(kw.Medium)
	kw.Low = lowercase(kw.Low)
	return &Catalog{modes: doc.Modes, scoring: doc.ComplexityScoring}, nil
}

// Load reads and parses the catalog document at path. A missing file is a
// fatal configuration error: there is no fallback document.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}

// validate checks the document eagerly so malformed fields fail at load
// time instead of propagating into the scorer.
func validate(doc *Document) error {
	if len(doc.Modes) == 0 {
		return fmt.Errorf("catalog: document declares no modes")
	}
	for id, m := range doc.Modes {
		if m.Name == "" {
			return fmt.Errorf("catalog: mode %q: missing name", id)
		}
		if m.TokenBudget <= 0 {
			return fmt.Errorf("catalog: mode %q: token_budget must be positive, got %d", id, m.TokenBudget)
		}
	}
	f := doc.ComplexityScoring.Factors
	for _, w := range []struct {
		name   string
		weight float64
	}{
		{"keyword_complexity", f.KeywordComplexity.Weight},
		{"file_scope", f.FileScope.Weight},
		{"domain_depth", f.DomainDepth.Weight},
		{"task_type", f.TaskType.Weight},
	} {
		if w.weight < 0 {
			return fmt.Errorf("catalog: factor %s: weight must be non-negative, got %v", w.name, w.weight)
		}
	}
	return nil
}

func lowercase(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, k := range keywords {
		out[i] = strings.ToLower(k)
	}
	return out
}

// Get looks up a mode by identifier. The boolean is false when the mode is
// not in the catalog; callers must check it.
func (c *Catalog) Get(id string) (Mode, bool) {
	m, ok := c.modes[id]
	return m, ok
}

// ListAll returns the primary modes followed by the advanced allow-list.
// Advanced entries without an icon are skipped; that is content curation,
// not an error.
func (c *Catalog) ListAll() []Entry {
	entries := make([]Entry, 0, len(primaryModes)+len(advancedModes))
	for _, id := range primaryModes {
		if m, ok := c.modes[id]; ok {
			entries = append(entries, Entry{ID: id, Mode: m})
		}
	}
	for _, id := range advancedModes {
		m, ok := c.modes[id]
		if !ok || m.Icon == "" {
			continue
		}
		entries = append(entries, Entry{ID: id, Mode: m})
	}
	return entries
}

// Scoring returns the complexity-scoring configuration.
func (c *Catalog) Scoring() ScoringConfig {
	return c.scoring
}

// ---------------------------------------------------------------------------
// Process-wide cache
// ---------------------------------------------------------------------------

var (
	sharedMu sync.Mutex
	shared   *Catalog
)

// Init loads the catalog at path into the process-wide cache. The first
// successful call wins; later calls return the cached catalog without
// touching disk.
func Init(path string) (*Catalog, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared != nil {
		return shared, nil
	}
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	shared = c
	return shared, nil
}

// Shared returns the cached catalog. It is an error to call Shared before
// a successful Init.
func Shared() (*Catalog, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		return nil, fmt.Errorf("catalog: not initialized; call Init first")
	}
	return shared, nil
}

// Reset clears the process-wide cache so tests can reinitialize without a
// process restart.
func Reset() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	shared = nil
}

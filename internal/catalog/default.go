package catalog

import "gopkg.in/yaml.v3"

// defaultDocument returns the built-in catalog shipped with gearshift.
// `catalog init` writes it to disk; tests parse it directly.
func defaultDocument() *Document {
	return &Document{
		Modes: map[string]Mode{
			"quick": {
				Icon: "⚡", Name: "Quick", TokenBudget: 4000,
				ThinkingDepth: "shallow", MaxSubagents: 1,
				Description: "Small fixes and one-file edits.",
			},
			"standard": {
				Icon: "🔧", Name: "Standard", TokenBudget: 12000,
				ThinkingDepth: "normal", MaxSubagents: 2,
				Description: "Feature work within an established structure.",
			},
			"deep": {
				Icon: "🔬", Name: "Deep", TokenBudget: 32000,
				ThinkingDepth: "extended", MaxSubagents: 4,
				Description: "Cross-cutting changes that need sustained reasoning.",
			},
			"design": {
				Icon: "📐", Name: "Design", TokenBudget: 64000,
				ThinkingDepth: "maximal", MaxSubagents: 8,
				Description: "Architecture and system design work.",
			},
			"research": {
				Icon: "🔍", Name: "Research", TokenBudget: 24000,
				ThinkingDepth: "extended", MaxSubagents: 3,
				Description: "Open-ended exploration of an unfamiliar codebase.",
			},
			"review": {
				Icon: "🧐", Name: "Review", TokenBudget: 16000,
				ThinkingDepth: "normal", MaxSubagents: 2,
				Description: "Code review and critique.",
			},
			// No icon: stays hidden from ListAll until it is curated in.
			"refactor": {
				Name: "Refactor", TokenBudget: 20000,
				ThinkingDepth: "normal", MaxSubagents: 2,
			},
			"brainstorm": {
				Icon: "💡", Name: "Brainstorm", TokenBudget: 8000,
				ThinkingDepth: "shallow", MaxSubagents: 1,
				Description: "Divergent idea generation, no code changes.",
			},
		},
		ComplexityScoring: ScoringConfig{
			Factors: Factors{
				KeywordComplexity: KeywordFactor{
					Weight: 0.3,
					High:   []string{"architecture", "redesign", "migrate", "distributed", "concurrency", "security"},
					Medium: []string{"refactor", "implement", "integrate", "optimize", "api"},
					Low:    []string{"fix", "typo", "rename", "comment", "format"},
				},
				FileScope:   Factor{Weight: 0.25},
				DomainDepth: Factor{Weight: 0.2},
				TaskType:    Factor{Weight: 0.25},
			},
		},
	}
}

// Default returns the built-in catalog, already validated.
func Default() *Catalog {
	doc := defaultDocument()
	kw := &doc.ComplexityScoring.Factors.KeywordComplexity
	kw.High = lowercase(kw.High)
	kw.Medium = lowercase(kw.Medium)
	kw.Low = lowercase(kw.Low)
	return &Catalog{modes: doc.Modes, scoring: doc.ComplexityScoring}
}

// DefaultDocument returns the built-in catalog as a yaml document.
func DefaultDocument() ([]byte, error) {
	return yaml.Marshal(defaultDocument())
}

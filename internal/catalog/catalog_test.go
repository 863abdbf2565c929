package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDocumentParses(t *testing.T) {
	data, err := DefaultDocument()
	require.NoError(t, err)

	c, err := Parse(data)
	require.NoError(t, err)

	m, ok := c.Get("quick")
	assert.True(t, ok)
	assert.Equal(t, "Quick", m.Name)
	assert.Equal(t, 4000, m.TokenBudget)
}

func TestGet(t *testing.T) {
	c := Default()

	t.Run("known mode", func(t *testing.T) {
		m, ok := c.Get("design")
		assert.True(t, ok)
		assert.Equal(t, "Design", m.Name)
		assert.Equal(t, 64000, m.TokenBudget)
		assert.Equal(t, 8, m.MaxSubagents)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, ok := c.Get("warp")
		assert.False(t, ok)
	})

	t.Run("auto is not a catalog entry", func(t *testing.T) {
		_, ok := c.Get(Auto)
		assert.False(t, ok)
	})
}

func TestListAll(t *testing.T) {
	c := Default()
	entries := c.ListAll()

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}

	// Primary modes first, in display order.
	require.GreaterOrEqual(t, len(ids), 4)
	assert.Equal(t, []string{"quick", "standard", "deep", "design"}, ids[:4])

	// Advanced modes with an icon are surfaced.
	assert.Contains(t, ids, "research")
	assert.Contains(t, ids, "brainstorm")

	// refactor has no icon and is filtered silently.
	assert.NotContains(t, ids, "refactor")
}

func TestParseValidation(t *testing.T) {
	t.Run("no modes", func(t *testing.T) {
		_, err := Parse([]byte(`complexity_scoring: {factors: {}}`))
		assert.ErrorContains(t, err, "no modes")
	})

	t.Run("missing name", func(t *testing.T) {
		doc := `
modes:
  quick:
    token_budget: 4000
`
		_, err := Parse([]byte(doc))
		assert.ErrorContains(t, err, "missing name")
	})

	t.Run("non-positive token budget", func(t *testing.T) {
		doc := `
modes:
  quick:
    name: Quick
    token_budget: 0
`
		_, err := Parse([]byte(doc))
		assert.ErrorContains(t, err, "token_budget")
	})

	t.Run("negative weight", func(t *testing.T) {
		doc := `
modes:
  quick:
    name: Quick
    token_budget: 4000
complexity_scoring:
  factors:
    file_scope:
      weight: -1
`
		_, err := Parse([]byte(doc))
		assert.ErrorContains(t, err, "non-negative")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte(`modes: [`))
		assert.Error(t, err)
	})
}

func TestParseNormalizesKeywords(t *testing.T) {
	doc := `
modes:
  quick:
    name: Quick
    token_budget: 4000
complexity_scoring:
  factors:
    keyword_complexity:
      weight: 1
      high: ["Architecture"]
      low: ["FIX"]
`
	c, err := Parse([]byte(doc))
	require.NoError(t, err)

	kw := c.Scoring().Factors.KeywordComplexity
	assert.Equal(t, []string{"architecture"}, kw.High)
	assert.Equal(t, []string{"fix"}, kw.Low)
}

func TestLoad(t *testing.T) {
	t.Run("missing file is fatal", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("valid file", func(t *testing.T) {
		data, err := DefaultDocument()
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "modes.yaml")
		require.NoError(t, os.WriteFile(path, data, 0644))

		c, err := Load(path)
		require.NoError(t, err)
		_, ok := c.Get("standard")
		assert.True(t, ok)
	})
}

func TestSharedCache(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Run("shared before init", func(t *testing.T) {
		_, err := Shared()
		assert.ErrorContains(t, err, "not initialized")
	})

	data, err := DefaultDocument()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "modes.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	t.Run("init loads once", func(t *testing.T) {
		first, err := Init(path)
		require.NoError(t, err)

		// A second Init never re-reads disk, even with a bogus path.
		second, err := Init(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Same(t, first, second)

		cached, err := Shared()
		require.NoError(t, err)
		assert.Same(t, first, cached)
	})

	t.Run("reset allows reinitialization", func(t *testing.T) {
		Reset()
		_, err := Shared()
		assert.Error(t, err)

		_, err = Init(path)
		assert.NoError(t, err)
	})
}

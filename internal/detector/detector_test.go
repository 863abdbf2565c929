package detector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyndonlyu/gearshift/internal/catalog"
	"github.com/lyndonlyu/gearshift/internal/scorer"
)

func TestDetectBands(t *testing.T) {
	h := NewHeuristic(catalog.Default())

	cases := []struct {
		name string
		task scorer.TaskContext
		mode string
	}{
		{
			name: "trivial query lands in quick",
			task: scorer.TaskContext{Query: "what does this do", FileCount: 1},
			mode: "quick",
		},
		{
			name: "feature work lands in standard",
			task: scorer.TaskContext{Query: "implement the export feature", FileCount: 6, ActiveFiles: []string{"a.ts"}},
			mode: "standard",
		},
		{
			name: "broad redesign lands in deep",
			task: scorer.TaskContext{Query: "redesign the architecture", FileCount: 6},
			mode: "deep",
		},
		{
			name: "full system design lands in design",
			task: scorer.TaskContext{Query: "design the system architecture", FileCount: 12, ActiveFiles: []string{"a.rs"}},
			mode: "design",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := h.Detect(Context{Task: tc.task})
			require.NoError(t, err)
			assert.Equal(t, tc.mode, result.Mode)
			assert.GreaterOrEqual(t, result.ComplexityScore, 1)
			assert.LessOrEqual(t, result.ComplexityScore, 10)
		})
	}
}

func TestDetectEmptyQuery(t *testing.T) {
	h := NewHeuristic(catalog.Default())
	_, err := h.Detect(Context{})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestDetectConfidence(t *testing.T) {
	h := NewHeuristic(catalog.Default())
	task := scorer.TaskContext{Query: "implement the export feature", FileCount: 6, ActiveFiles: []string{"a.ts"}}

	base, err := h.Detect(Context{Task: task})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, base.Confidence, 0.0)
	assert.LessOrEqual(t, base.Confidence, 1.0)

	t.Run("agreement with pinned mode boosts confidence", func(t *testing.T) {
		agreed, err := h.Detect(Context{Task: task, PreviousMode: base.Mode, UserPreference: base.Mode})
		require.NoError(t, err)
		assert.Greater(t, agreed.Confidence, base.Confidence)
		assert.Contains(t, strings.Join(agreed.Reasons, "; "), "agrees with pinned mode")
	})

	t.Run("disagreement with pinned mode lowers confidence", func(t *testing.T) {
		pinned, err := h.Detect(Context{Task: task, PreviousMode: "design", UserPreference: "design"})
		require.NoError(t, err)
		assert.Less(t, pinned.Confidence, base.Confidence)
		assert.Contains(t, strings.Join(pinned.Reasons, "; "), "differs from pinned mode design")
		// The hint never overrides the banded suggestion.
		assert.Equal(t, base.Mode, pinned.Mode)
	})
}

func TestDetectReasons(t *testing.T) {
	h := NewHeuristic(catalog.Default())
	result, err := h.Detect(Context{Task: scorer.TaskContext{
		Query: "design the system architecture", FileCount: 12, ActiveFiles: []string{"a.rs"},
	}})
	require.NoError(t, err)

	require.NotEmpty(t, result.Reasons)
	// Most significant first: the band mapping leads.
	assert.True(t, strings.HasPrefix(result.Reasons[0], "complexity "))
	assert.Contains(t, result.Reasons[0], result.Mode)
	if len(result.Reasons) > 1 {
		assert.Contains(t, result.Reasons[1], "dominant factor")
	}
}

func TestDetectDeterministic(t *testing.T) {
	h := NewHeuristic(catalog.Default())
	ctx := Context{Task: scorer.TaskContext{Query: "please fix a typo", FileCount: 1}}

	first, err := h.Detect(ctx)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := h.Detect(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

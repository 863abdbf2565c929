package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBreakdown(t *testing.T) {
	contributions, score := Breakdown(TaskContext{Query: "please fix a typo", FileCount: 1}, unitConfig())

	out := FormatBreakdown(contributions, score)
	assert.Contains(t, out, "FACTOR")
	assert.Contains(t, out, "keyword_complexity")
	assert.Contains(t, out, "task_type")
	assert.Contains(t, out, "Score: 8/10")
}

func TestFormatBreakdownJSON(t *testing.T) {
	contributions, score := Breakdown(TaskContext{Query: "please fix a typo", FileCount: 1}, unitConfig())

	out, err := FormatBreakdownJSON(contributions, score)
	require.NoError(t, err)
	assert.Contains(t, out, `"factor": "file_scope"`)
	assert.Contains(t, out, `"score": 8`)
}

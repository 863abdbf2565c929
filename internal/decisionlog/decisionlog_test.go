package decisionlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "decisions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestOpenCreatesSchema(t *testing.T) {
	l := openTestLog(t)
	n, err := l.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAppendAndGet(t *testing.T) {
	l := openTestLog(t)

	rec, err := l.Append("deep", 7, 0.85, "rework the scheduler")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "deep", rec.Mode)
	assert.Equal(t, 7, rec.Score)

	_, err = time.Parse(time.RFC3339, rec.CreatedAt)
	assert.NoError(t, err, "created_at should be RFC3339")

	got, err := l.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	t.Run("missing id", func(t *testing.T) {
		_, err := l.Get("does-not-exist")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListNewestFirst(t *testing.T) {
	l := openTestLog(t)

	first, err := l.Append("quick", 2, 0.6, "fix a typo")
	require.NoError(t, err)
	second, err := l.Append("design", 9, 0.9, "design the system architecture")
	require.NoError(t, err)

	records, err := l.List(0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Same-second timestamps are broken by id, so just check both are
	// present and the limit applies.
	ids := []string{records[0].ID, records[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)

	limited, err := l.List(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestClear(t *testing.T) {
	l := openTestLog(t)

	for i := 0; i < 3; i++ {
		_, err := l.Append("standard", 5, 0.7, "implement the export feature")
		require.NoError(t, err)
	}

	removed, err := l.Clear()
	require.NoError(t, err)
	assert.EqualValues(t, 3, removed)

	n, err := l.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFormatRecordList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "No decisions recorded.\n", FormatRecordList(nil))
	})

	t.Run("entries", func(t *testing.T) {
		records := []Record{
			{ID: "abc", Mode: "deep", Score: 7, Confidence: 0.85, Query: "rework the scheduler", CreatedAt: "2026-08-24T10:00:00Z"},
		}
		out := FormatRecordList(records)
		assert.Contains(t, out, "MODE")
		assert.Contains(t, out, "deep")
		assert.Contains(t, out, "rework the scheduler")
	})
}

func TestFormatRecordListJSON(t *testing.T) {
	records := []Record{
		{ID: "abc", Mode: "quick", Score: 2, Confidence: 0.6, Query: "fix a typo", CreatedAt: "2026-08-24T10:00:00Z"},
	}
	out, err := FormatRecordListJSON(records)
	require.NoError(t, err)
	assert.Contains(t, out, `"mode": "quick"`)
	assert.Contains(t, out, `"score": 2`)
}

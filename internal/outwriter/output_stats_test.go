package outwriter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleStats = []schema.WeeklyContributorStat{
	{WeekStart: "2024-01-01", Contributor: "Alice", Commits: 2, LinesAdded: 15, LinesDeleted: 3},
	{WeekStart: "2024-01-08", Contributor: "Bob, Jr.", Commits: 1, LinesAdded: 3, LinesDeleted: 0},
}

func TestWriteCSVStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.csv")
	require.NoError(t, WriteCSVStats(sampleStats, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Week Start,Contributor,Commits,Lines Added,Lines Deleted", lines[0])
	assert.Equal(t, "2024-01-01,Alice,2,15,3", lines[1])
	// Names containing commas must be quoted.
	assert.Equal(t, `2024-01-08,"Bob, Jr.",1,3,0`, lines[2])
}

func TestWriteCSVStatsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteCSVStats(nil, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Week Start,Contributor,Commits,Lines Added,Lines Deleted", strings.TrimSpace(string(content)))
}

func TestWriteJSONStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, WriteJSONStats(sampleStats, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []schema.WeeklyContributorStat
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, sampleStats, decoded)
}

// TestWriteJSONStatsNil verifies an empty run encodes as [], not null.
func TestWriteJSONStatsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nil.json")
	require.NoError(t, WriteJSONStats(nil, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(content)))
}

func TestWriteParquetStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.parquet")
	require.NoError(t, WriteParquetStats(sampleStats, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteStatsInvalidPath(t *testing.T) {
	bad := "/nonexistent/directory/out"
	assert.Error(t, WriteCSVStats(sampleStats, bad+".csv"))
	assert.Error(t, WriteJSONStats(sampleStats, bad+".json"))
	assert.Error(t, WriteParquetStats(sampleStats, bad+".parquet"))
}

func TestGetMaxTableNameWidth(t *testing.T) {
	width := GetMaxTableNameWidth()
	assert.GreaterOrEqual(t, width, 15)
	assert.LessOrEqual(t, width, 60)
}

// TestPrintSummary is a smoke test across populated and empty results.
func TestPrintSummary(t *testing.T) {
	cfg := &contract.Config{TopLimit: 10, UseColors: false}

	t.Run("with stats", func(t *testing.T) {
		result := &schema.AnalysisResult{
			Repositories: []string{"/repo"},
			Stats:        sampleStats,
			Totals:       schema.Totals{Commits: 3, LinesAdded: 18, LinesDeleted: 3},
			CommitCount:  3,
		}
		assert.NoError(t, PrintSummary(result, cfg))
	})

	t.Run("empty result", func(t *testing.T) {
		result := &schema.AnalysisResult{}
		assert.NoError(t, PrintSummary(result, cfg))
	})
}

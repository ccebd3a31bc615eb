package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTotalsNetLines(t *testing.T) {
	assert.Equal(t, 12, Totals{LinesAdded: 15, LinesDeleted: 3}.NetLines())
	assert.Equal(t, -5, Totals{LinesAdded: 0, LinesDeleted: 5}.NetLines())
	assert.Equal(t, 0, Totals{}.NetLines())
}

func TestValidDatabaseBackends(t *testing.T) {
	for _, backend := range []DatabaseBackend{SQLiteBackend, MySQLBackend, PostgreSQLBackend, NoneBackend} {
		_, ok := ValidDatabaseBackends[backend]
		assert.True(t, ok, "%s should be a valid backend", backend)
	}

	_, ok := ValidDatabaseBackends[DatabaseBackend("oracle")]
	assert.False(t, ok)
}

func TestCSVHeader(t *testing.T) {
	assert.Equal(t, []string{"Week Start", "Contributor", "Commits", "Lines Added", "Lines Deleted"}, CSVHeader)
}

func TestWeekDateFormat(t *testing.T) {
	// Format must round-trip a calendar date with no time component.
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01", day.Format(WeekDateFormat))

	parsed, err := time.Parse(WeekDateFormat, "2024-01-01")
	assert.NoError(t, err)
	assert.True(t, day.Equal(parsed))
}

func TestParseStatusValues(t *testing.T) {
	assert.Equal(t, ParseStatus("full"), ParseFull)
	assert.Equal(t, ParseStatus("partial"), ParsePartial)
}

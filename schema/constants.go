package schema

// Custom string types for type safety.
type (
	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// All database backends for run tracking.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidDatabaseBackends is the set of accepted --run-backend values.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// WeekDateFormat is the calendar-date form used for week_start values.
const WeekDateFormat = "2006-01-02"

// CSVHeader is the exact header row of the tabular export.
var CSVHeader = []string{"Week Start", "Contributor", "Commits", "Lines Added", "Lines Deleted"}

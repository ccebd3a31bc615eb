package runstore

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gitpulse/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateRunsSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	// Migrate a fresh database to the latest version.
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, -1))

	// The run tables now exist.
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	for _, table := range []string{runsTable, weeklyStatsTable} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist after migration", table)
		assert.Equal(t, table, name)
	}

	// Migrating again is a no-op, not an error.
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, -1))

	// Rolling back to the initial state drops the tables.
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, 0))
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", runsTable).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "tables should be dropped after rollback")
}

func TestMigrateRunsNoneBackend(t *testing.T) {
	err := MigrateRuns(schema.NoneBackend, "", -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestMigrateRunsUnsupportedBackend(t *testing.T) {
	err := MigrateRuns(schema.DatabaseBackend("cassandra"), "", -1)
	require.Error(t, err)
}

package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"roadmap_documents", "progress_snapshots"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_SnapshotTrackConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO progress_snapshots (id, track, recorded_at) VALUES ('s1', 'rust', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown track should violate the CHECK constraint")

	_, err = db.Exec(`INSERT INTO progress_snapshots (id, track, recorded_at) VALUES ('s2', 'aiml', '2025-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestOpenDB_FileBackedCreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/dir/roadtrack.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

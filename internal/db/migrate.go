package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so it
// is safe on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS roadmap_documents (
		storage_key TEXT PRIMARY KEY,
		document    TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS progress_snapshots (
		id              TEXT PRIMARY KEY,
		track           TEXT NOT NULL CHECK(track IN ('pcb','aiml')),
		total_tasks     INTEGER NOT NULL DEFAULT 0,
		completed_tasks INTEGER NOT NULL DEFAULT 0,
		progress        INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
		recorded_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_progress_snapshots_track_time
		ON progress_snapshots(track, recorded_at)`,
}

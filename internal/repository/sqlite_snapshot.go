package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/roadtrack/internal/db"
	"github.com/alexanderramin/roadtrack/internal/domain"
)

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(db db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: db}
}

func (r *SQLiteSnapshotRepo) Record(ctx context.Context, s *domain.ProgressSnapshot) error {
	query := `INSERT INTO progress_snapshots (id, track, total_tasks, completed_tasks, progress, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		string(s.Track),
		s.TotalTasks,
		s.CompletedTasks,
		s.Progress,
		formatTimestamp(s.RecordedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting progress snapshot: %w", err)
	}
	return nil
}

// ListSince returns the track's snapshots recorded at or after since, oldest
// first.
func (r *SQLiteSnapshotRepo) ListSince(ctx context.Context, track domain.Track, since time.Time) ([]*domain.ProgressSnapshot, error) {
	query := `SELECT id, track, total_tasks, completed_tasks, progress, recorded_at
		FROM progress_snapshots
		WHERE track = ? AND recorded_at >= ?
		ORDER BY recorded_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, string(track), formatTimestamp(since))
	if err != nil {
		return nil, fmt.Errorf("listing progress snapshots: %w", err)
	}
	defer rows.Close()

	var out []*domain.ProgressSnapshot
	for rows.Next() {
		var s domain.ProgressSnapshot
		var trackStr, recordedAt string
		if err := rows.Scan(&s.ID, &trackStr, &s.TotalTasks, &s.CompletedTasks, &s.Progress, &recordedAt); err != nil {
			return nil, fmt.Errorf("scanning progress snapshot: %w", err)
		}
		s.Track = domain.Track(trackStr)
		if s.RecordedAt, err = parseTimestamp(recordedAt); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress snapshots: %w", err)
	}
	return out, nil
}

func (r *SQLiteSnapshotRepo) DeleteByTrack(ctx context.Context, track domain.Track) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM progress_snapshots WHERE track = ?`, string(track)); err != nil {
		return fmt.Errorf("deleting progress snapshots: %w", err)
	}
	return nil
}

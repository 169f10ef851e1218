package domain

import "time"

// ProgressSnapshot records a track's stats at a point in time. Snapshots are
// written on every mutation and feed the weekly trend.
type ProgressSnapshot struct {
	ID             string
	Track          Track
	TotalTasks     int
	CompletedTasks int
	Progress       int
	RecordedAt     time.Time
}

// NewSnapshot captures stats for a track.
func NewSnapshot(id string, t Track, s Stats, at time.Time) *ProgressSnapshot {
	return &ProgressSnapshot{
		ID:             id,
		Track:          t,
		TotalTasks:     s.TotalTasks,
		CompletedTasks: s.CompletedTasks,
		Progress:       s.Progress,
		RecordedAt:     at.UTC(),
	}
}

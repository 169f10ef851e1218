package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/roadtrack/internal/domain"
)

// ErrAbsent is returned by RoadmapRepo.Load when nothing is stored under the
// key. It is distinct from a stored roadmap with no phases.
var ErrAbsent = errors.New("no persisted roadmap")

// RoadmapRepo stores whole roadmap documents under string keys.
type RoadmapRepo interface {
	// Save overwrites any document stored under key.
	Save(ctx context.Context, key string, rm *domain.Roadmap) error
	// Load returns ErrAbsent when key is empty and a
	// *domain.CorruptPersistedStateError when the stored value is unusable.
	// The result equals rm.Normalized() of the last saved roadmap.
	Load(ctx context.Context, key string) (*domain.Roadmap, error)
	// Remove deletes the document; removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// SnapshotRepo stores the progress history of each track.
type SnapshotRepo interface {
	Record(ctx context.Context, s *domain.ProgressSnapshot) error
	ListSince(ctx context.Context, track domain.Track, since time.Time) ([]*domain.ProgressSnapshot, error)
	DeleteByTrack(ctx context.Context, track domain.Track) error
}

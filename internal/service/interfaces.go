package service

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/alexanderramin/roadtrack/internal/domain"
)

// RoadmapService owns the load/toggle/reset contract of both tracks. Mutations
// take a roadmap value and return the next one; persistence errors come back
// as *domain.StorageWriteError next to the new in-memory roadmap.
type RoadmapService interface {
	Load(ctx context.Context, track domain.Track) (*domain.Roadmap, error)
	LoadAll(ctx context.Context) (domain.Board, error)
	ToggleTask(ctx context.Context, track domain.Track, rm *domain.Roadmap, phaseID int, taskID string) (*domain.Roadmap, error)
	ResetAll(ctx context.Context, track domain.Track, rm *domain.Roadmap) (*domain.Roadmap, error)
	Reset(ctx context.Context, track domain.Track) (*domain.Roadmap, error)
	Import(ctx context.Context, track domain.Track, r io.Reader) (*domain.Roadmap, error)
}

// TrendPoint is one day of a track's weekly trend. CompletedTasks counts the
// tasks completed on that day, not the running total.
type TrendPoint struct {
	Day            time.Time
	Label          string
	CompletedTasks int
}

// TrackTrend is the seven-day series of one track, oldest day first.
type TrackTrend struct {
	Track  domain.Track
	Points []TrendPoint
	// Sample is set when the track has no recorded history and Points hold
	// illustrative data.
	Sample bool
}

// Total returns how many tasks were completed over the window.
func (t TrackTrend) Total() int {
	sum := 0
	for _, p := range t.Points {
		sum += p.CompletedTasks
	}
	return sum
}

// AvgDaily returns the rounded mean of the daily counts.
func (t TrackTrend) AvgDaily() int {
	if len(t.Points) == 0 {
		return 0
	}
	return int(math.Round(float64(t.Total()) / float64(len(t.Points))))
}

// WeeklyTrend holds the trend of every track in display order.
type WeeklyTrend struct {
	Tracks []TrackTrend
}

// TrendService reports recent progress per track from recorded snapshots.
type TrendService interface {
	Weekly(ctx context.Context, now time.Time) (*WeeklyTrend, error)
	// ClearHistory drops every recorded snapshot of the track, so its trend
	// falls back to sample data.
	ClearHistory(ctx context.Context, track domain.Track) error
}

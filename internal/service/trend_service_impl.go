package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/roadtrack/internal/domain"
	"github.com/alexanderramin/roadtrack/internal/repository"
)

const trendDays = 7

// sampleSeries holds illustrative daily completions shown for a track that
// has never been mutated, so the trend view is never empty.
var sampleSeries = map[domain.Track][trendDays]int{
	domain.TrackPCB:  {4, 6, 8, 5, 9, 7, 10},
	domain.TrackAIML: {3, 5, 7, 4, 8, 6, 9},
}

var sampleLabels = [trendDays]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type trendService struct {
	snapshots repository.SnapshotRepo
	observer  UseCaseObserver
}

func NewTrendService(snapshots repository.SnapshotRepo, observers ...UseCaseObserver) TrendService {
	return &trendService{snapshots: snapshots, observer: useCaseObserverOrNoop(observers)}
}

// Weekly builds seven daily points per track ending on now's calendar day.
// Each point is the rise in completed tasks between the end of the previous
// day and the day's last snapshot; days without a snapshot count zero.
func (s *trendService) Weekly(ctx context.Context, now time.Time) (trend *WeeklyTrend, err error) {
	defer observe(ctx, s.observer, "weekly-trend", time.Now(), nil, &err)

	today := startOfDay(now)
	first := today.AddDate(0, 0, -(trendDays - 1))

	trend = &WeeklyTrend{}
	for _, track := range domain.AllTracks() {
		// Full history: the value entering the window comes from the last
		// snapshot before it.
		snaps, err := s.snapshots.ListSince(ctx, track, time.Time{})
		if err != nil {
			return nil, err
		}
		if len(snaps) == 0 {
			trend.Tracks = append(trend.Tracks, sampleTrend(track, first))
			continue
		}
		trend.Tracks = append(trend.Tracks, buildTrend(track, snaps, first))
	}
	return trend, nil
}

func (s *trendService) ClearHistory(ctx context.Context, track domain.Track) (err error) {
	defer observe(ctx, s.observer, "clear-history", time.Now(), map[string]any{"track": string(track)}, &err)

	if !track.Valid() {
		return fmt.Errorf("%w %q", domain.ErrUnknownTrack, string(track))
	}
	return s.snapshots.DeleteByTrack(ctx, track)
}

func buildTrend(track domain.Track, snaps []*domain.ProgressSnapshot, first time.Time) TrackTrend {
	tt := TrackTrend{Track: track, Points: make([]TrendPoint, 0, trendDays)}
	loc := first.Location()
	value := 0
	i := 0
	for i < len(snaps) && snaps[i].RecordedAt.In(loc).Before(first) {
		value = snaps[i].CompletedTasks
		i++
	}
	for d := 0; d < trendDays; d++ {
		day := first.AddDate(0, 0, d)
		next := day.AddDate(0, 0, 1)
		prev := value
		for i < len(snaps) && snaps[i].RecordedAt.In(loc).Before(next) {
			value = snaps[i].CompletedTasks
			i++
		}
		// Tasks reopened or reset count as zero completions, never negative.
		done := max(value-prev, 0)
		tt.Points = append(tt.Points, TrendPoint{Day: day, Label: day.Format("Mon"), CompletedTasks: done})
	}
	return tt
}

func sampleTrend(track domain.Track, first time.Time) TrackTrend {
	tt := TrackTrend{Track: track, Sample: true, Points: make([]TrendPoint, 0, trendDays)}
	series := sampleSeries[track]
	for d := 0; d < trendDays; d++ {
		tt.Points = append(tt.Points, TrendPoint{
			Day:            first.AddDate(0, 0, d),
			Label:          sampleLabels[d],
			CompletedTasks: series[d],
		})
	}
	return tt
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

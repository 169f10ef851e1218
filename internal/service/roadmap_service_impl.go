package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/roadtrack/internal/catalog"
	"github.com/alexanderramin/roadtrack/internal/codec"
	"github.com/alexanderramin/roadtrack/internal/db"
	"github.com/alexanderramin/roadtrack/internal/domain"
	"github.com/alexanderramin/roadtrack/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type roadmapService struct {
	roadmaps repository.RoadmapRepo
	catalog  catalog.Source
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

// NewRoadmapService wires the store. Writes go through uow with tx-scoped
// SQLite repositories so a document and its progress snapshot land together.
func NewRoadmapService(roadmaps repository.RoadmapRepo, src catalog.Source, uow db.UnitOfWork, observers ...UseCaseObserver) RoadmapService {
	return &roadmapService{
		roadmaps: roadmaps,
		catalog:  src,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *roadmapService) Load(ctx context.Context, track domain.Track) (rm *domain.Roadmap, err error) {
	fields := map[string]any{"track": string(track)}
	defer observe(ctx, s.observer, "load", time.Now(), fields, &err)

	if !track.Valid() {
		return nil, fmt.Errorf("%w %q", domain.ErrUnknownTrack, string(track))
	}

	rm, err = s.roadmaps.Load(ctx, track.StorageKey())
	switch {
	case err == nil:
		fields["source"] = "persisted"
		return rm, nil
	case !errors.Is(err, repository.ErrAbsent):
		return nil, &domain.LoadError{Track: track, Err: err}
	}

	fields["source"] = "catalog"
	rm, err = s.catalog.Fetch(ctx, track)
	if err != nil {
		return nil, &domain.LoadError{Track: track, Err: err}
	}
	return rm, nil
}

// LoadAll loads both tracks concurrently. Either both succeed or the first
// error is returned with an empty board.
func (s *roadmapService) LoadAll(ctx context.Context) (domain.Board, error) {
	var pcb, aiml *domain.Roadmap
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pcb, err = s.Load(gctx, domain.TrackPCB)
		return err
	})
	g.Go(func() error {
		var err error
		aiml, err = s.Load(gctx, domain.TrackAIML)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Board{}, err
	}
	return domain.Board{PCB: *pcb, AIML: *aiml}, nil
}

func (s *roadmapService) ToggleTask(ctx context.Context, track domain.Track, rm *domain.Roadmap, phaseID int, taskID string) (next *domain.Roadmap, err error) {
	fields := map[string]any{"track": string(track), "phase": phaseID, "task": taskID}
	defer observe(ctx, s.observer, "toggle-task", time.Now(), fields, &err)

	if err = checkMutation(track, rm); err != nil {
		return nil, err
	}

	toggled, changed := domain.ToggleTask(*rm, phaseID, taskID)
	fields["changed"] = changed
	if !changed {
		return &toggled, nil
	}
	return &toggled, s.save(ctx, track, &toggled)
}

func (s *roadmapService) ResetAll(ctx context.Context, track domain.Track, rm *domain.Roadmap) (next *domain.Roadmap, err error) {
	defer observe(ctx, s.observer, "reset-all", time.Now(), map[string]any{"track": string(track)}, &err)

	if err = checkMutation(track, rm); err != nil {
		return nil, err
	}

	reset := domain.ResetAll(*rm)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteRoadmapRepo(tx).Remove(ctx, track.StorageKey()); err != nil {
			return err
		}
		return s.recordSnapshot(ctx, tx, track, reset.Stats)
	})
	if err != nil {
		return &reset, &domain.StorageWriteError{Key: track.StorageKey(), Err: err}
	}
	return &reset, nil
}

// Reset loads the track and resets it. A corrupt persisted document is
// replaced by the catalog so the track can always be recovered.
func (s *roadmapService) Reset(ctx context.Context, track domain.Track) (*domain.Roadmap, error) {
	rm, err := s.Load(ctx, track)
	var corrupt *domain.CorruptPersistedStateError
	if errors.As(err, &corrupt) {
		rm, err = s.catalog.Fetch(ctx, track)
		if err != nil {
			err = &domain.LoadError{Track: track, Err: err}
		}
	}
	if err != nil {
		return nil, err
	}
	return s.ResetAll(ctx, track, rm)
}

// Import validates a roadmap document and persists it as the track's state.
// Stats are re-derived from the imported tasks.
func (s *roadmapService) Import(ctx context.Context, track domain.Track, r io.Reader) (rm *domain.Roadmap, err error) {
	defer observe(ctx, s.observer, "import", time.Now(), map[string]any{"track": string(track)}, &err)

	if !track.Valid() {
		return nil, fmt.Errorf("%w %q", domain.ErrUnknownTrack, string(track))
	}
	rm, err = codec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("importing %s roadmap: %w", track.Label(), err)
	}
	rm.Stats = domain.ComputeStats(rm.Phases)
	return rm, s.save(ctx, track, rm)
}

func (s *roadmapService) save(ctx context.Context, track domain.Track, rm *domain.Roadmap) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteRoadmapRepo(tx).Save(ctx, track.StorageKey(), rm); err != nil {
			return err
		}
		return s.recordSnapshot(ctx, tx, track, rm.Stats)
	})
	if err != nil {
		return &domain.StorageWriteError{Key: track.StorageKey(), Err: err}
	}
	return nil
}

func (s *roadmapService) recordSnapshot(ctx context.Context, tx db.DBTX, track domain.Track, stats domain.Stats) error {
	snap := domain.NewSnapshot(uuid.New().String(), track, stats, s.now())
	return repository.NewSQLiteSnapshotRepo(tx).Record(ctx, snap)
}

func checkMutation(track domain.Track, rm *domain.Roadmap) error {
	if !track.Valid() {
		return fmt.Errorf("%w %q", domain.ErrUnknownTrack, string(track))
	}
	if rm == nil {
		return fmt.Errorf("no %s roadmap loaded", track.Label())
	}
	return nil
}

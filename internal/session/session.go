// Package session owns the fetched quake snapshot and its lifecycle.
//
// The session is a small state machine: Idle until Start, Loading while a
// fetch is in flight, then Loaded or Failed. The snapshot is replaced
// wholesale on every successful load, never merged. A generation counter
// guards against stale resolutions: a fetch that finishes after Close or
// after a newer Refresh is discarded without mutating any state.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rishik-kumar/Earthquake-Visualizer/internal/domain"
	"github.com/rishik-kumar/Earthquake-Visualizer/internal/observability"
)

// State is the fetch lifecycle position.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

// String returns the wire name used in API responses.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FeedSource fetches the normalized quake set. Implemented by the USGS client.
type FeedSource interface {
	FetchQuakes(ctx context.Context) ([]domain.Quake, error)
}

// Snapshot is an immutable copy of the session's current state. Quakes is
// only populated in StateLoaded; Err only in StateFailed.
type Snapshot struct {
	State     State
	Quakes    []domain.Quake
	FetchedAt time.Time
	Err       string
}

// Session coordinates feed fetches and holds the latest snapshot.
type Session struct {
	source   FeedSource
	logger   *slog.Logger
	metrics  *observability.Metrics
	onUpdate func(Snapshot)

	mu         sync.Mutex
	baseCtx    context.Context
	state      State
	quakes     []domain.Quake
	fetchedAt  time.Time
	lastErr    string
	generation uint64
	closed     bool
}

// New creates a session in StateIdle. onUpdate, if non-nil, is called after
// every completed load (success or failure) with the fresh snapshot; it runs
// outside the session lock.
func New(source FeedSource, logger *slog.Logger, metrics *observability.Metrics, onUpdate func(Snapshot)) *Session {
	return &Session{
		source:   source,
		logger:   logger,
		metrics:  metrics,
		onUpdate: onUpdate,
	}
}

// Start performs the one Idle -> Loading transition at session start and
// launches the fetch asynchronously. The context bounds this and every later
// refresh fetch. Calling Start more than once is a no-op.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateIdle || s.closed {
		s.mu.Unlock()
		return
	}
	s.baseCtx = ctx
	s.state = StateLoading
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	go s.load(ctx, gen)
}

// Refresh re-enters Loading and replaces the snapshot wholesale when the
// fetch completes. A refresh while a load is already in flight supersedes
// it: the older resolution is discarded. Returns an error after Close or
// before Start.
func (s *Session) Refresh() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.New("session closed")
	}
	if s.state == StateIdle {
		s.mu.Unlock()
		return errors.New("session not started")
	}
	ctx := s.baseCtx
	s.state = StateLoading
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	go s.load(ctx, gen)
	return nil
}

// load runs one fetch and applies the result unless it has gone stale.
func (s *Session) load(ctx context.Context, gen uint64) {
	start := clock.Now()
	quakes, err := s.source.FetchQuakes(ctx)
	elapsed := clock.Since(start)

	s.mu.Lock()
	if s.closed || gen != s.generation {
		// The consumer was torn down or a newer load superseded this one;
		// the resolution must not mutate retained state.
		s.mu.Unlock()
		s.logger.Debug("discarding stale fetch result", "generation", gen)
		return
	}

	if err != nil {
		s.state = StateFailed
		s.quakes = nil
		s.lastErr = err.Error()
		s.metrics.FeedFetches.WithLabelValues("error").Inc()
		s.metrics.QuakesLoaded.Set(0)
		s.metrics.SessionReady.Set(0)
		snap := s.snapshotLocked()
		s.mu.Unlock()

		s.logger.Error("feed load failed", "error", err)
		s.notify(snap)
		return
	}

	s.state = StateLoaded
	s.quakes = quakes
	s.fetchedAt = clock.Now()
	s.lastErr = ""
	s.metrics.FeedFetches.WithLabelValues("success").Inc()
	s.metrics.FeedFetchDuration.Observe(elapsed.Seconds())
	s.metrics.QuakesLoaded.Set(float64(len(quakes)))
	s.metrics.SessionReady.Set(1)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info("feed loaded", "quakes", len(quakes), "duration", elapsed)
	s.notify(snap)
}

func (s *Session) notify(snap Snapshot) {
	if s.onUpdate != nil {
		s.onUpdate(snap)
	}
}

// Snapshot returns a copy of the current state. The quake slice is shared
// but never mutated after publication.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		State:     s.state,
		Quakes:    s.quakes,
		FetchedAt: s.fetchedAt,
		Err:       s.lastErr,
	}
}

// Close tears the session down. Any in-flight fetch resolution is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.metrics.SessionReady.Set(0)
}

// CheckReadiness reports nil once a snapshot has been loaded successfully.
func (s *Session) CheckReadiness(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLoaded {
		return errors.New("no quake snapshot loaded yet: " + s.state.String())
	}
	return nil
}

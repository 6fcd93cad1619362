// Package gamestate is the unidirectional state engine behind the
// photo-guessing game: four independently reduced slices (game lifecycle,
// photo deck, scoring, interface), a closed action vocabulary, pure derived
// selectors, and a coordinator that keeps the slices mutually consistent.
//
// One action is fully processed — all reducers run, the coordinator's
// follow-up actions are drained to a fixed point — before the next is
// accepted. Nothing is mutated in place: every reducer returns a new slice
// value. Asynchronous work (photo fetching) enters only through the Store's
// PhotoSource port.
package gamestate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pastlens/photoguessr/internal/photoguessr"
)

// PhotoRequest describes one deck fetch.
type PhotoRequest struct {
	Curated      bool
	Category     photoguessr.Category
	ForceRefresh bool
}

// PhotoSource fetches a validated photo deck. Timeouts and retries are its
// own business; the engine only sees success or failure.
type PhotoSource interface {
	FetchPhotos(ctx context.Context, req PhotoRequest) ([]photoguessr.Photo, error)
}

// Store owns the state and serializes all mutation through Dispatch.
type Store struct {
	logger *slog.Logger
	coord  Coordinator
	source PhotoSource
	now    func() time.Time

	mu       sync.Mutex
	state    State
	fetchSeq uint64
	subs     map[chan State]struct{}
}

// New creates a store in the initial state. A nil now defaults to time.Now;
// a nil source makes the load-photos actions set loading state but fetch
// nothing (the caller feeds LoadPhotosSuccess itself).
func New(logger *slog.Logger, scorer Scorer, source PhotoSource, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		logger: logger,
		coord:  Coordinator{Scorer: scorer},
		source: source,
		now:    now,
		state:  initialState(),
		subs:   make(map[chan State]struct{}),
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies one action and everything the coordinator derives from
// it, then notifies subscribers once with the settled snapshot. The ctx is
// only used for photo fetches the action may kick off.
func (s *Store) Dispatch(ctx context.Context, a Action) {
	s.mu.Lock()

	var fetch *PhotoRequest
	var fetchSeq uint64

	queue := []Action{a}
	for len(queue) > 0 {
		act := queue[0]
		queue = queue[1:]

		prev := s.state
		now := s.now()
		s.state = reduce(prev, act, now)
		s.logger.Debug("action dispatched", "action", ActionName(act))

		queue = append(queue, s.coord.React(act, prev, s.state, now)...)

		if req, ok := fetchRequestFor(act); ok {
			// A newer load supersedes any in-flight one: bump the sequence
			// so stale completions are dropped, never reordered into newer
			// state. Overlapping fetches are accepted; last writer wins.
			s.fetchSeq++
			fetchSeq = s.fetchSeq
			fetch = &req
		}
	}

	snapshot := s.state
	s.mu.Unlock()

	s.publish(snapshot)

	if fetch != nil && s.source != nil {
		go s.runFetch(ctx, *fetch, fetchSeq)
	}
}

func fetchRequestFor(a Action) (PhotoRequest, bool) {
	switch a := a.(type) {
	case LoadPhotos:
		return PhotoRequest{}, true
	case LoadPhotosWithOptions:
		return PhotoRequest{ForceRefresh: a.ForceRefresh}, true
	case LoadCuratedPhotos:
		return PhotoRequest{Curated: true, Category: a.Category, ForceRefresh: a.ForceRefresh}, true
	}
	return PhotoRequest{}, false
}

func (s *Store) runFetch(ctx context.Context, req PhotoRequest, seq uint64) {
	photos, err := s.source.FetchPhotos(ctx, req)

	s.mu.Lock()
	stale := seq != s.fetchSeq
	s.mu.Unlock()
	if stale {
		s.logger.Debug("dropping stale photo fetch", "seq", seq)
		return
	}

	switch {
	case err != nil:
		s.Dispatch(ctx, LoadPhotosFailure{Error: err.Error()})
	case len(photos) == 0:
		s.Dispatch(ctx, LoadPhotosFailure{Error: "no photos found"})
	default:
		s.Dispatch(ctx, LoadPhotosSuccess{Photos: photos})
	}
}

// Subscribe returns a channel receiving a settled snapshot after each
// dispatch. Slow subscribers miss snapshots rather than block dispatch.
func (s *Store) Subscribe() chan State {
	ch := make(chan State, 16)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscription channel.
func (s *Store) Unsubscribe(ch chan State) {
	s.mu.Lock()
	delete(s.subs, ch)
	s.mu.Unlock()
}

func (s *Store) publish(snapshot State) {
	s.mu.Lock()
	for ch := range s.subs {
		select {
		case ch <- snapshot:
		default:
			// Drop if subscriber is slow.
		}
	}
	s.mu.Unlock()
}

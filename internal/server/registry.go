package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/pastlens/photoguessr/internal/gamestate"
)

// Registry holds one live game engine per player session. Engines are
// in-memory only: game state deliberately does not survive the process.
type Registry struct {
	logger *slog.Logger
	scorer gamestate.Scorer
	source gamestate.PhotoSource
	now    func() time.Time

	mu     sync.RWMutex
	stores map[string]*gamestate.Store
}

func NewRegistry(logger *slog.Logger, scorer gamestate.Scorer, source gamestate.PhotoSource) *Registry {
	return &Registry{
		logger: logger,
		scorer: scorer,
		source: source,
		stores: make(map[string]*gamestate.Store),
	}
}

// Get returns the session's engine, creating it on first use.
func (r *Registry) Get(sessionID string) *gamestate.Store {
	r.mu.RLock()
	s, ok := r.stores[sessionID]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock.
	if s, ok := r.stores[sessionID]; ok {
		return s
	}

	s = gamestate.New(r.logger.With("session", sessionID), r.scorer, r.source, r.now)
	r.stores[sessionID] = s
	return s
}

// Drop forgets a session's engine.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	delete(r.stores, sessionID)
	r.mu.Unlock()
}

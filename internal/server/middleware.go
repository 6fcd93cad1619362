package server

import (
	"context"
	"net/http"

	"github.com/pastlens/photoguessr/internal/gamestate"
	"github.com/pastlens/photoguessr/internal/photoguessr"
)

type ctxKey int

const (
	ctxKeySession ctxKey = iota
	ctxKeyGame
	ctxKeyAdmin
)

// sessionMiddleware resolves the Bearer token to a session and its game
// engine, injecting both into the request context.
func sessionMiddleware(sessions *SessionStore, games *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := sessionFromRequest(r, sessions)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid or missing session token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, sess)
			ctx = context.WithValue(ctx, ctxKeyGame, games.Get(sess.ID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requireStatus is the routing guard: it consults the lifecycle slice and
// rejects requests whose screen does not match the game's status.
func requireStatus(statuses ...photoguessr.GameStatus) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := gameStore(r).State()
			for _, st := range statuses {
				if state.Game.Status == st {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, http.StatusConflict, "game is "+string(state.Game.Status))
		})
	}
}

func sessionFrom(r *http.Request) playerSession {
	return r.Context().Value(ctxKeySession).(playerSession)
}

func gameStore(r *http.Request) *gamestate.Store {
	return r.Context().Value(ctxKeyGame).(*gamestate.Store)
}

package server

import (
	"net/http"
	"strings"
)

type CreateSessionRequest struct {
	Player string `json:"player,omitempty"`
}

type CreateSessionResponse struct {
	Token  string `json:"token"`
	Player string `json:"player,omitempty"`
}

func handleCreateSession(sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSessionRequest
		if r.ContentLength > 0 {
			if err := readJSON(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}
		req.Player = strings.TrimSpace(req.Player)

		sess, token, err := sessions.Create(r.Context(), req.Player)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, CreateSessionResponse{Token: token, Player: sess.Player})
	}
}

// handleDeleteSession forgets the session row and releases its in-memory
// game engine.
func handleDeleteSession(sessions *SessionStore, games *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)

		if _, err := sessions.db.ExecContext(r.Context(), `
			DELETE FROM sessions WHERE id = ?
		`, sess.ID); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		games.Drop(sess.ID)
		w.WriteHeader(http.StatusNoContent)
	}
}

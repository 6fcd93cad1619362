package server

import (
	"net/http"
	"strings"
)

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found {
		return ""
	}
	return token
}

func sessionFromRequest(r *http.Request, sessions *SessionStore) (playerSession, error) {
	token := bearerToken(r)
	if token == "" {
		// SSE and websocket clients can't set headers; allow a query param.
		token = r.URL.Query().Get("token")
	}
	if token == "" {
		return playerSession{}, errNoSession
	}
	return sessions.FromToken(r.Context(), token)
}

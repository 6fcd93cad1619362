package server

import (
	"context"
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("not found")

type playerSession struct {
	ID     string
	Player string
}

var errNoSession = errors.New("no valid session")

// SessionStore persists player session tokens. Only the token and display
// name are stored; the game state itself lives in the in-memory Registry.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Create(ctx context.Context, player string) (playerSession, string, error) {
	var sess playerSession
	var token string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO sessions (token, player)
		VALUES (lower(hex(randomblob(16))), ?)
		RETURNING id, token, player
	`, player).Scan(&sess.ID, &token, &sess.Player)
	return sess, token, err
}

func (s *SessionStore) FromToken(ctx context.Context, token string) (playerSession, error) {
	var sess playerSession
	err := s.db.QueryRowContext(ctx, `
		SELECT id, player FROM sessions WHERE token = ?
	`, token).Scan(&sess.ID, &sess.Player)
	if errors.Is(err, sql.ErrNoRows) {
		return sess, errNoSession
	}
	return sess, err
}

package server

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/pastlens/photoguessr/internal/database"
	"github.com/pastlens/photoguessr/internal/migrations"
	"github.com/pastlens/photoguessr/internal/photoguessr"
	"github.com/pastlens/photoguessr/internal/photos"
	"github.com/pastlens/photoguessr/internal/scoring"
)

func discardTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRouter(t *testing.T) (*chi.Mux, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	logger := discardTestLogger()
	catalog := photos.NewCuratedStore(db)
	if err := photos.SeedDemo(ctx, logger, catalog); err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}
	source := &photos.Source{Curated: catalog, Logger: logger}
	games := NewRegistry(logger, scoring.New(), source)

	r := chi.NewRouter()
	addRoutes(r, logger, db, games, catalog, source, "")
	return r, db
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, h http.Handler) string {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/session", "", CreateSessionRequest{Player: "Maria"})
	if w.Code != http.StatusOK {
		t.Fatalf("creating session: %d: %s", w.Code, w.Body.String())
	}
	var resp CreateSessionResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding session: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty session token")
	}
	return resp.Token
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) StateResponse {
	t.Helper()
	var resp StateResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding state: %v", err)
	}
	return resp
}

func TestSessionRequired(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/game/state", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: got %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/game/state", "bogus", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: got %d, want 401", w.Code)
	}
}

func TestFreshGameState(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/game/state", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}
	state := decodeState(t, w)
	if state.Game.Status != photoguessr.StatusNotStarted {
		t.Errorf("status = %s, want NOT_STARTED", state.Game.Status)
	}
	if state.CurrentPhoto != nil {
		t.Errorf("fresh game has a current photo: %+v", state.CurrentPhoto)
	}
}

func TestStatusGuards(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)

	// Round and results routes are closed before the game starts.
	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/game/next"},
		{http.MethodPost, "/api/game/end"},
		{http.MethodPost, "/api/game/guess"},
		{http.MethodGet, "/api/game/results"},
	} {
		w := doJSON(t, r, tc.method, tc.path, token, GuessRequest{Year: 1950})
		if w.Code != http.StatusConflict {
			t.Errorf("%s %s before start: got %d, want 409", tc.method, tc.path, w.Code)
		}
	}
}

func TestStartGame(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/game/start", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}

	// The wire state must never leak the answers: decode loosely and look
	// for the fields a photo would carry.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	var photo map[string]any
	if err := json.Unmarshal(raw["currentPhoto"], &photo); err != nil {
		t.Fatalf("decoding currentPhoto: %v", err)
	}
	if photo["id"] == "" || photo["url"] == "" {
		t.Errorf("currentPhoto incomplete: %v", photo)
	}
	if _, leaked := photo["year"]; leaked {
		t.Error("currentPhoto leaks the photo's year")
	}
	if _, leaked := photo["coordinates"]; leaked {
		t.Error("currentPhoto leaks the photo's coordinates")
	}

	w = doJSON(t, r, http.MethodGet, "/api/game/state", token, nil)
	got := decodeState(t, w)
	if got.Game.Status != photoguessr.StatusInProgress {
		t.Errorf("status = %s, want IN_PROGRESS", got.Game.Status)
	}
	if got.Game.TotalPhotos != photoguessr.DeckSize {
		t.Errorf("totalPhotos = %d, want %d", got.Game.TotalPhotos, photoguessr.DeckSize)
	}
	if got.Progress.Current != 1 {
		t.Errorf("progress = %d, want 1", got.Progress.Current)
	}
}

func TestStartGameUnknownCategory(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/game/start", token, StartGameRequest{Category: "selfies"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", w.Code)
	}
}

func TestFullGame(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)

	if w := doJSON(t, r, http.MethodPost, "/api/game/start", token, nil); w.Code != http.StatusOK {
		t.Fatalf("start: %d: %s", w.Code, w.Body.String())
	}

	guess := GuessRequest{
		Year:        1950,
		Coordinates: photoguessr.Coordinates{Latitude: 40, Longitude: -73},
	}
	for round := 1; round <= photoguessr.DeckSize; round++ {
		w := doJSON(t, r, http.MethodPost, "/api/game/guess", token, guess)
		if w.Code != http.StatusOK {
			t.Fatalf("round %d guess: %d: %s", round, w.Code, w.Body.String())
		}
		var result RoundResult
		if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
			t.Fatal(err)
		}
		if !result.Score.Valid() {
			t.Errorf("round %d: invalid score %+v", round, result.Score)
		}
		if result.ActualYear < photoguessr.MinYear {
			t.Errorf("round %d: actualYear = %d", round, result.ActualYear)
		}
		if len(result.State.Scoring.Scores) != round {
			t.Errorf("round %d: %d scores recorded", round, len(result.State.Scoring.Scores))
		}

		w = doJSON(t, r, http.MethodPost, "/api/game/next", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("round %d next: %d: %s", round, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/game/state", token, nil)
	state := decodeState(t, w)
	if state.Game.Status != photoguessr.StatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", state.Game.Status)
	}
	if state.Game.EndTime == nil {
		t.Error("endTime missing on a completed game")
	}

	// The results screen is open now and reveals the answers.
	w = doJSON(t, r, http.MethodGet, "/api/game/results", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("results: %d: %s", w.Code, w.Body.String())
	}
	var results ResultsResponse
	if err := json.NewDecoder(w.Body).Decode(&results); err != nil {
		t.Fatal(err)
	}
	if len(results.Rounds) != photoguessr.DeckSize {
		t.Errorf("len(rounds) = %d, want %d", len(results.Rounds), photoguessr.DeckSize)
	}
	for _, round := range results.Rounds {
		if round.Photo.Year == 0 || !round.Photo.Coordinates.Valid() {
			t.Errorf("results round missing answers: %+v", round.Photo)
		}
	}
	if results.Breakdown.Total != state.Scoring.TotalScore {
		t.Errorf("breakdown total = %d, state total = %d", results.Breakdown.Total, state.Scoring.TotalScore)
	}
	if results.PerformanceCategory == "" {
		t.Error("performance category missing")
	}
}

func TestGuessValidation(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)
	if w := doJSON(t, r, http.MethodPost, "/api/game/start", token, nil); w.Code != http.StatusOK {
		t.Fatalf("start: %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/game/guess", token, GuessRequest{
		Year:        1850,
		Coordinates: photoguessr.Coordinates{Latitude: 40, Longitude: -73},
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, want 422: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["field"] != "year" {
		t.Errorf("field hint = %q, want year", resp["field"])
	}

	// No map selection yet.
	w = doJSON(t, r, http.MethodPost, "/api/game/guess", token, GuessRequest{Year: 1950})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, want 422", w.Code)
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["field"] != "coordinates" {
		t.Errorf("field hint = %q, want coordinates", resp["field"])
	}

	// A rejected guess must leave the scoreboard alone.
	w = doJSON(t, r, http.MethodGet, "/api/game/state", token, nil)
	if state := decodeState(t, w); len(state.Scoring.Scores) != 0 {
		t.Errorf("rejected guesses scored: %+v", state.Scoring.Scores)
	}
}

func TestGuessDraft(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)
	if w := doJSON(t, r, http.MethodPost, "/api/game/start", token, nil); w.Code != http.StatusOK {
		t.Fatalf("start: %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/game/guess/draft", token, GuessRequest{
		Year:        1960,
		Coordinates: photoguessr.Coordinates{Latitude: 48, Longitude: 2},
	})
	state := decodeState(t, w)
	if state.Scoring.CurrentGuess == nil || state.Scoring.CurrentGuess.Year != 1960 {
		t.Fatalf("draft not stored: %+v", state.Scoring.CurrentGuess)
	}
	if !state.Derived.CanSubmitGuess {
		t.Error("canSubmitGuess false with a valid draft in place")
	}

	w = doJSON(t, r, http.MethodDelete, "/api/game/guess", token, nil)
	state = decodeState(t, w)
	if state.Scoring.CurrentGuess != nil {
		t.Error("draft survived delete")
	}
	if state.Derived.CanSubmitGuess {
		t.Error("canSubmitGuess true without a draft")
	}
}

func TestResetGame(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)
	if w := doJSON(t, r, http.MethodPost, "/api/game/start", token, nil); w.Code != http.StatusOK {
		t.Fatalf("start: %d", w.Code)
	}
	doJSON(t, r, http.MethodPost, "/api/game/guess", token, GuessRequest{
		Year:        1950,
		Coordinates: photoguessr.Coordinates{Latitude: 40, Longitude: -73},
	})

	w := doJSON(t, r, http.MethodPost, "/api/game/reset", token, nil)
	state := decodeState(t, w)
	if state.Game.Status != photoguessr.StatusNotStarted {
		t.Errorf("status = %s, want NOT_STARTED", state.Game.Status)
	}
	if len(state.Scoring.Scores) != 0 || state.Scoring.TotalScore != 0 {
		t.Errorf("scores survived reset: %+v", state.Scoring)
	}
	// The deck survives, so the next start is instant.
	if state.Game.TotalPhotos != photoguessr.DeckSize {
		t.Errorf("totalPhotos = %d, want %d", state.Game.TotalPhotos, photoguessr.DeckSize)
	}
}

func TestDeleteSession(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)

	w := doJSON(t, r, http.MethodDelete, "/api/session", token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("got %d, want 204", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/game/state", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("deleted session still valid: %d", w.Code)
	}
}

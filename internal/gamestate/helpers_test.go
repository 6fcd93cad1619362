package gamestate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pastlens/photoguessr/internal/photoguessr"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testDeck builds n valid photos with years and locations spread out enough
// that each scores differently.
func testDeck(n int) []photoguessr.Photo {
	photos := make([]photoguessr.Photo, n)
	for i := range photos {
		photos[i] = photoguessr.Photo{
			ID:          fmt.Sprintf("p%d", i+1),
			URL:         fmt.Sprintf("https://example.com/p%d.jpg", i+1),
			Title:       fmt.Sprintf("Photo %d", i+1),
			Year:        1920 + i*10,
			Coordinates: photoguessr.Coordinates{Latitude: 10 + float64(i), Longitude: 20 + float64(i)},
			Source:      "test",
			Metadata: photoguessr.PhotoMetadata{
				License:        "PD",
				OriginalSource: "archive",
				DateCreated:    "1950",
			},
		}
	}
	return photos
}

func validGuess() photoguessr.Guess {
	return photoguessr.Guess{Year: 1950, Coordinates: photoguessr.Coordinates{Latitude: 10, Longitude: 20}}
}

// stubScorer returns a fixed score (with the photo ID filled in) or a fixed
// error.
type stubScorer struct {
	year     int
	location int
	err      error
	// raw, when set, is returned verbatim so tests can feed the coordinator
	// a score that breaks the contract.
	raw *photoguessr.Score
}

func (s stubScorer) CalculateScore(photoID string, _ photoguessr.Guess, _ int, _ photoguessr.Coordinates) (photoguessr.Score, error) {
	if s.err != nil {
		return photoguessr.Score{}, s.err
	}
	if s.raw != nil {
		return *s.raw, nil
	}
	return photoguessr.Score{
		PhotoID:       photoID,
		YearScore:     s.year,
		LocationScore: s.location,
		TotalScore:    s.year + s.location,
	}, nil
}

// newTestStore builds a store with a fixed clock, no photo source, and a
// scorer awarding 2000+3000 per round.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(testLogger(), stubScorer{year: 2000, location: 3000}, nil, fixedClock)
}

// startGame loads a deck and starts the game, failing the test if the store
// does not settle in a clean IN_PROGRESS state.
func startGame(t *testing.T, s *Store, deck []photoguessr.Photo) {
	t.Helper()
	ctx := context.Background()
	s.Dispatch(ctx, LoadPhotosSuccess{Photos: deck})
	s.Dispatch(ctx, StartGame{})
	st := s.State()
	if st.Game.Status != photoguessr.StatusInProgress {
		t.Fatalf("game status = %s after start, want IN_PROGRESS (error: %q)", st.Game.Status, st.Game.Error)
	}
	if !PhotoInSync(st) {
		t.Fatal("current photo out of sync after start")
	}
}

// assertScoringInvariant checks that the running total equals the sum of the
// per-round totals.
func assertScoringInvariant(t *testing.T, s ScoringState) {
	t.Helper()
	if got := sumScores(s.Scores); s.TotalScore != got {
		t.Fatalf("totalScore = %d, sum of scores = %d", s.TotalScore, got)
	}
}

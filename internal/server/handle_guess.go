package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/pastlens/photoguessr/internal/gamestate"
	"github.com/pastlens/photoguessr/internal/photoguessr"
	"github.com/pastlens/photoguessr/internal/scoring"
)

type GuessRequest struct {
	Year        int                     `json:"year"`
	Coordinates photoguessr.Coordinates `json:"coordinates"`
}

// RoundResult reveals the answer after a guess is scored.
type RoundResult struct {
	Score             photoguessr.Score       `json:"score"`
	ActualYear        int                     `json:"actualYear"`
	ActualCoordinates photoguessr.Coordinates `json:"actualCoordinates"`
	DistanceKM        float64                 `json:"distanceKm"`
	YearDifference    int                     `json:"yearDifference"`
	State             StateResponse           `json:"state"`
}

func handleGuess() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		store := gameStore(r)
		guess := photoguessr.Guess{Year: req.Year, Coordinates: req.Coordinates}

		store.Dispatch(r.Context(), gamestate.SubmitGuess{Guess: guess})

		state := store.State()
		if msg := state.Scoring.Error; msg != "" {
			switch {
			case gamestate.IsScoringFailure(msg):
				writeError(w, http.StatusBadGateway, msg)
			case msg == gamestate.ErrNoCurrentPhoto:
				writeError(w, http.StatusConflict, msg)
			default:
				writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
					"error": msg,
					"field": validationHint(msg),
				})
			}
			return
		}

		photo := state.Photos.CurrentPhoto
		if photo == nil {
			writeError(w, http.StatusConflict, gamestate.ErrNoCurrentPhoto)
			return
		}
		score, ok := gamestate.ScoreForPhoto(state, photo.ID)
		if !ok {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		diff := guess.Year - photo.Year
		if diff < 0 {
			diff = -diff
		}
		writeJSON(w, http.StatusOK, RoundResult{
			Score:             score,
			ActualYear:        photo.Year,
			ActualCoordinates: photo.Coordinates,
			DistanceKM:        scoring.DistanceKM(guess.Coordinates, photo.Coordinates),
			YearDifference:    diff,
			State:             stateResponse(state, time.Now()),
		})
	}
}

// handleGuessDraft stores a work-in-progress guess without scoring it, so
// the can-submit flag and a page reload both see it.
func handleGuessDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		store := gameStore(r)
		store.Dispatch(r.Context(), gamestate.SetCurrentGuess{
			Guess: photoguessr.Guess{Year: req.Year, Coordinates: req.Coordinates},
		})
		writeJSON(w, http.StatusOK, stateResponse(store.State(), time.Now()))
	}
}

func handleGuessClear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := gameStore(r)
		store.Dispatch(r.Context(), gamestate.ClearCurrentGuess{})
		writeJSON(w, http.StatusOK, stateResponse(store.State(), time.Now()))
	}
}

func handleScoringClearError() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := gameStore(r)
		store.Dispatch(r.Context(), gamestate.ClearScoringError{})
		writeJSON(w, http.StatusOK, stateResponse(store.State(), time.Now()))
	}
}

// validationHint maps a scoring-slice error to the enumerable rule that
// failed, for field-level UI hints.
func validationHint(msg string) string {
	switch {
	case strings.Contains(msg, "year"):
		return "year"
	case strings.Contains(msg, "coordinates"), strings.Contains(msg, "location"):
		return "coordinates"
	default:
		return ""
	}
}

package server

import (
	"net/http"
	"time"

	"github.com/pastlens/photoguessr/internal/gamestate"
	"github.com/pastlens/photoguessr/internal/photoguessr"
)

// StartGameRequest optionally picks the deck to play. An empty body plays a
// curated deck drawn from all categories.
type StartGameRequest struct {
	Category     photoguessr.Category `json:"category,omitempty"`
	ForceRefresh bool                 `json:"forceRefresh,omitempty"`
}

func handleGameStart(source gamestate.PhotoSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartGameRequest
		if r.ContentLength > 0 {
			if err := readJSON(r, &req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}
		if req.Category != "" && !photoguessr.ValidCategory(req.Category) {
			writeError(w, http.StatusBadRequest, "unknown category")
			return
		}

		store := gameStore(r)

		// Starting needs a deck. Load one synchronously here so the player
		// gets an immediate first round; mid-game reloads go through the
		// async photos/load path instead.
		if len(store.State().Photos.Photos) == 0 || req.ForceRefresh {
			deck, err := source.FetchPhotos(r.Context(), gamestate.PhotoRequest{
				Curated:      true,
				Category:     req.Category,
				ForceRefresh: req.ForceRefresh,
			})
			if err != nil {
				store.Dispatch(r.Context(), gamestate.LoadPhotosFailure{Error: err.Error()})
				status := http.StatusBadGateway
				if !gamestate.Retryable(err.Error()) {
					status = http.StatusInternalServerError
				}
				writeError(w, status, "loading photos: "+err.Error())
				return
			}
			store.Dispatch(r.Context(), gamestate.LoadPhotosSuccess{Photos: deck})
		}

		store.Dispatch(r.Context(), gamestate.StartGame{})

		state := store.State()
		if state.Game.Status == photoguessr.StatusError {
			writeError(w, http.StatusConflict, state.Game.Error)
			return
		}
		writeJSON(w, http.StatusOK, stateResponse(state, time.Now()))
	}
}

func handleGameNext() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := gameStore(r)
		store.Dispatch(r.Context(), gamestate.NextPhoto{})

		state := store.State()
		if state.Game.Status == photoguessr.StatusError {
			writeError(w, http.StatusInternalServerError, state.Game.Error)
			return
		}
		writeJSON(w, http.StatusOK, stateResponse(state, time.Now()))
	}
}

func handleGameEnd() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := gameStore(r)
		store.Dispatch(r.Context(), gamestate.EndGame{})
		writeJSON(w, http.StatusOK, stateResponse(store.State(), time.Now()))
	}
}

func handleGameReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := gameStore(r)
		store.Dispatch(r.Context(), gamestate.ResetGame{})
		writeJSON(w, http.StatusOK, stateResponse(store.State(), time.Now()))
	}
}

func handleGameClearError() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := gameStore(r)
		store.Dispatch(r.Context(), gamestate.ClearGameError{})
		writeJSON(w, http.StatusOK, stateResponse(store.State(), time.Now()))
	}
}

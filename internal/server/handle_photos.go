package server

import (
	"context"
	"net/http"
	"time"

	"github.com/pastlens/photoguessr/internal/gamestate"
	"github.com/pastlens/photoguessr/internal/photoguessr"
)

type LoadPhotosRequest struct {
	Curated      bool                 `json:"curated,omitempty"`
	Category     photoguessr.Category `json:"category,omitempty"`
	ForceRefresh bool                 `json:"forceRefresh,omitempty"`
}

// handlePhotosLoad kicks off an asynchronous deck load. The response is the
// loading state; completion arrives on the event stream (or the next state
// poll). A newer load supersedes an in-flight one.
func handlePhotosLoad() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoadPhotosRequest
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
		var action gamestate.Action
		switch {
		case req.Curated || req.Category != "":
			action = gamestate.LoadCuratedPhotos{Category: req.Category, ForceRefresh: req.ForceRefresh}
		case req.ForceRefresh:
			action = gamestate.LoadPhotosWithOptions{ForceRefresh: true}
		default:
			action = gamestate.LoadPhotos{}
		}

		// The fetch outlives this request; detach it from the request ctx.
		store.Dispatch(context.WithoutCancel(r.Context()), action)
		writeJSON(w, http.StatusAccepted, stateResponse(store.State(), time.Now()))
	}
}

func handlePhotosClear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := gameStore(r)
		store.Dispatch(r.Context(), gamestate.ClearPhotos{})
		writeJSON(w, http.StatusOK, stateResponse(store.State(), time.Now()))
	}
}

package server

import (
	"net/http"
	"time"

	"github.com/pastlens/photoguessr/internal/gamestate"
	"github.com/pastlens/photoguessr/internal/photoguessr"
)

// ViewRequest drives the interface slice. Op selects the action; the other
// fields are that action's payload.
type ViewRequest struct {
	Op         string           `json:"op"`
	ActiveView photoguessr.View `json:"activeView,omitempty"`
}

func handleView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ViewRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var action gamestate.Action
		switch req.Op {
		case "toggle":
			action = gamestate.ToggleView{}
		case "set":
			if req.ActiveView != photoguessr.ViewPhoto && req.ActiveView != photoguessr.ViewMap {
				writeError(w, http.StatusBadRequest, "activeView must be photo or map")
				return
			}
			action = gamestate.SetActiveView{ActiveView: req.ActiveView}
		case "startTransition":
			action = gamestate.StartTransition{}
		case "completeTransition":
			action = gamestate.CompleteTransition{}
		default:
			writeError(w, http.StatusBadRequest, "unknown op")
			return
		}

		store := gameStore(r)
		store.Dispatch(r.Context(), action)
		writeJSON(w, http.StatusOK, stateResponse(store.State(), time.Now()))
	}
}

type PhotoZoomRequest struct {
	ZoomLevel *float64            `json:"zoomLevel,omitempty"`
	Position  *gamestate.Position `json:"position,omitempty"`
}

// handlePhotoZoom applies zoom and/or pan to the photo pane. Out-of-range
// zoom is clamped by the reducer, never rejected here.
func handlePhotoZoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PhotoZoomRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var action gamestate.Action
		switch {
		case req.ZoomLevel != nil && req.Position != nil:
			action = gamestate.SetPhotoZoomState{ZoomLevel: *req.ZoomLevel, Position: *req.Position}
		case req.ZoomLevel != nil:
			action = gamestate.SetPhotoZoom{ZoomLevel: *req.ZoomLevel}
		case req.Position != nil:
			action = gamestate.SetPhotoPosition{Position: *req.Position}
		default:
			writeError(w, http.StatusBadRequest, "zoomLevel or position required")
			return
		}

		store := gameStore(r)
		store.Dispatch(r.Context(), action)
		writeJSON(w, http.StatusOK, stateResponse(store.State(), time.Now()))
	}
}

type MapStateRequest struct {
	ZoomLevel *float64                 `json:"zoomLevel,omitempty"`
	Center    *photoguessr.Coordinates `json:"center,omitempty"`
}

func handleMapState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MapStateRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ZoomLevel == nil && req.Center == nil {
			writeError(w, http.StatusBadRequest, "zoomLevel or center required")
			return
		}

		store := gameStore(r)
		if req.ZoomLevel != nil {
			store.Dispatch(r.Context(), gamestate.SetMapZoom{ZoomLevel: *req.ZoomLevel})
		}
		if req.Center != nil {
			store.Dispatch(r.Context(), gamestate.SetMapCenter{Center: *req.Center})
		}
		writeJSON(w, http.StatusOK, stateResponse(store.State(), time.Now()))
	}
}

type ViewResetRequest struct {
	Scope string `json:"scope"` // photoZoom | map | all | newPhoto
}

func handleViewReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ViewResetRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var action gamestate.Action
		switch req.Scope {
		case "photoZoom":
			action = gamestate.ResetPhotoZoom{}
		case "map":
			action = gamestate.ResetMapState{}
		case "all":
			action = gamestate.ResetInterfaceState{}
		case "newPhoto":
			action = gamestate.ResetForNewPhoto{}
		default:
			writeError(w, http.StatusBadRequest, "unknown scope")
			return
		}

		store := gameStore(r)
		store.Dispatch(r.Context(), action)
		writeJSON(w, http.StatusOK, stateResponse(store.State(), time.Now()))
	}
}

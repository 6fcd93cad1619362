package server

import (
	"net/http"
	"testing"

	"github.com/pastlens/photoguessr/internal/photoguessr"
)

func TestViewToggle(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/game/view", token, ViewRequest{Op: "toggle"})
	if w.Code != http.StatusOK {
		t.Fatalf("got %d: %s", w.Code, w.Body.String())
	}
	state := decodeState(t, w)
	if state.Interface.ActiveView != photoguessr.ViewMap {
		t.Errorf("activeView = %s, want map", state.Interface.ActiveView)
	}

	// During a transition, toggles and sets fall on deaf ears.
	doJSON(t, r, http.MethodPost, "/api/game/view", token, ViewRequest{Op: "startTransition"})
	w = doJSON(t, r, http.MethodPost, "/api/game/view", token, ViewRequest{Op: "toggle"})
	state = decodeState(t, w)
	if state.Interface.ActiveView != photoguessr.ViewMap {
		t.Errorf("toggle honored mid-transition: %s", state.Interface.ActiveView)
	}
	if state.Derived.CanToggle {
		t.Error("canToggle true mid-transition")
	}

	doJSON(t, r, http.MethodPost, "/api/game/view", token, ViewRequest{Op: "completeTransition"})
	w = doJSON(t, r, http.MethodPost, "/api/game/view", token, ViewRequest{Op: "set", ActiveView: photoguessr.ViewPhoto})
	state = decodeState(t, w)
	if state.Interface.ActiveView != photoguessr.ViewPhoto {
		t.Errorf("activeView = %s, want photo", state.Interface.ActiveView)
	}
}

func TestViewUnknownOp(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/game/view", token, ViewRequest{Op: "flip"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", w.Code)
	}
}

func TestPhotoZoomEndpoint(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)

	zoom := 10.0
	w := doJSON(t, r, http.MethodPost, "/api/game/view/photo-zoom", token, PhotoZoomRequest{ZoomLevel: &zoom})
	state := decodeState(t, w)
	if state.Interface.PhotoZoom.ZoomLevel != 4 {
		t.Errorf("zoomLevel = %v, want clamped to 4", state.Interface.PhotoZoom.ZoomLevel)
	}

	w = doJSON(t, r, http.MethodPost, "/api/game/view/photo-zoom", token, PhotoZoomRequest{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty zoom request: got %d, want 400", w.Code)
	}
}

func TestMapStateEndpoint(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)

	zoom := 7.0
	center := photoguessr.Coordinates{Latitude: 48.85, Longitude: 2.29}
	w := doJSON(t, r, http.MethodPost, "/api/game/view/map", token, MapStateRequest{ZoomLevel: &zoom, Center: &center})
	state := decodeState(t, w)
	if state.Interface.MapState.ZoomLevel != 7 {
		t.Errorf("map zoomLevel = %v, want 7", state.Interface.MapState.ZoomLevel)
	}
	if state.Interface.MapState.Center != center {
		t.Errorf("map center = %+v, want %+v", state.Interface.MapState.Center, center)
	}
	if !state.Derived.NeedsReset {
		t.Error("needsReset false with a moved map")
	}
}

func TestViewReset(t *testing.T) {
	r, _ := testRouter(t)
	token := createSession(t, r)

	zoom := 3.0
	doJSON(t, r, http.MethodPost, "/api/game/view/photo-zoom", token, PhotoZoomRequest{ZoomLevel: &zoom})
	doJSON(t, r, http.MethodPost, "/api/game/view", token, ViewRequest{Op: "toggle"})

	w := doJSON(t, r, http.MethodPost, "/api/game/view/reset", token, ViewResetRequest{Scope: "all"})
	state := decodeState(t, w)
	if state.Interface.ActiveView != photoguessr.ViewPhoto {
		t.Errorf("activeView = %s, want photo", state.Interface.ActiveView)
	}
	if state.Interface.PhotoZoom.ZoomLevel != 1 {
		t.Errorf("zoomLevel = %v, want 1", state.Interface.PhotoZoom.ZoomLevel)
	}
	if state.Derived.NeedsReset {
		t.Error("needsReset true after a full reset")
	}

	w = doJSON(t, r, http.MethodPost, "/api/game/view/reset", token, ViewResetRequest{Scope: "everything"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown scope: got %d, want 400", w.Code)
	}
}

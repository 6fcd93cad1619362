package gamestate

import "github.com/pastlens/photoguessr/internal/photoguessr"

// Position is a pan offset inside the zoomed photo pane.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PhotoZoom holds the photo pane's zoom state. ZoomLevel is always clamped
// into [MinZoom, MaxZoom]; out-of-range requests are clamped, not rejected.
type PhotoZoom struct {
	ZoomLevel float64  `json:"zoomLevel"`
	Position  Position `json:"position"`
	MinZoom   float64  `json:"minZoom"`
	MaxZoom   float64  `json:"maxZoom"`
}

// MapView holds the map pane's zoom and center.
type MapView struct {
	ZoomLevel     float64                 `json:"zoomLevel"`
	Center        photoguessr.Coordinates `json:"center"`
	DefaultZoom   float64                 `json:"defaultZoom"`
	DefaultCenter photoguessr.Coordinates `json:"defaultCenter"`
}

// InterfaceState is the interface slice: which of the two panes is active,
// the zoom state of each, and the transition guard that debounces toggles.
type InterfaceState struct {
	ActiveView           photoguessr.View `json:"activeView"`
	PhotoZoom            PhotoZoom        `json:"photoZoom"`
	MapState             MapView          `json:"mapState"`
	TransitionInProgress bool             `json:"transitionInProgress"`
}

const (
	defaultPhotoMinZoom = 1
	defaultPhotoMaxZoom = 4
	defaultMapZoom      = 2
)

func defaultPhotoZoom() PhotoZoom {
	return PhotoZoom{
		ZoomLevel: defaultPhotoMinZoom,
		MinZoom:   defaultPhotoMinZoom,
		MaxZoom:   defaultPhotoMaxZoom,
	}
}

func defaultMapView() MapView {
	return MapView{
		ZoomLevel:   defaultMapZoom,
		DefaultZoom: defaultMapZoom,
	}
}

func initialInterfaceState() InterfaceState {
	return InterfaceState{
		ActiveView: photoguessr.ViewPhoto,
		PhotoZoom:  defaultPhotoZoom(),
		MapState:   defaultMapView(),
	}
}

func reduceInterface(s InterfaceState, a Action) InterfaceState {
	switch a := a.(type) {
	case ToggleView:
		if s.TransitionInProgress {
			return s
		}
		if s.ActiveView == photoguessr.ViewPhoto {
			s.ActiveView = photoguessr.ViewMap
		} else {
			s.ActiveView = photoguessr.ViewPhoto
		}
		return s

	case SetActiveView:
		if s.TransitionInProgress {
			return s
		}
		if a.ActiveView != photoguessr.ViewPhoto && a.ActiveView != photoguessr.ViewMap {
			return s
		}
		s.ActiveView = a.ActiveView
		return s

	case StartTransition:
		s.TransitionInProgress = true
		return s

	case CompleteTransition:
		s.TransitionInProgress = false
		return s

	case SetPhotoZoom:
		s.PhotoZoom.ZoomLevel = clamp(a.ZoomLevel, s.PhotoZoom.MinZoom, s.PhotoZoom.MaxZoom)
		return s

	case SetPhotoPosition:
		s.PhotoZoom.Position = a.Position
		return s

	case SetPhotoZoomState:
		s.PhotoZoom.ZoomLevel = clamp(a.ZoomLevel, s.PhotoZoom.MinZoom, s.PhotoZoom.MaxZoom)
		s.PhotoZoom.Position = a.Position
		return s

	case ResetPhotoZoom:
		s.PhotoZoom = defaultPhotoZoom()
		return s

	case SetMapZoom:
		if a.ZoomLevel < 0 {
			s.MapState.ZoomLevel = 0
		} else {
			s.MapState.ZoomLevel = a.ZoomLevel
		}
		return s

	case SetMapCenter:
		if !a.Center.Valid() {
			return s
		}
		s.MapState.Center = a.Center
		return s

	case ResetMapState:
		m := defaultMapView()
		m.DefaultCenter = s.MapState.DefaultCenter
		m.Center = s.MapState.DefaultCenter
		s.MapState = m
		return s

	case ResetInterfaceState, ResetGame:
		return initialInterfaceState()

	case ResetForNewPhoto:
		// New round: photo pane active, both panes back to defaults, any
		// in-flight transition cleared.
		s.ActiveView = photoguessr.ViewPhoto
		s.PhotoZoom = defaultPhotoZoom()
		s.MapState.ZoomLevel = s.MapState.DefaultZoom
		s.MapState.Center = s.MapState.DefaultCenter
		s.TransitionInProgress = false
		return s
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

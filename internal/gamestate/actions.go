package gamestate

import "github.com/pastlens/photoguessr/internal/photoguessr"

// Action is one of the closed set of typed events that may mutate the store.
// Every variant is an immutable payload struct; reducers match over the
// concrete type and treat anything they don't own as a no-op.
//
// actionName doubles as the closed-set marker and the label used in logs.
type Action interface {
	actionName() string
}

// --- Game lifecycle ---

type StartGame struct{}

type NextPhoto struct{}

type EndGame struct{}

type ResetGame struct{}

type SetGameError struct {
	Error string
}

type ClearGameError struct{}

type SetGameLoading struct {
	Loading bool
}

func (StartGame) actionName() string      { return "game/start" }
func (NextPhoto) actionName() string      { return "game/nextPhoto" }
func (EndGame) actionName() string        { return "game/end" }
func (ResetGame) actionName() string      { return "game/reset" }
func (SetGameError) actionName() string   { return "game/setError" }
func (ClearGameError) actionName() string { return "game/clearError" }
func (SetGameLoading) actionName() string { return "game/setLoading" }

// --- Photo deck ---

type LoadPhotos struct{}

type LoadPhotosWithOptions struct {
	ForceRefresh bool
}

type LoadCuratedPhotos struct {
	Category     photoguessr.Category
	ForceRefresh bool
}

type LoadPhotosSuccess struct {
	Photos []photoguessr.Photo
}

type LoadPhotosFailure struct {
	Error string
}

type SetCurrentPhoto struct {
	PhotoIndex int
}

type ClearCurrentPhoto struct{}

type ClearPhotos struct{}

func (LoadPhotos) actionName() string            { return "photos/load" }
func (LoadPhotosWithOptions) actionName() string { return "photos/loadWithOptions" }
func (LoadCuratedPhotos) actionName() string     { return "photos/loadCurated" }
func (LoadPhotosSuccess) actionName() string     { return "photos/loadSuccess" }
func (LoadPhotosFailure) actionName() string     { return "photos/loadFailure" }
func (SetCurrentPhoto) actionName() string       { return "photos/setCurrent" }
func (ClearCurrentPhoto) actionName() string     { return "photos/clearCurrent" }
func (ClearPhotos) actionName() string           { return "photos/clear" }

// --- Scoring ---

type SubmitGuess struct {
	Guess photoguessr.Guess
}

type SetCurrentGuess struct {
	Guess photoguessr.Guess
}

type ClearCurrentGuess struct{}

// CalculateScore asks the coordinator to run the external scorer directly,
// bypassing the current-photo lookup. The UI normally dispatches SubmitGuess
// and lets the coordinator fill these fields in.
type CalculateScore struct {
	PhotoID           string
	Guess             photoguessr.Guess
	ActualYear        int
	ActualCoordinates photoguessr.Coordinates
}

type AddScore struct {
	Score photoguessr.Score
}

type ResetScores struct{}

type RemoveScore struct {
	PhotoID string
}

type SetScoringError struct {
	Error string
}

type ClearScoringError struct{}

func (SubmitGuess) actionName() string       { return "scoring/submitGuess" }
func (SetCurrentGuess) actionName() string   { return "scoring/setCurrentGuess" }
func (ClearCurrentGuess) actionName() string { return "scoring/clearCurrentGuess" }
func (CalculateScore) actionName() string    { return "scoring/calculateScore" }
func (AddScore) actionName() string          { return "scoring/addScore" }
func (ResetScores) actionName() string       { return "scoring/reset" }
func (RemoveScore) actionName() string       { return "scoring/removeScore" }
func (SetScoringError) actionName() string   { return "scoring/setError" }
func (ClearScoringError) actionName() string { return "scoring/clearError" }

// --- Interface ---

type ToggleView struct{}

type SetActiveView struct {
	ActiveView photoguessr.View
}

type StartTransition struct{}

type CompleteTransition struct{}

type SetPhotoZoom struct {
	ZoomLevel float64
}

type SetPhotoPosition struct {
	Position Position
}

// SetPhotoZoomState replaces zoom level and pan position together.
type SetPhotoZoomState struct {
	ZoomLevel float64
	Position  Position
}

type ResetPhotoZoom struct{}

type SetMapZoom struct {
	ZoomLevel float64
}

type SetMapCenter struct {
	Center photoguessr.Coordinates
}

type ResetMapState struct{}

type ResetInterfaceState struct{}

// ResetForNewPhoto is the distinguished partial reset fired by the
// coordinator whenever the game advances to a new round: active view back
// to photo, photo zoom and map back to defaults, any in-flight transition
// cleared.
type ResetForNewPhoto struct{}

func (ToggleView) actionName() string          { return "view/toggle" }
func (SetActiveView) actionName() string       { return "view/setActive" }
func (StartTransition) actionName() string     { return "view/startTransition" }
func (CompleteTransition) actionName() string  { return "view/completeTransition" }
func (SetPhotoZoom) actionName() string        { return "view/setPhotoZoom" }
func (SetPhotoPosition) actionName() string    { return "view/setPhotoPosition" }
func (SetPhotoZoomState) actionName() string   { return "view/setPhotoZoomState" }
func (ResetPhotoZoom) actionName() string      { return "view/resetPhotoZoom" }
func (SetMapZoom) actionName() string          { return "view/setMapZoom" }
func (SetMapCenter) actionName() string        { return "view/setMapCenter" }
func (ResetMapState) actionName() string       { return "view/resetMapState" }
func (ResetInterfaceState) actionName() string { return "view/resetAll" }
func (ResetForNewPhoto) actionName() string    { return "view/resetForNewPhoto" }

// ActionName returns the log label for a, or "unknown" for a nil action.
func ActionName(a Action) string {
	if a == nil {
		return "unknown"
	}
	return a.actionName()
}

package gamestate

import (
	"time"

	"github.com/pastlens/photoguessr/internal/photoguessr"
)

// Selectors are pure, side-effect-free reads over State. They are recomputed
// on every state change and must never mutate their inputs.

// Progress is the player's position in the game, 1-based.
type Progress struct {
	Current    int     `json:"current"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// GameProgress derives the 1-based round progress.
func GameProgress(s State) Progress {
	p := Progress{Total: s.Game.TotalPhotos}
	if p.Total == 0 {
		return p
	}
	p.Current = s.Game.CurrentPhotoIndex + 1
	p.Percentage = float64(p.Current) / float64(p.Total) * 100
	return p
}

func IsGameNotStarted(s State) bool {
	return s.Game.Status == photoguessr.StatusNotStarted
}

func IsGameInProgress(s State) bool {
	return s.Game.Status == photoguessr.StatusInProgress
}

func IsGameCompleted(s State) bool {
	return s.Game.Status == photoguessr.StatusCompleted
}

func GameHasError(s State) bool {
	return s.Game.Status == photoguessr.StatusError
}

// CurrentPhoto returns the denormalized current photo, or nil.
func CurrentPhoto(s State) *photoguessr.Photo {
	return s.Photos.CurrentPhoto
}

// PhotoInSync reports whether the denormalized current photo matches the
// photo at the game's current index. Both slices must have settled for this
// to hold; the coordinator guarantees it within one dispatch cycle.
func PhotoInSync(s State) bool {
	if s.Photos.CurrentPhoto == nil {
		return len(s.Photos.Photos) == 0
	}
	idx := s.Game.CurrentPhotoIndex
	if idx < 0 || idx >= len(s.Photos.Photos) {
		return false
	}
	return s.Photos.CurrentPhoto.ID == s.Photos.Photos[idx].ID
}

// ScoreForPhoto returns the stored score for a photo, if any.
func ScoreForPhoto(s State, photoID string) (photoguessr.Score, bool) {
	for _, sc := range s.Scoring.Scores {
		if sc.PhotoID == photoID {
			return sc, true
		}
	}
	return photoguessr.Score{}, false
}

// CanSubmitGuess reports whether a submit would pass the coordinator's
// checks: game running, a resolvable current photo, a valid in-flight guess,
// and no score yet shown for this round.
func CanSubmitGuess(s State, now time.Time) bool {
	if !IsGameInProgress(s) || s.Scoring.Loading {
		return false
	}
	photo := s.Photos.CurrentPhoto
	if photo == nil || s.Scoring.CurrentGuess == nil {
		return false
	}
	if photoguessr.ValidateGuess(*s.Scoring.CurrentGuess, now) != nil {
		return false
	}
	_, scored := ScoreForPhoto(s, photo.ID)
	return !scored
}

// ShowingResults is true iff a current guess exists and a score exists for
// the current photo — the round-result view reads both.
func ShowingResults(s State) bool {
	if s.Scoring.CurrentGuess == nil || s.Photos.CurrentPhoto == nil {
		return false
	}
	_, ok := ScoreForPhoto(s, s.Photos.CurrentPhoto.ID)
	return ok
}

// Breakdown summarizes accumulated scores.
type Breakdown struct {
	Total       int     `json:"total"`
	Year        int     `json:"year"`
	Location    int     `json:"location"`
	Average     float64 `json:"average"`
	MaxPossible int     `json:"maxPossible"`
}

// ScoreBreakdown derives the aggregate score view.
func ScoreBreakdown(s State) Breakdown {
	b := Breakdown{
		Total:       s.Scoring.TotalScore,
		MaxPossible: s.Game.TotalPhotos * 2 * photoguessr.MaxPointsPerComponent,
	}
	for _, sc := range s.Scoring.Scores {
		b.Year += sc.YearScore
		b.Location += sc.LocationScore
	}
	if n := len(s.Scoring.Scores); n > 0 {
		b.Average = float64(b.Total) / float64(n)
	}
	return b
}

// PerformanceCategory buckets a finished game by its share of the maximum
// possible score.
func PerformanceCategory(s State) string {
	b := ScoreBreakdown(s)
	if b.MaxPossible == 0 {
		return "unrated"
	}
	switch ratio := float64(b.Total) / float64(b.MaxPossible); {
	case ratio >= 0.9:
		return "historian"
	case ratio >= 0.75:
		return "expert"
	case ratio >= 0.5:
		return "explorer"
	case ratio >= 0.25:
		return "apprentice"
	default:
		return "novice"
	}
}

// CanToggle reports whether a view toggle would be honored right now.
func CanToggle(s State) bool {
	return !s.Interface.TransitionInProgress
}

// NeedsReset reports whether the interface deviates from the new-round
// baseline that ResetForNewPhoto restores.
func NeedsReset(s State) bool {
	if s.Interface.TransitionInProgress {
		return true
	}
	if s.Interface.ActiveView != photoguessr.ViewPhoto {
		return true
	}
	if s.Interface.PhotoZoom != defaultPhotoZoom() {
		return true
	}
	m := s.Interface.MapState
	return m.ZoomLevel != m.DefaultZoom || m.Center != m.DefaultCenter
}

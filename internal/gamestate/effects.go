package gamestate

import (
	"fmt"
	"time"

	"github.com/pastlens/photoguessr/internal/photoguessr"
)

// Scorer converts a guess and a photo's true answer into a Score. The engine
// only constrains the output contract: components in [0,5000], total equal
// to their sum.
type Scorer interface {
	CalculateScore(photoID string, guess photoguessr.Guess, actualYear int, actual photoguessr.Coordinates) (photoguessr.Score, error)
}

// Coordinator implements the cross-slice consistency rules that no single
// reducer can express, because each reducer only sees its own slice. It runs
// after the reducers, observes the action together with the state before and
// after it, and returns follow-up actions that re-enter the dispatch loop.
//
// It is synchronous and deterministic; asynchronous work (photo fetching)
// lives in the Store, not here.
type Coordinator struct {
	Scorer Scorer
}

// React returns the follow-up actions for one settled action.
func (c Coordinator) React(a Action, prev, next State, now time.Time) []Action {
	switch a := a.(type) {
	case StartGame:
		if len(next.Photos.Photos) == 0 {
			return []Action{SetGameError{Error: "cannot start game: no photos loaded"}}
		}
		return []Action{SetCurrentPhoto{PhotoIndex: 0}}

	case NextPhoto:
		if next.Game.Status != photoguessr.StatusInProgress {
			// Last round: the reducer completed the game and kept the index
			// at its last valid value. Nothing to sync.
			return nil
		}
		// Recompute the target from the pre-increment index. If it disagrees
		// with what the game reducer computed, the slices have already
		// desynchronized and we fail loudly instead of papering over it.
		target := prev.Game.CurrentPhotoIndex + 1
		if target != next.Game.CurrentPhotoIndex {
			return []Action{SetGameError{Error: fmt.Sprintf(
				"photo index desync: coordinator computed %d, game state has %d",
				target, next.Game.CurrentPhotoIndex)}}
		}
		return []Action{
			SetCurrentPhoto{PhotoIndex: target},
			ClearCurrentGuess{},
			ResetForNewPhoto{},
		}

	case SetCurrentPhoto:
		if next.Photos.CurrentPhoto == nil && len(next.Photos.Photos) > 0 {
			return []Action{SetGameError{Error: fmt.Sprintf(
				"cannot resolve photo at index %d: deck has %d photos",
				a.PhotoIndex, len(next.Photos.Photos))}}
		}
		return nil

	case SubmitGuess:
		photo := next.Photos.CurrentPhoto
		if photo == nil {
			return []Action{SetScoringError{Error: ErrNoCurrentPhoto}}
		}
		if err := photoguessr.ValidateGuess(a.Guess, now); err != nil {
			return []Action{SetScoringError{Error: "invalid guess: " + err.Error()}}
		}
		return c.score(photo.ID, a.Guess, photo.Year, photo.Coordinates)

	case CalculateScore:
		return c.score(a.PhotoID, a.Guess, a.ActualYear, a.ActualCoordinates)
	}
	return nil
}

// score delegates to the external scorer and converts its outcome into
// either an AddScore or a distinguishable scoring failure.
func (c Coordinator) score(photoID string, guess photoguessr.Guess, actualYear int, actual photoguessr.Coordinates) []Action {
	if c.Scorer == nil {
		return []Action{SetScoringError{Error: scoringFailurePrefix + ": no scorer configured"}}
	}
	score, err := c.Scorer.CalculateScore(photoID, guess, actualYear, actual)
	if err != nil {
		return []Action{SetScoringError{Error: scoringFailurePrefix + ": " + err.Error()}}
	}
	if !score.Valid() || score.PhotoID != photoID {
		return []Action{SetScoringError{Error: fmt.Sprintf(
			"%s: scorer returned invalid score %+v", scoringFailurePrefix, score)}}
	}
	return []Action{AddScore{Score: score}}
}

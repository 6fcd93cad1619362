package gamestate

import (
	"time"

	"github.com/pastlens/photoguessr/internal/photoguessr"
)

// GameState is the lifecycle slice: where the player is in the five-round
// game, and when it started and ended.
//
// Invariants: 0 <= CurrentPhotoIndex < TotalPhotos whenever TotalPhotos > 0;
// EndTime is set iff Status is COMPLETED.
type GameState struct {
	CurrentPhotoIndex int                    `json:"currentPhotoIndex"`
	TotalPhotos       int                    `json:"totalPhotos"`
	Status            photoguessr.GameStatus `json:"gameStatus"`
	StartTime         time.Time              `json:"startTime"`
	EndTime           *time.Time             `json:"endTime,omitempty"`
	Loading           bool                   `json:"loading"`
	Error             string                 `json:"error,omitempty"`
}

func initialGameState() GameState {
	return GameState{Status: photoguessr.StatusNotStarted}
}

// reduceGame folds one action into the lifecycle slice. It is total: actions
// it does not own fall through unchanged.
func reduceGame(s GameState, a Action, now time.Time) GameState {
	switch a := a.(type) {
	case StartGame:
		s.Status = photoguessr.StatusInProgress
		s.CurrentPhotoIndex = 0
		s.StartTime = now
		s.EndTime = nil
		s.Error = ""
		return s

	case NextPhoto:
		if s.Status != photoguessr.StatusInProgress {
			return s
		}
		if s.CurrentPhotoIndex+1 < s.TotalPhotos {
			s.CurrentPhotoIndex++
			return s
		}
		// Last photo: complete instead of stepping out of bounds. The index
		// stays at the last valid value.
		s.Status = photoguessr.StatusCompleted
		end := now
		s.EndTime = &end
		return s

	case EndGame:
		if s.Status != photoguessr.StatusInProgress {
			return s
		}
		s.Status = photoguessr.StatusCompleted
		end := now
		s.EndTime = &end
		return s

	case ResetGame:
		// Full lifecycle reset. The deck size survives because the photos
		// slice owns the deck and resetGame does not clear it.
		next := initialGameState()
		next.TotalPhotos = s.TotalPhotos
		next.StartTime = now
		return next

	case SetGameError:
		s.Status = photoguessr.StatusError
		s.Error = a.Error
		s.Loading = false
		return s

	case ClearGameError:
		if s.Status != photoguessr.StatusError {
			return s
		}
		s.Status = photoguessr.StatusNotStarted
		s.Error = ""
		return s

	case SetGameLoading:
		s.Loading = a.Loading
		return s

	case LoadPhotosSuccess:
		s.TotalPhotos = len(a.Photos)
		if s.CurrentPhotoIndex >= s.TotalPhotos {
			s.CurrentPhotoIndex = 0
		}
		return s

	case ClearPhotos:
		s.TotalPhotos = 0
		s.CurrentPhotoIndex = 0
		return s
	}
	return s
}

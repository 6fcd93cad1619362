package server

import (
	"net/http"
	"time"

	"github.com/pastlens/photoguessr/internal/gamestate"
	"github.com/pastlens/photoguessr/internal/photoguessr"
)

// PhotoInfo is the player-visible slice of a photo. The true year and
// coordinates are the answers and are only revealed in round results.
type PhotoInfo struct {
	ID       string                    `json:"id"`
	URL      string                    `json:"url"`
	Title    string                    `json:"title"`
	Source   string                    `json:"source"`
	Metadata photoguessr.PhotoMetadata `json:"metadata"`
}

type GameInfo struct {
	Status            photoguessr.GameStatus `json:"status"`
	CurrentPhotoIndex int                    `json:"currentPhotoIndex"`
	TotalPhotos       int                    `json:"totalPhotos"`
	StartTime         *time.Time             `json:"startTime,omitempty"`
	EndTime           *time.Time             `json:"endTime,omitempty"`
	Loading           bool                   `json:"loading"`
	Error             string                 `json:"error,omitempty"`
	ErrorRetryable    bool                   `json:"errorRetryable,omitempty"`
}

type ScoringInfo struct {
	Scores         []photoguessr.Score `json:"scores"`
	TotalScore     int                 `json:"totalScore"`
	CurrentGuess   *photoguessr.Guess  `json:"currentGuess,omitempty"`
	Loading        bool                `json:"loading"`
	Error          string              `json:"error,omitempty"`
	ErrorRetryable bool                `json:"errorRetryable,omitempty"`
	ScorerFailed   bool                `json:"scorerFailed,omitempty"`
}

type PhotosInfo struct {
	Count          int    `json:"count"`
	Loading        bool   `json:"loading"`
	Error          string `json:"error,omitempty"`
	ErrorRetryable bool   `json:"errorRetryable,omitempty"`
}

// DerivedInfo carries the selector outputs the UI renders from.
type DerivedInfo struct {
	CanSubmitGuess      bool                `json:"canSubmitGuess"`
	ShowingResults      bool                `json:"showingResults"`
	CanToggle           bool                `json:"canToggle"`
	NeedsReset          bool                `json:"needsReset"`
	Breakdown           gamestate.Breakdown `json:"breakdown"`
	PerformanceCategory string              `json:"performanceCategory"`
}

type StateResponse struct {
	Game         GameInfo                 `json:"game"`
	Progress     gamestate.Progress       `json:"progress"`
	CurrentPhoto *PhotoInfo               `json:"currentPhoto,omitempty"`
	Photos       PhotosInfo               `json:"photos"`
	Scoring      ScoringInfo              `json:"scoring"`
	Interface    gamestate.InterfaceState `json:"interface"`
	Derived      DerivedInfo              `json:"derived"`
}

func stateResponse(s gamestate.State, now time.Time) StateResponse {
	resp := StateResponse{
		Game: GameInfo{
			Status:            s.Game.Status,
			CurrentPhotoIndex: s.Game.CurrentPhotoIndex,
			TotalPhotos:       s.Game.TotalPhotos,
			EndTime:           s.Game.EndTime,
			Loading:           s.Game.Loading,
			Error:             s.Game.Error,
			ErrorRetryable:    s.Game.Error != "" && gamestate.Retryable(s.Game.Error),
		},
		Progress: gamestate.GameProgress(s),
		Photos: PhotosInfo{
			Count:          len(s.Photos.Photos),
			Loading:        s.Photos.Loading,
			Error:          s.Photos.Error,
			ErrorRetryable: s.Photos.Error != "" && gamestate.Retryable(s.Photos.Error),
		},
		Scoring: ScoringInfo{
			Scores:         s.Scoring.Scores,
			TotalScore:     s.Scoring.TotalScore,
			CurrentGuess:   s.Scoring.CurrentGuess,
			Loading:        s.Scoring.Loading,
			Error:          s.Scoring.Error,
			ErrorRetryable: s.Scoring.Error != "" && gamestate.Retryable(s.Scoring.Error),
			ScorerFailed:   gamestate.IsScoringFailure(s.Scoring.Error),
		},
		Interface: s.Interface,
		Derived: DerivedInfo{
			CanSubmitGuess:      gamestate.CanSubmitGuess(s, now),
			ShowingResults:      gamestate.ShowingResults(s),
			CanToggle:           gamestate.CanToggle(s),
			NeedsReset:          gamestate.NeedsReset(s),
			Breakdown:           gamestate.ScoreBreakdown(s),
			PerformanceCategory: gamestate.PerformanceCategory(s),
		},
	}
	if !s.Game.StartTime.IsZero() {
		t := s.Game.StartTime
		resp.Game.StartTime = &t
	}
	if p := s.Photos.CurrentPhoto; p != nil {
		resp.CurrentPhoto = &PhotoInfo{
			ID:       p.ID,
			URL:      p.URL,
			Title:    p.Title,
			Source:   p.Source,
			Metadata: p.Metadata,
		}
	}
	if resp.Scoring.Scores == nil {
		resp.Scoring.Scores = []photoguessr.Score{}
	}
	return resp
}

func handleGameState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stateResponse(gameStore(r).State(), time.Now()))
	}
}

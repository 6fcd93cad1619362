package server

import (
	"net/http"

	"github.com/pastlens/photoguessr/internal/gamestate"
	"github.com/pastlens/photoguessr/internal/photoguessr"
)

// ResultPhoto pairs a scored round with the photo's revealed answer.
type ResultPhoto struct {
	Photo photoguessr.Photo `json:"photo"`
	Score photoguessr.Score `json:"score"`
}

type ResultsResponse struct {
	Rounds              []ResultPhoto       `json:"rounds"`
	Breakdown           gamestate.Breakdown `json:"breakdown"`
	PerformanceCategory string              `json:"performanceCategory"`
	DurationSeconds     float64             `json:"durationSeconds"`
}

// handleResults is only reachable through the COMPLETED guard, so the
// answers (true years and coordinates) are safe to reveal.
func handleResults() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := gameStore(r).State()

		resp := ResultsResponse{
			Rounds:              []ResultPhoto{},
			Breakdown:           gamestate.ScoreBreakdown(state),
			PerformanceCategory: gamestate.PerformanceCategory(state),
		}
		for _, p := range state.Photos.Photos {
			if sc, ok := gamestate.ScoreForPhoto(state, p.ID); ok {
				resp.Rounds = append(resp.Rounds, ResultPhoto{Photo: p, Score: sc})
			}
		}
		if end := state.Game.EndTime; end != nil && !state.Game.StartTime.IsZero() {
			resp.DurationSeconds = end.Sub(state.Game.StartTime).Seconds()
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

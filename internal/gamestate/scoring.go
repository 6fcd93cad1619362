package gamestate

import "github.com/pastlens/photoguessr/internal/photoguessr"

// ScoringState is the scoring slice: at most one score per photo, the exact
// running total, and the player's in-flight guess.
//
// Invariant: TotalScore == sum of Scores[i].TotalScore, always.
type ScoringState struct {
	Scores       []photoguessr.Score `json:"scores"`
	TotalScore   int                 `json:"totalScore"`
	CurrentGuess *photoguessr.Guess  `json:"currentGuess,omitempty"`
	Loading      bool                `json:"loading"`
	Error        string              `json:"error,omitempty"`
}

func initialScoringState() ScoringState {
	return ScoringState{}
}

func reduceScoring(s ScoringState, a Action) ScoringState {
	switch a := a.(type) {
	case SubmitGuess:
		g := a.Guess
		s.CurrentGuess = &g
		s.Loading = true
		s.Error = ""
		return s

	case SetCurrentGuess:
		g := a.Guess
		s.CurrentGuess = &g
		return s

	case ClearCurrentGuess:
		s.CurrentGuess = nil
		return s

	case AddScore:
		score := a.Score
		// Never trust an externally supplied total that disagrees with the
		// component sum.
		score.TotalScore = score.YearScore + score.LocationScore
		s.Scores = upsertScore(s.Scores, score)
		s.TotalScore = sumScores(s.Scores)
		s.Loading = false
		s.Error = ""
		return s

	case RemoveScore:
		kept := make([]photoguessr.Score, 0, len(s.Scores))
		for _, sc := range s.Scores {
			if sc.PhotoID != a.PhotoID {
				kept = append(kept, sc)
			}
		}
		s.Scores = kept
		s.TotalScore = sumScores(kept)
		return s

	case ResetScores:
		s.Scores = nil
		s.TotalScore = 0
		s.Error = ""
		s.Loading = false
		return s

	case SetScoringError:
		s.Error = a.Error
		s.Loading = false
		return s

	case ClearScoringError:
		s.Error = ""
		return s

	case StartGame, ResetGame:
		// A new game starts with a clean slate.
		return initialScoringState()
	}
	return s
}

// upsertScore replaces any existing score for the same photo in place,
// preserving round order, and appends otherwise.
func upsertScore(scores []photoguessr.Score, score photoguessr.Score) []photoguessr.Score {
	next := make([]photoguessr.Score, len(scores))
	copy(next, scores)
	for i, sc := range next {
		if sc.PhotoID == score.PhotoID {
			next[i] = score
			return next
		}
	}
	return append(next, score)
}

func sumScores(scores []photoguessr.Score) int {
	total := 0
	for _, sc := range scores {
		total += sc.TotalScore
	}
	return total
}

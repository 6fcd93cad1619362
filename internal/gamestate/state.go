package gamestate

import "time"

// State is the whole store: four independently owned slices. Reducers only
// ever touch their own slice; cross-slice consistency is the coordinator's
// job.
type State struct {
	Game      GameState      `json:"game"`
	Photos    PhotoState     `json:"photos"`
	Scoring   ScoringState   `json:"scoring"`
	Interface InterfaceState `json:"interface"`
}

func initialState() State {
	return State{
		Game:      initialGameState(),
		Photos:    initialPhotoState(),
		Scoring:   initialScoringState(),
		Interface: initialInterfaceState(),
	}
}

// reduce runs every slice reducer over one action, producing the next state.
// Each reducer sees the same action and decides independently whether it
// cares.
func reduce(s State, a Action, now time.Time) State {
	return State{
		Game:      reduceGame(s.Game, a, now),
		Photos:    reducePhotos(s.Photos, a),
		Scoring:   reduceScoring(s.Scoring, a),
		Interface: reduceInterface(s.Interface, a),
	}
}

package gamestate

import (
	"testing"

	"github.com/pastlens/photoguessr/internal/photoguessr"
)

func TestGameProgress(t *testing.T) {
	s := initialState()
	if p := GameProgress(s); p.Current != 0 || p.Total != 0 || p.Percentage != 0 {
		t.Errorf("empty progress = %+v", p)
	}

	s.Game.TotalPhotos = 5
	s.Game.CurrentPhotoIndex = 2
	p := GameProgress(s)
	if p.Current != 3 || p.Total != 5 {
		t.Errorf("progress = %d/%d, want 3/5", p.Current, p.Total)
	}
	if p.Percentage != 60 {
		t.Errorf("percentage = %v, want 60", p.Percentage)
	}
}

func TestPhotoInSync(t *testing.T) {
	deck := testDeck(3)

	s := initialState()
	if !PhotoInSync(s) {
		t.Error("empty state reported out of sync")
	}

	s.Photos.Photos = deck
	s.Game.CurrentPhotoIndex = 1
	p := deck[1]
	s.Photos.CurrentPhoto = &p
	if !PhotoInSync(s) {
		t.Error("matching photo reported out of sync")
	}

	wrong := deck[2]
	s.Photos.CurrentPhoto = &wrong
	if PhotoInSync(s) {
		t.Error("mismatched photo reported in sync")
	}

	s.Photos.CurrentPhoto = nil
	if PhotoInSync(s) {
		t.Error("nil current photo with a non-empty deck reported in sync")
	}
}

func TestCanSubmitGuess(t *testing.T) {
	deck := testDeck(3)
	base := func() State {
		s := initialState()
		s.Game.Status = photoguessr.StatusInProgress
		s.Game.TotalPhotos = 3
		s.Photos.Photos = deck
		p := deck[0]
		s.Photos.CurrentPhoto = &p
		g := validGuess()
		s.Scoring.CurrentGuess = &g
		return s
	}

	if !CanSubmitGuess(base(), testNow) {
		t.Fatal("baseline state cannot submit")
	}

	cases := []struct {
		name  string
		state func() State
	}{
		{"not in progress", func() State {
			s := base()
			s.Game.Status = photoguessr.StatusNotStarted
			return s
		}},
		{"scoring in flight", func() State {
			s := base()
			s.Scoring.Loading = true
			return s
		}},
		{"no current photo", func() State {
			s := base()
			s.Photos.CurrentPhoto = nil
			return s
		}},
		{"no guess", func() State {
			s := base()
			s.Scoring.CurrentGuess = nil
			return s
		}},
		{"invalid year", func() State {
			s := base()
			s.Scoring.CurrentGuess.Year = 1850
			return s
		}},
		{"unset location", func() State {
			s := base()
			s.Scoring.CurrentGuess.Coordinates = photoguessr.Coordinates{}
			return s
		}},
		{"already scored", func() State {
			s := base()
			s.Scoring.Scores = []photoguessr.Score{{PhotoID: deck[0].ID, YearScore: 1, LocationScore: 1, TotalScore: 2}}
			return s
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if CanSubmitGuess(tc.state(), testNow) {
				t.Error("submit allowed")
			}
		})
	}
}

func TestShowingResults(t *testing.T) {
	deck := testDeck(1)
	s := initialState()
	s.Photos.Photos = deck
	p := deck[0]
	s.Photos.CurrentPhoto = &p

	if ShowingResults(s) {
		t.Error("results shown without a guess")
	}

	g := validGuess()
	s.Scoring.CurrentGuess = &g
	if ShowingResults(s) {
		t.Error("results shown without a score")
	}

	s.Scoring.Scores = []photoguessr.Score{{PhotoID: p.ID, YearScore: 1000, LocationScore: 1000, TotalScore: 2000}}
	if !ShowingResults(s) {
		t.Error("results not shown with guess and score present")
	}
}

func TestScoreBreakdown(t *testing.T) {
	s := initialState()
	s.Game.TotalPhotos = 5
	s.Scoring.Scores = []photoguessr.Score{
		{PhotoID: "p1", YearScore: 4000, LocationScore: 5000, TotalScore: 9000},
		{PhotoID: "p2", YearScore: 1000, LocationScore: 2000, TotalScore: 3000},
	}
	s.Scoring.TotalScore = 12000

	b := ScoreBreakdown(s)
	if b.Total != 12000 || b.Year != 5000 || b.Location != 7000 {
		t.Errorf("breakdown = %+v", b)
	}
	if b.Average != 6000 {
		t.Errorf("average = %v, want 6000", b.Average)
	}
	if b.MaxPossible != 50000 {
		t.Errorf("maxPossible = %d, want 50000", b.MaxPossible)
	}
}

func TestPerformanceCategory(t *testing.T) {
	cases := []struct {
		total int
		want  string
	}{
		{50000, "historian"},
		{45000, "historian"},
		{44999, "expert"},
		{37500, "expert"},
		{37499, "explorer"},
		{25000, "explorer"},
		{24999, "apprentice"},
		{12500, "apprentice"},
		{12499, "novice"},
		{0, "novice"},
	}
	for _, tc := range cases {
		s := initialState()
		s.Game.TotalPhotos = 5
		s.Scoring.TotalScore = tc.total
		if got := PerformanceCategory(s); got != tc.want {
			t.Errorf("category(%d) = %s, want %s", tc.total, got, tc.want)
		}
	}

	if got := PerformanceCategory(initialState()); got != "unrated" {
		t.Errorf("category with no deck = %s, want unrated", got)
	}
}

func TestNeedsReset(t *testing.T) {
	s := initialState()
	if NeedsReset(s) {
		t.Error("pristine interface needs reset")
	}

	dirty := []func(*State){
		func(s *State) { s.Interface.TransitionInProgress = true },
		func(s *State) { s.Interface.ActiveView = photoguessr.ViewMap },
		func(s *State) { s.Interface.PhotoZoom.ZoomLevel = 2 },
		func(s *State) { s.Interface.MapState.ZoomLevel = 5 },
		func(s *State) { s.Interface.MapState.Center = photoguessr.Coordinates{Latitude: 1} },
	}
	for i, mutate := range dirty {
		s := initialState()
		mutate(&s)
		if !NeedsReset(s) {
			t.Errorf("case %d: dirty interface reported clean", i)
		}
	}
}

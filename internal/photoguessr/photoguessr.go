// Package photoguessr defines the core domain types and their range
// invariants. It has zero external dependencies — everything here is pure Go.
package photoguessr

import (
	"fmt"
	"math"
	"time"
)

// MinYear is the earliest photograph year the game accepts.
const MinYear = 1900

// DeckSize is the number of rounds in one game.
const DeckSize = 5

// MaxPointsPerComponent is the ceiling for the year and location components
// of a single round score.
const MaxPointsPerComponent = 5000

// Coordinates is a WGS-84 point. Longitude deliberately tolerates the
// [-360, 360] range because map libraries hand back un-normalized values;
// normalization happens where distance is computed.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both components are finite and within range.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -360 && c.Longitude <= 360
}

// IsUnset reports whether the coordinates are the exact (0,0) sentinel used
// for "no map selection yet".
func (c Coordinates) IsUnset() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// Guess is a player's answer for one photo: a year and a map location.
type Guess struct {
	Year        int         `json:"year"`
	Coordinates Coordinates `json:"coordinates"`
}

// Score is the result of scoring one guess against one photo.
// TotalScore is always YearScore + LocationScore; no independent value is
// ever stored.
type Score struct {
	PhotoID       string `json:"photoId"`
	YearScore     int    `json:"yearScore"`
	LocationScore int    `json:"locationScore"`
	TotalScore    int    `json:"totalScore"`
}

// Valid reports whether the score satisfies the component range and sum
// invariants.
func (s Score) Valid() bool {
	if s.PhotoID == "" {
		return false
	}
	if s.YearScore < 0 || s.YearScore > MaxPointsPerComponent {
		return false
	}
	if s.LocationScore < 0 || s.LocationScore > MaxPointsPerComponent {
		return false
	}
	return s.TotalScore == s.YearScore+s.LocationScore
}

// PhotoMetadata carries attribution for a photograph. License and
// OriginalSource are required; the rest is optional.
type PhotoMetadata struct {
	License        string `json:"license"`
	OriginalSource string `json:"originalSource"`
	DateCreated    string `json:"dateCreated"`
	Photographer   string `json:"photographer,omitempty"`
	Description    string `json:"description,omitempty"`
}

// Photo is one round's photograph with its true year and location.
type Photo struct {
	ID          string        `json:"id"`
	URL         string        `json:"url"`
	Title       string        `json:"title"`
	Year        int           `json:"year"`
	Coordinates Coordinates   `json:"coordinates"`
	Source      string        `json:"source"`
	Metadata    PhotoMetadata `json:"metadata"`
}

// Validate checks the photo invariants: year in [MinYear, now], valid
// coordinates, required metadata present.
func (p Photo) Validate(now time.Time) error {
	if p.ID == "" {
		return fmt.Errorf("photo: missing id")
	}
	if p.URL == "" {
		return fmt.Errorf("photo %s: missing url", p.ID)
	}
	if p.Title == "" {
		return fmt.Errorf("photo %s: missing title", p.ID)
	}
	if p.Year < MinYear || p.Year > now.Year() {
		return fmt.Errorf("photo %s: year %d outside [%d, %d]", p.ID, p.Year, MinYear, now.Year())
	}
	if !p.Coordinates.Valid() {
		return fmt.Errorf("photo %s: invalid coordinates (%v, %v)", p.ID, p.Coordinates.Latitude, p.Coordinates.Longitude)
	}
	if p.Metadata.License == "" {
		return fmt.Errorf("photo %s: missing license", p.ID)
	}
	if p.Metadata.OriginalSource == "" {
		return fmt.Errorf("photo %s: missing original source", p.ID)
	}
	if p.Metadata.DateCreated == "" {
		return fmt.Errorf("photo %s: missing date created", p.ID)
	}
	return nil
}

// Category buckets curated photos.
type Category string

const (
	CategoryArchitecture Category = "architecture"
	CategoryLandmarks    Category = "landmarks"
	CategoryEvents       Category = "events"
	CategoryAll          Category = "all"
)

// ValidCategory reports whether c is a known curated category.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryArchitecture, CategoryLandmarks, CategoryEvents, CategoryAll:
		return true
	}
	return false
}

// GameStatus is the lifecycle state of a single game.
type GameStatus string

const (
	StatusNotStarted GameStatus = "NOT_STARTED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusCompleted  GameStatus = "COMPLETED"
	StatusError      GameStatus = "ERROR"
)

// View names the two mutually exclusive interface panes.
type View string

const (
	ViewPhoto View = "photo"
	ViewMap   View = "map"
)

// ValidYearGuess reports whether year is inside [MinYear, now.Year()].
func ValidYearGuess(year int, now time.Time) bool {
	return year >= MinYear && year <= now.Year()
}

// ValidateGuess checks the full guess rule set. It returns a descriptive
// error naming the first failing rule, or nil.
func ValidateGuess(g Guess, now time.Time) error {
	if !ValidYearGuess(g.Year, now) {
		return fmt.Errorf("year %d must be between %d and %d", g.Year, MinYear, now.Year())
	}
	if !g.Coordinates.Valid() {
		return fmt.Errorf("coordinates (%v, %v) are out of range", g.Coordinates.Latitude, g.Coordinates.Longitude)
	}
	if g.Coordinates.IsUnset() {
		return fmt.Errorf("no location selected on the map")
	}
	return nil
}

// Package scoring implements the point engine the state store delegates to.
//
// Both components score 0–5000 and decay exponentially with the size of the
// miss:
//
//	yearScore     = round(5000 · e^(−|Δyear|/12))
//	locationScore = 5000 if within 1 km, else round(5000 · e^(−d/1500))
//
// with d the haversine distance in kilometres. A perfect year keeps the full
// 5000; being a decade off roughly halves it. Guessing the right city keeps
// most location points; the wrong continent is near zero.
package scoring

import (
	"fmt"
	"math"

	"github.com/pastlens/photoguessr/internal/photoguessr"
)

const (
	maxPoints = photoguessr.MaxPointsPerComponent

	yearDecay     = 12.0   // years to drop to ~37% of max
	distanceDecay = 1500.0 // km to drop to ~37% of max
	exactRadiusKM = 1.0

	earthRadiusKM = 6371.0
)

// Engine is a pure, stateless scorer.
type Engine struct{}

// New returns a scoring engine.
func New() Engine { return Engine{} }

// CalculateScore scores one guess against a photo's true year and location.
func (Engine) CalculateScore(photoID string, guess photoguessr.Guess, actualYear int, actual photoguessr.Coordinates) (photoguessr.Score, error) {
	if photoID == "" {
		return photoguessr.Score{}, fmt.Errorf("scoring: missing photo id")
	}
	if !guess.Coordinates.Valid() {
		return photoguessr.Score{}, fmt.Errorf("scoring: invalid guess coordinates (%v, %v)",
			guess.Coordinates.Latitude, guess.Coordinates.Longitude)
	}
	if !actual.Valid() {
		return photoguessr.Score{}, fmt.Errorf("scoring: invalid photo coordinates (%v, %v)",
			actual.Latitude, actual.Longitude)
	}

	yearScore := decayScore(math.Abs(float64(guess.Year-actualYear)), yearDecay)

	dist := DistanceKM(guess.Coordinates, actual)
	locationScore := maxPoints
	if dist > exactRadiusKM {
		locationScore = decayScore(dist, distanceDecay)
	}

	return photoguessr.Score{
		PhotoID:       photoID,
		YearScore:     yearScore,
		LocationScore: locationScore,
		TotalScore:    yearScore + locationScore,
	}, nil
}

func decayScore(miss, decay float64) int {
	score := int(math.Round(maxPoints * math.Exp(-miss/decay)))
	if score < 0 {
		return 0
	}
	if score > maxPoints {
		return maxPoints
	}
	return score
}

// DistanceKM is the haversine great-circle distance between two points.
// Longitudes are normalized into [-180, 180] first, since map libraries hand
// back values up to ±360.
func DistanceKM(a, b photoguessr.Coordinates) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(normalizeLongitude(b.Longitude) - normalizeLongitude(a.Longitude))

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKM * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func normalizeLongitude(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}

package photos

import (
	"context"
	"log/slog"

	"github.com/pastlens/photoguessr/internal/photoguessr"
)

// SeedDemo fills an empty curated catalog with a starter set of public
// domain photographs. Idempotent: does nothing if any photos exist.
func SeedDemo(ctx context.Context, logger *slog.Logger, store *CuratedStore) error {
	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, cp := range demoPhotos() {
		if err := store.Upsert(ctx, cp); err != nil {
			return err
		}
	}
	logger.Info("curated photo catalog seeded", "photos", len(demoPhotos()))
	return nil
}

func demoPhotos() []CuratedPhoto {
	meta := func(photographer, desc string) photoguessr.PhotoMetadata {
		return photoguessr.PhotoMetadata{
			License:        "Public Domain",
			OriginalSource: "Library of Congress",
			DateCreated:    "unknown",
			Photographer:   photographer,
			Description:    desc,
		}
	}
	return []CuratedPhoto{
		{Photo: photoguessr.Photo{ID: "empire-state-1931", URL: "https://photos.example.com/empire-state-1931.jpg",
			Title: "Empire State Building under construction", Year: 1931,
			Coordinates: photoguessr.Coordinates{Latitude: 40.7484, Longitude: -73.9857},
			Source: "loc", Metadata: meta("Lewis Hine", "Steelworkers atop the rising frame")},
			Category: photoguessr.CategoryArchitecture},
		{Photo: photoguessr.Photo{ID: "golden-gate-1935", URL: "https://photos.example.com/golden-gate-1935.jpg",
			Title: "Golden Gate Bridge towers rising", Year: 1935,
			Coordinates: photoguessr.Coordinates{Latitude: 37.8199, Longitude: -122.4783},
			Source: "loc", Metadata: meta("", "South tower before the deck was hung")},
			Category: photoguessr.CategoryArchitecture},
		{Photo: photoguessr.Photo{ID: "eiffel-1900", URL: "https://photos.example.com/eiffel-1900.jpg",
			Title: "Eiffel Tower at the Exposition Universelle", Year: 1900,
			Coordinates: photoguessr.Coordinates{Latitude: 48.8584, Longitude: 2.2945},
			Source: "gallica", Metadata: meta("", "World's fair grounds from the Trocadéro")},
			Category: photoguessr.CategoryLandmarks},
		{Photo: photoguessr.Photo{ID: "times-square-1945", URL: "https://photos.example.com/times-square-1945.jpg",
			Title: "V-J Day in Times Square", Year: 1945,
			Coordinates: photoguessr.Coordinates{Latitude: 40.758, Longitude: -73.9855},
			Source: "loc", Metadata: meta("", "Crowds celebrating the end of the war")},
			Category: photoguessr.CategoryEvents},
		{Photo: photoguessr.Photo{ID: "sydney-opera-1966", URL: "https://photos.example.com/sydney-opera-1966.jpg",
			Title: "Sydney Opera House shells under construction", Year: 1966,
			Coordinates: photoguessr.Coordinates{Latitude: -33.8568, Longitude: 151.2153},
			Source: "nla", Metadata: meta("", "Precast ribs over Bennelong Point")},
			Category: photoguessr.CategoryArchitecture},
		{Photo: photoguessr.Photo{ID: "berlin-wall-1961", URL: "https://photos.example.com/berlin-wall-1961.jpg",
			Title: "Berlin Wall going up at Bernauer Strasse", Year: 1961,
			Coordinates: photoguessr.Coordinates{Latitude: 52.5354, Longitude: 13.3903},
			Source: "bundesarchiv", Metadata: meta("", "Border troops laying the first blocks")},
			Category: photoguessr.CategoryEvents},
		{Photo: photoguessr.Photo{ID: "machu-picchu-1912", URL: "https://photos.example.com/machu-picchu-1912.jpg",
			Title: "Machu Picchu after initial clearing", Year: 1912,
			Coordinates: photoguessr.Coordinates{Latitude: -13.1631, Longitude: -72.545},
			Source: "yale", Metadata: meta("Hiram Bingham", "The citadel a year after its survey began")},
			Category: photoguessr.CategoryLandmarks},
		{Photo: photoguessr.Photo{ID: "tower-bridge-1903", URL: "https://photos.example.com/tower-bridge-1903.jpg",
			Title: "Tower Bridge with bascules raised", Year: 1903,
			Coordinates: photoguessr.Coordinates{Latitude: 51.5055, Longitude: -0.0754},
			Source: "nmm", Metadata: meta("", "Steamer passing upriver")},
			Category: photoguessr.CategoryLandmarks},
	}
}

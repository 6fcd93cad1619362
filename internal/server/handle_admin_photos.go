package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pastlens/photoguessr/internal/photoguessr"
	"github.com/pastlens/photoguessr/internal/photos"
)

// AdminPhotoRequest is the payload for creating or updating a curated photo.
type AdminPhotoRequest struct {
	ID          string                    `json:"id"`
	URL         string                    `json:"url"`
	Title       string                    `json:"title"`
	Year        int                       `json:"year"`
	Coordinates photoguessr.Coordinates   `json:"coordinates"`
	Source      string                    `json:"source"`
	Category    photoguessr.Category      `json:"category"`
	Metadata    photoguessr.PhotoMetadata `json:"metadata"`
}

func (r AdminPhotoRequest) toCurated() photos.CuratedPhoto {
	return photos.CuratedPhoto{
		Photo: photoguessr.Photo{
			ID:          r.ID,
			URL:         r.URL,
			Title:       r.Title,
			Year:        r.Year,
			Coordinates: r.Coordinates,
			Source:      r.Source,
			Metadata:    r.Metadata,
		},
		Category: r.Category,
	}
}

func handleAdminListPhotos(catalog *photos.CuratedStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := photoguessr.Category(r.URL.Query().Get("category"))
		if category != "" && !photoguessr.ValidCategory(category) {
			writeError(w, http.StatusBadRequest, "unknown category")
			return
		}

		list, err := catalog.List(r.Context(), category)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if list == nil {
			list = []photos.CuratedPhoto{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func handleAdminUpsertPhoto(logger *slog.Logger, catalog *photos.CuratedStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminPhotoRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := catalog.Upsert(r.Context(), req.toCurated()); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		logger.Info("curated photo upserted", "id", req.ID, "admin", adminFrom(r).Email)
		writeJSON(w, http.StatusOK, req)
	}
}

func handleAdminDeletePhoto(catalog *photos.CuratedStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		err := catalog.Delete(r.Context(), id)
		if errors.Is(err, photos.ErrNotFound) {
			writeError(w, http.StatusNotFound, "photo not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

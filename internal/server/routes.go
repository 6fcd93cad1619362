package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/pastlens/photoguessr/internal/gamestate"
	"github.com/pastlens/photoguessr/internal/photoguessr"
	"github.com/pastlens/photoguessr/internal/photos"
)

func addRoutes(r chi.Router, logger *slog.Logger, db *sql.DB, games *Registry, catalog *photos.CuratedStore, source gamestate.PhotoSource, spaDir string) {
	sessions := NewSessionStore(db)

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("PhotoGuessr API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Post("/api/session", handleCreateSession(sessions))
	r.With(sessionMiddleware(sessions, games)).Delete("/api/session", handleDeleteSession(sessions, games))

	// Game routes — session resolved by sessionMiddleware.
	r.Route("/api/game", func(r chi.Router) {
		r.Use(sessionMiddleware(sessions, games))

		r.Get("/state", handleGameState())
		r.Get("/events", handleEvents())

		r.Post("/start", handleGameStart(source))
		r.With(requireStatus(photoguessr.StatusInProgress)).Post("/next", handleGameNext())
		r.With(requireStatus(photoguessr.StatusInProgress)).Post("/end", handleGameEnd())
		r.Post("/reset", handleGameReset())
		r.Post("/error/clear", handleGameClearError())

		r.With(requireStatus(photoguessr.StatusInProgress)).Post("/guess", handleGuess())
		r.Post("/guess/draft", handleGuessDraft())
		r.Delete("/guess", handleGuessClear())
		r.Post("/scoring/error/clear", handleScoringClearError())

		r.Post("/photos/load", handlePhotosLoad())
		r.Delete("/photos", handlePhotosClear())

		r.Post("/view", handleView())
		r.Post("/view/photo-zoom", handlePhotoZoom())
		r.Post("/view/map", handleMapState())
		r.Post("/view/reset", handleViewReset())

		// Results screen guard: only a completed game may read answers.
		r.With(requireStatus(photoguessr.StatusCompleted)).Get("/results", handleResults())
	})

	// Websocket state stream — same session auth, own route.
	r.Route("/ws", func(r chi.Router) {
		r.Use(sessionMiddleware(sessions, games))
		r.Get("/state", handleWSState(logger))
	})

	// Admin auth.
	r.Post("/api/admin/login", handleAdminLogin(db))
	r.Post("/api/admin/logout", handleAdminLogout(db))
	r.Get("/api/admin/me", handleAdminMe(db))

	// Admin curated catalog.
	r.Route("/api/admin/photos", func(r chi.Router) {
		r.Use(adminAuthMiddleware(db))
		r.Get("/", handleAdminListPhotos(catalog))
		r.Post("/", handleAdminUpsertPhoto(logger, catalog))
		r.Delete("/{id}", handleAdminDeletePhoto(catalog))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}

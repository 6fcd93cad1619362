package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/pastlens/photoguessr/internal/config"
	"github.com/pastlens/photoguessr/internal/database"
	"github.com/pastlens/photoguessr/internal/migrations"
	"github.com/pastlens/photoguessr/internal/photos"
	"github.com/pastlens/photoguessr/internal/scoring"
	"github.com/pastlens/photoguessr/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Photo sources ---
	catalog := photos.NewCuratedStore(db)
	if err := photos.SeedDemo(ctx, logger, catalog); err != nil {
		return fmt.Errorf("seeding curated photos: %w", err)
	}
	source := &photos.Source{Curated: catalog, Logger: logger}
	if cfg.PhotoAPIURL != "" {
		source.Remote = photos.NewClient(cfg.PhotoAPIURL, logger)
		logger.Info("remote photo archive configured", "url", cfg.PhotoAPIURL)
	}

	// --- Admin bootstrap ---
	if err := server.EnsureAdmin(ctx, logger, db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}

	// --- Game engines + HTTP server ---
	games := server.NewRegistry(logger, scoring.New(), source)
	srv := server.New(cfg.HTTPAddr, logger, db, games, catalog, source, cfg.SPADir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

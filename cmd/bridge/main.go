package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/bradandersonjr/fusion-notion-notes/internal/addin"
	"github.com/bradandersonjr/fusion-notion-notes/internal/api"
	"github.com/bradandersonjr/fusion-notion-notes/internal/config"
	"github.com/bradandersonjr/fusion-notion-notes/internal/launch"
	"github.com/bradandersonjr/fusion-notion-notes/internal/storage"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dataDir := flag.String("data-dir", "", "path to data directory (overrides config)")
	flag.Parse()

	// Load .env if present, before env overrides are read.
	_ = godotenv.Load()

	// Load configuration (auto-creates default if missing).
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Addin.DataDir = *dataDir
	}

	// Wire the add-in core: preference store, URL launcher, event surface.
	store := storage.NewStore(cfg.Addin.DataDir)
	a := addin.New(store, launch.NewLauncher())

	// Build router with all palette API routes.
	router := api.NewRouter(a)

	// The palette talks to the bridge on the same machine, so bind to
	// localhost only.
	addr := fmt.Sprintf("localhost:%d", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting bridge",
		"app", addin.Name,
		"version", addin.Version,
		"addr", "http://"+addr,
		"preferences", store.Path(),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("bridge failed", "error", err)
		os.Exit(1)
	}
	slog.Info("bridge stopped")
}

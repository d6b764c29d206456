package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rishik-kumar/Earthquake-Visualizer/internal/adapter/httpapi"
	"github.com/rishik-kumar/Earthquake-Visualizer/internal/adapter/usgs"
	"github.com/rishik-kumar/Earthquake-Visualizer/internal/config"
	"github.com/rishik-kumar/Earthquake-Visualizer/internal/observability"
	"github.com/rishik-kumar/Earthquake-Visualizer/internal/session"
	"github.com/rishik-kumar/Earthquake-Visualizer/web"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	feed := usgs.NewClient(cfg.FeedURL, cfg.FetchTimeout, logger)
	hub := httpapi.NewHub(logger, metrics)
	sess := session.New(feed, logger, metrics, hub.NotifyUpdated)

	staticFS, err := web.FS()
	if err != nil {
		logger.Error("failed to load embedded frontend", "error", err)
		os.Exit(1)
	}

	srv := httpapi.NewServer(cfg.HTTPAddr, sess, hub, metrics, logger, staticFS)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Kick off the single session-start feed load.
	sess.Start(ctx)
	logger.Info("quakewatch started", "feed_url", cfg.FeedURL, "addr", cfg.HTTPAddr)

	<-ctx.Done()
	logger.Info("shutting down")

	sess.Close()
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

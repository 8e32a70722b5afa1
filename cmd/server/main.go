package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"ghprofile/internal/config"
	"ghprofile/internal/github"
	"ghprofile/internal/handlers"
	"ghprofile/internal/jobs"
	"ghprofile/internal/logging"
	"ghprofile/internal/server"
)

// sweepInterval is how often idle screens are dropped.
const sweepInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat, cfg.IsDev())
	logger.Info("starting ghprofile server",
		slog.String("env", cfg.Env),
		slog.String("github_api_url", cfg.GitHubAPIURL),
		slog.Bool("sequenced_lookups", cfg.SequencedLookups),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Session storage: Redis when configured, process memory otherwise
	var storage fiber.Storage
	var ping handlers.PingFunc
	if cfg.RedisURL != "" {
		store := redis.New(redis.Config{URL: cfg.RedisURL})
		defer store.Close()
		storage = store
		ping = func(ctx context.Context) error {
			return store.Conn().Ping(ctx).Err()
		}
		logger.Info("using redis session storage")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client := github.NewClient(github.Config{
		BaseURL:    cfg.GitHubAPIURL,
		APIVersion: cfg.GitHubAPIVersion,
		UserAgent:  cfg.UserAgent,
	}, &http.Client{Timeout: cfg.HTTPTimeout})

	srv := server.New(cfg, storage)
	srv.RegisterRoutes(server.Dependencies{
		Fetcher:  client,
		Registry: registry,
		Ping:     ping,
		Logger:   logger,
	})

	go jobs.NewScreenSweeper(srv.Screens, sweepInterval).Start(ctx)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		logger.Error("server forced to shutdown", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server exited")
}

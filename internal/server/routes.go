package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ghprofile/internal/handlers"
	"ghprofile/internal/handlers/api"
	"ghprofile/internal/lookup"
	"ghprofile/internal/metrics"
	"ghprofile/internal/middleware"
)

// Dependencies are the collaborators routes are built from.
type Dependencies struct {
	Fetcher  lookup.Fetcher
	Registry *prometheus.Registry
	Ping     handlers.PingFunc
	Logger   *slog.Logger
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Dependencies) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	recorder := metrics.NewRecorder(deps.Registry)

	opts := []lookup.Option{
		lookup.WithMessages(s.Cfg.Messages),
		lookup.WithRecorder(recorder),
		lookup.WithLogger(logger),
	}
	if s.Cfg.SequencedLookups {
		opts = append(opts, lookup.WithSequencing())
	}
	s.Screens = lookup.NewRegistry(s.Cfg.SessionIdle, func() *lookup.Screen {
		return lookup.NewScreen(deps.Fetcher, opts...)
	})
	metrics.RegisterActiveScreens(deps.Registry, s.Screens.Len)

	// Initialize middleware
	screenMiddleware := middleware.NewScreenMiddleware(s.Screens)

	// Initialize handlers
	screenHandler := handlers.NewScreenHandler(s.Cfg)
	apiScreenHandler := api.NewScreenHandler(s.Cfg)
	probeHandler := handlers.NewProbeHandler(deps.Ping)

	// Frontend routes
	s.App.Get("/", screenMiddleware.LoadScreen, screenHandler.Index)
	s.App.Post("/input", screenMiddleware.LoadScreen, screenHandler.Input)
	s.App.Post("/search", screenMiddleware.LoadScreen, screenHandler.Search)

	// JSON API routes
	apiGroup := s.App.Group("/api", screenMiddleware.LoadScreen)
	apiGroup.Get("/profile", apiScreenHandler.Show)
	apiGroup.Post("/lookup", apiScreenHandler.Lookup)

	// Kubernetes probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
}

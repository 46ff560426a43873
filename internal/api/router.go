// Package api provides the HTTP API for AirWard.
package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/airward/airward/internal/api/handler"
	"github.com/airward/airward/internal/api/middleware"
	"github.com/airward/airward/internal/pollution"
	"github.com/airward/airward/internal/report"
	"github.com/airward/airward/internal/scheduler"
	"github.com/airward/airward/internal/ward"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version    string
	BuildTime  string
	Logger     zerolog.Logger
	Metrics    *middleware.Metrics
	Pollution  *pollution.Service
	Registry   *ward.Registry
	Repository report.SummaryRepository
	Scheduler  *scheduler.Scheduler
	Location   *time.Location
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)               // Generate/propagate request ID first
	r.Use(middleware.Tracing("airward-api"))  // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	pollutionHandler := handler.NewPollutionHandler(cfg.Pollution, cfg.Registry)
	reportHandler := handler.NewReportHandler(cfg.Pollution, cfg.Registry, cfg.Repository, cfg.Location)
	opsHandler := handler.NewOpsHandler(cfg.Scheduler, cfg.Pollution, cfg.Version, cfg.BuildTime)

	// Rate limits: reads are cheap cache lookups, the manual refresh
	// trigger hits the upstream provider and gets a much tighter budget.
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit) // 120 req/min
	triggerRateLimit := middleware.RateLimitByIP(middleware.TriggerRateLimit)   // 6 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Pollution read endpoints
		r.Route("/pollution", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/", pollutionHandler.ListWards)
			r.Get("/wards/{wardId}", pollutionHandler.GetWard)
		})

		// Aggregation endpoints
		r.With(standardRateLimit).Get("/zones", reportHandler.ListZones)
		r.With(standardRateLimit).Get("/hotspots", reportHandler.ListHotspots)
		r.With(standardRateLimit).Get("/reports/daily", reportHandler.GetDailyReport)

		// Ops endpoints
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.With(triggerRateLimit).Post("/refresh", opsHandler.TriggerRefresh)
		})
	})

	return r
}

// Package main provides the entrypoint for the AirWard API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/airward/airward/internal/api"
	"github.com/airward/airward/internal/api/middleware"
	"github.com/airward/airward/internal/config"
	"github.com/airward/airward/internal/database"
	"github.com/airward/airward/internal/pollution"
	"github.com/airward/airward/internal/pollution/openaq"
	"github.com/airward/airward/internal/pollution/waqi"
	"github.com/airward/airward/internal/report"
	"github.com/airward/airward/internal/scheduler"
	"github.com/airward/airward/internal/telemetry"
	"github.com/airward/airward/internal/ward"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "airward-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting AirWard API")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Get server configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Load the ward registry
	registry := ward.NewRegistry(ward.DefaultWards())
	log.Info().
		Int("wards", registry.Count()).
		Int("zones", len(registry.Zones())).
		Msg("ward registry loaded")

	// Build the station data provider
	var provider pollution.Provider
	switch cfg.Provider {
	case config.ProviderOpenAQ:
		provider = openaq.NewClient(openaq.ClientConfig{
			BaseURL: cfg.OpenAQBaseURL,
			APIKey:  cfg.OpenAQAPIKey,
			BBox:    cfg.OpenAQBBox,
		})
	default:
		provider = waqi.NewClient(waqi.ClientConfig{
			BaseURL:     cfg.WAQIBaseURL,
			Token:       cfg.WAQIToken,
			StationUIDs: cfg.WAQIStationUIDs,
			Logger:      log,
		})
	}
	log.Info().Str("provider", cfg.Provider).Msg("station data provider initialized")

	// Initialize the pollution service
	pollutionService := pollution.NewService(pollution.ServiceConfig{
		Provider:           provider,
		Registry:           registry,
		Logger:             log,
		CacheTTL:           cfg.CacheTTL,
		MaxMatchDistanceKm: cfg.MaxMatchDistanceKm,
	})

	// Initialize the report repository
	var repository report.SummaryRepository
	if cfg.ReportStorage == config.StoragePostgres {
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		log.Info().
			Str("host", dbConfig.Host).
			Int("port", dbConfig.Port).
			Str("database", dbConfig.Database).
			Msg("database connected")
		repository = report.NewPostgresRepository(pool)
	} else {
		repository = report.NewMemoryRepository()
		log.Info().Msg("using in-memory report storage")
	}

	// Initialize scheduler metrics
	schedMetrics, err := scheduler.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize scheduler metrics")
	}

	// Start the refresh scheduler
	sched := scheduler.New(scheduler.Config{
		Pollution:       pollutionService,
		Registry:        registry,
		Repository:      repository,
		Logger:          log,
		RefreshInterval: cfg.RefreshInterval,
		SummaryInterval: cfg.SummaryInterval,
		ReportHour:      &cfg.ReportHour,
		Location:        cfg.Location(),
		HotspotLimit:    cfg.HotspotLimit,
		Metrics:         schedMetrics,
	})
	sched.Start(ctx)
	log.Info().
		Dur("refresh_interval", cfg.RefreshInterval).
		Int("report_hour", cfg.ReportHour).
		Str("timezone", cfg.Timezone).
		Msg("scheduler started")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:    Version,
		BuildTime:  BuildTime,
		Logger:     log,
		Metrics:    metrics,
		Pollution:  pollutionService,
		Registry:   registry,
		Repository: repository,
		Scheduler:  sched,
		Location:   cfg.Location(),
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Stop the scheduler first; it waits for in-flight cycles.
	sched.Stop()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

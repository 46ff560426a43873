// Package main provides the entrypoint for the AirWard background worker.
// It runs the refresh scheduler and consumes scheduler jobs from Pub/Sub.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/airward/airward/internal/config"
	"github.com/airward/airward/internal/database"
	"github.com/airward/airward/internal/pollution"
	"github.com/airward/airward/internal/pollution/openaq"
	"github.com/airward/airward/internal/pollution/waqi"
	"github.com/airward/airward/internal/report"
	"github.com/airward/airward/internal/scheduler"
	"github.com/airward/airward/internal/ward"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "airward-worker"

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting AirWard worker")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Worker also exposes a health endpoint for Cloud Run
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the ward registry
	registry := ward.NewRegistry(ward.DefaultWards())

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

	pollutionService := pollution.NewService(pollution.ServiceConfig{
		Provider:           provider,
		Registry:           registry,
		Logger:             log,
		CacheTTL:           cfg.CacheTTL,
		MaxMatchDistanceKm: cfg.MaxMatchDistanceKm,
	})

	var repository report.SummaryRepository
	if cfg.ReportStorage == config.StoragePostgres {
		pool, err := database.Connect(ctx, database.ConfigFromEnv())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		repository = report.NewPostgresRepository(pool)
	} else {
		repository = report.NewMemoryRepository()
	}

	schedMetrics, err := scheduler.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize scheduler metrics")
	}

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
		Msg("scheduler started")

	// Consume scheduler jobs from Pub/Sub when configured. Without it the
	// worker still runs the timer loops.
	if cfg.PubSubProjectID != "" && cfg.PubSubSubscription != "" {
		handler, err := scheduler.NewPubSubHandler(ctx, scheduler.PubSubConfig{
			ProjectID:        cfg.PubSubProjectID,
			SubscriptionName: cfg.PubSubSubscription,
			Scheduler:        sched,
			Logger:           log,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create pubsub handler")
		}
		defer func() {
			if closeErr := handler.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close pubsub handler")
			}
		}()

		go func() {
			log.Info().
				Str("subscription", cfg.PubSubSubscription).
				Msg("pubsub job intake started")
			if err := handler.Start(ctx); err != nil {
				log.Error().Err(err).Msg("pubsub receive stopped")
			}
		}()
	} else {
		log.Warn().Msg("pubsub not configured, running timer loops only")
	}

	// Health check server
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		health := sched.HealthCheck(r.Context())
		w.Header().Set("Content-Type", "application/json")
		if !health.Running {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		fmt.Fprintf(w, `{"running":%t,"data_stale":%t,"version":"%s"}`,
			health.Running, health.DataStale, Version)
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("health server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("health server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down worker")
	cancel()

	// Scheduler waits for in-flight cycles before returning.
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server forced to shutdown")
	}

	log.Info().Msg("worker stopped")
}

package pollution

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/airward/airward/internal/ward"
)

// Provider fetches raw station readings from an upstream source.
type Provider interface {
	// FetchReadings retrieves the current readings for all stations.
	FetchReadings(ctx context.Context) ([]StationReading, error)

	// Probe checks upstream connectivity without a full fetch.
	Probe(ctx context.Context) error
}

// ServiceConfig holds configuration for the pollution service.
type ServiceConfig struct {
	// Provider is the station data source.
	Provider Provider

	// Registry is the ward table snapshots are computed against.
	Registry *ward.Registry

	// Logger for service operations.
	Logger zerolog.Logger

	// CacheTTL is how long a refresh cycle stays fresh (default: 10 minutes).
	CacheTTL time.Duration

	// MaxMatchDistanceKm is the usable station radius (default: 10 km).
	// Wards with no station inside it get a synthesized estimate.
	MaxMatchDistanceKm float64

	// FetchTimeout bounds a single upstream fetch (default: 15 seconds).
	FetchTimeout time.Duration

	// EstimateMinPM25 and EstimateMaxPM25 bound the synthesized PM2.5
	// fallback (defaults: 50 and 300 µg/m³).
	EstimateMinPM25 float64
	EstimateMaxPM25 float64

	// Rand drives fallback estimates. Inject a seeded source for
	// reproducible tests; defaults to a fixed-seed generator.
	Rand *rand.Rand
}

// Service computes and caches per-ward pollution snapshots.
//
// The cache is an explicit object owned by this service: readers always get
// the last committed snapshot immediately, refreshes are single-flight, and
// a failed refresh keeps serving the previous cycle.
type Service struct {
	provider     Provider
	registry     *ward.Registry
	logger       zerolog.Logger
	cacheTTL     time.Duration
	maxMatchKm   float64
	fetchTimeout time.Duration
	estMinPM25   float64
	estMaxPM25   float64
	rand         *rand.Rand

	group singleflight.Group

	mu            sync.RWMutex
	snapshots     map[int]WardSnapshot
	refreshedAt   time.Time
	lastSuccessAt time.Time
	lastErr       error
}

// NewService creates a pollution service from the given configuration.
func NewService(cfg ServiceConfig) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}
	maxMatchKm := cfg.MaxMatchDistanceKm
	if maxMatchKm == 0 {
		maxMatchKm = 10
	}
	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout == 0 {
		fetchTimeout = 15 * time.Second
	}
	estMin := cfg.EstimateMinPM25
	if estMin == 0 {
		estMin = 50
	}
	estMax := cfg.EstimateMaxPM25
	if estMax == 0 {
		estMax = 300
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	return &Service{
		provider:     cfg.Provider,
		registry:     cfg.Registry,
		logger:       cfg.Logger,
		cacheTTL:     cacheTTL,
		maxMatchKm:   maxMatchKm,
		fetchTimeout: fetchTimeout,
		estMinPM25:   estMin,
		estMaxPM25:   estMax,
		rand:         rng,
		snapshots:    make(map[int]WardSnapshot),
	}
}

// Refresh runs one fetch → match → compute cycle. It is a no-op while the
// cache is younger than the TTL and non-empty. Concurrent callers share a
// single in-flight cycle instead of issuing duplicate upstream requests.
// On upstream failure the previous cache is retained and the error is
// returned to the refresh caller only; readers are unaffected.
func (s *Service) Refresh(ctx context.Context) error {
	if s.cacheFresh() {
		return nil
	}

	_, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		// A cycle that completed while we queued counts as ours.
		if s.cacheFresh() {
			return nil, nil
		}
		return nil, s.refresh(ctx)
	})
	return err
}

func (s *Service) cacheFresh() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshots) > 0 && time.Since(s.refreshedAt) < s.cacheTTL
}

func (s *Service) refresh(ctx context.Context) error {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := time.Now()
	readings, err := s.provider.FetchReadings(fetchCtx)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()

		s.logger.Error().Err(err).Msg("station fetch failed, serving previous cache")
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	now := time.Now()
	next := make(map[int]WardSnapshot, s.registry.Count())
	estimated := 0
	for _, w := range s.registry.All() {
		snap := s.buildSnapshot(w, readings, now)
		if snap.DataSource == SourceEstimated {
			estimated++
		}
		next[w.ID] = snap
	}

	s.mu.Lock()
	s.snapshots = next
	s.refreshedAt = now
	s.lastSuccessAt = now
	s.lastErr = nil
	s.mu.Unlock()

	s.logger.Info().
		Int("stations", len(readings)).
		Int("wards", len(next)).
		Int("estimated", estimated).
		Dur("duration", time.Since(start)).
		Msg("pollution cache refreshed")

	return nil
}

// buildSnapshot computes one ward's snapshot from the fetched readings.
func (s *Service) buildSnapshot(w ward.Ward, readings []StationReading, now time.Time) WardSnapshot {
	nearest, distKm := NearestStation(w, readings)

	usable := nearest != nil && !math.IsInf(distKm, 1) && distKm <= s.maxMatchKm
	if usable {
		pm25 := nearest.Pollutants.PM25
		// A matched station reporting exactly zero PM2.5 is a dead or
		// warming-up sensor, not clean air.
		if pm25 == nil || *pm25 == 0 {
			usable = false
		}
	}

	if !usable {
		return s.estimateSnapshot(w, now)
	}

	cleaned := Clean(nearest.Pollutants)
	aqiRes := ComputeAQI(cleaned.Pollutants)
	inference := InferSource(cleaned.Pollutants, now)

	stationID := nearest.StationID
	dist := distKm
	return WardSnapshot{
		WardID:            w.ID,
		WardName:          w.Name,
		Zone:              w.Zone,
		AQI:               aqiRes.AQI,
		Category:          aqiRes.Category,
		DominantPollutant: aqiRes.DominantPollutant,
		Pollutants:        cleaned.Pollutants,
		QualityGrade:      cleaned.Grade,
		QualityFlags:      cleaned.Flags,
		Source:            inference,
		Contribution:      EstimateContribution(inference),
		DataSource:        SourceMeasured,
		MatchedStationID:  &stationID,
		DistanceKm:        &dist,
		Trend:             BuildTrend(aqiRes.AQI, nearest.ForecastPM25),
		ComputedAt:        now,
	}
}

// estimateSnapshot synthesizes a plausible snapshot for a ward without a
// usable station match. The dashboard never shows a gap; the Estimated tag
// lets consumers tell synthetic values from measured ones.
func (s *Service) estimateSnapshot(w ward.Ward, now time.Time) WardSnapshot {
	pm25 := s.estMinPM25 + s.rand.Float64()*(s.estMaxPM25-s.estMinPM25)

	cleaned := Clean(RawPollutants{PM25: &pm25})
	cleaned.Flags = append(cleaned.Flags, "pm2.5 synthesized, no station in range")
	aqiRes := ComputeAQI(cleaned.Pollutants)
	inference := InferSource(cleaned.Pollutants, now)

	return WardSnapshot{
		WardID:            w.ID,
		WardName:          w.Name,
		Zone:              w.Zone,
		AQI:               aqiRes.AQI,
		Category:          aqiRes.Category,
		DominantPollutant: aqiRes.DominantPollutant,
		Pollutants:        cleaned.Pollutants,
		QualityGrade:      QualityLow,
		QualityFlags:      cleaned.Flags,
		Source:            inference,
		Contribution:      EstimateContribution(inference),
		DataSource:        SourceEstimated,
		ComputedAt:        now,
	}
}

// GetForWard returns the current snapshot for a ward. The read path never
// blocks on an in-flight refresh; a snapshot past the TTL is returned with
// Stale set rather than dropped.
func (s *Service) GetForWard(wardID int) (*WardSnapshot, error) {
	if _, ok := s.registry.ByID(wardID); !ok {
		return nil, ErrUnknownWard
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snapshots[wardID]
	if !ok {
		return nil, ErrNoData
	}
	snap.Stale = time.Since(s.refreshedAt) > s.cacheTTL
	return &snap, nil
}

// GetAll returns the last committed snapshot per ward, keyed by ward ID.
func (s *Service) GetAll() map[int]WardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stale := time.Since(s.refreshedAt) > s.cacheTTL
	out := make(map[int]WardSnapshot, len(s.snapshots))
	for id, snap := range s.snapshots {
		snap.Stale = stale
		out[id] = snap
	}
	return out
}

// Probe checks upstream connectivity via the provider.
func (s *Service) Probe(ctx context.Context) error {
	return s.provider.Probe(ctx)
}

// CacheStatus describes the current state of the snapshot cache.
type CacheStatus struct {
	HasData       bool
	WardCount     int
	RefreshedAt   time.Time
	LastSuccessAt time.Time
	Stale         bool
	LastError     string
}

// Status reports the cache state for health checks.
func (s *Service) Status() CacheStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := CacheStatus{
		HasData:       len(s.snapshots) > 0,
		WardCount:     len(s.snapshots),
		RefreshedAt:   s.refreshedAt,
		LastSuccessAt: s.lastSuccessAt,
	}
	if status.HasData {
		status.Stale = time.Since(s.refreshedAt) > s.cacheTTL
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}
	return status
}

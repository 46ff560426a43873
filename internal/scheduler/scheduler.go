// Package scheduler drives the periodic pollution pipeline: data refresh,
// zone-summary persistence, and the daily city report.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/airward/airward/internal/pollution"
	"github.com/airward/airward/internal/report"
	"github.com/airward/airward/internal/ward"
)

// ErrSchedulerStopped is returned by manual triggers while the scheduler
// is not running.
var ErrSchedulerStopped = errors.New("scheduler is stopped")

// Config holds configuration for the scheduler.
type Config struct {
	// Pollution is the snapshot service refreshed each cycle.
	Pollution *pollution.Service

	// Registry is the ward table used for aggregation.
	Registry *ward.Registry

	// Repository persists zone summaries and daily reports.
	Repository report.SummaryRepository

	// Logger for scheduler events.
	Logger zerolog.Logger

	// RefreshInterval is the data refresh cadence (default: 30 minutes).
	RefreshInterval time.Duration

	// SummaryInterval is the zone-summary persistence cadence
	// (default: 1 hour).
	SummaryInterval time.Duration

	// ReportHour is the local wall-clock hour for the daily report.
	// Nil selects the default of 6 (06:00); an explicit 0 means midnight.
	ReportHour *int

	// Location is the timezone the report hour is evaluated in
	// (default: Asia/Kolkata; falls back to UTC if unavailable).
	Location *time.Location

	// HotspotLimit caps the daily report's hotspot list (default: 5).
	HotspotLimit int

	// StaleThreshold marks data unhealthy when the last successful refresh
	// is older than this (default: 2 hours).
	StaleThreshold time.Duration

	// ProbeTimeout bounds the upstream connectivity probe during health
	// checks (default: 10 seconds).
	ProbeTimeout time.Duration

	// Metrics instruments; nil disables recording.
	Metrics *Metrics
}

// RefreshOutcome describes one completed refresh cycle.
type RefreshOutcome struct {
	StartedAt    time.Time     `json:"started_at"`
	Duration     time.Duration `json:"duration"`
	WardsUpdated int           `json:"wards_updated"`
	Trigger      string        `json:"trigger"`
	Err          error         `json:"-"`
}

// Health is the scheduler's health report.
type Health struct {
	Running       bool      `json:"running"`
	LastSuccessAt time.Time `json:"last_success_at"`
	DataStale     bool      `json:"data_stale"`
	Upstream      string    `json:"upstream"`
}

// Scheduler owns the three timer loops. It is an explicit state machine:
// Stopped until Start, Running until Stop. Start while Running and Stop
// while Stopped are no-ops.
type Scheduler struct {
	pollution  *pollution.Service
	registry   *ward.Registry
	repository report.SummaryRepository
	logger     zerolog.Logger
	metrics    *Metrics

	refreshInterval time.Duration
	summaryInterval time.Duration
	reportHour      int
	location        *time.Location
	hotspotLimit    int
	staleThreshold  time.Duration
	probeTimeout    time.Duration

	mu        sync.Mutex
	running   bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	callbacks []func(RefreshOutcome)
}

// New creates a scheduler from the given configuration.
func New(cfg Config) *Scheduler {
	refreshInterval := cfg.RefreshInterval
	if refreshInterval == 0 {
		refreshInterval = 30 * time.Minute
	}
	summaryInterval := cfg.SummaryInterval
	if summaryInterval == 0 {
		summaryInterval = time.Hour
	}
	reportHour := 6
	if cfg.ReportHour != nil {
		reportHour = *cfg.ReportHour
	}
	location := cfg.Location
	if location == nil {
		loc, err := time.LoadLocation("Asia/Kolkata")
		if err != nil {
			loc = time.UTC
		}
		location = loc
	}
	hotspotLimit := cfg.HotspotLimit
	if hotspotLimit == 0 {
		hotspotLimit = 5
	}
	staleThreshold := cfg.StaleThreshold
	if staleThreshold == 0 {
		staleThreshold = 2 * time.Hour
	}
	probeTimeout := cfg.ProbeTimeout
	if probeTimeout == 0 {
		probeTimeout = 10 * time.Second
	}

	return &Scheduler{
		pollution:       cfg.Pollution,
		registry:        cfg.Registry,
		repository:      cfg.Repository,
		logger:          cfg.Logger,
		metrics:         cfg.Metrics,
		refreshInterval: refreshInterval,
		summaryInterval: summaryInterval,
		reportHour:      reportHour,
		location:        location,
		hotspotLimit:    hotspotLimit,
		staleThreshold:  staleThreshold,
		probeTimeout:    probeTimeout,
	}
}

// OnRefresh registers a callback invoked after every refresh cycle,
// timer-driven or manual. Registration is not safe after Start.
func (s *Scheduler) OnRefresh(fn func(RefreshOutcome)) {
	s.callbacks = append(s.callbacks, fn)
}

// Start launches the timer loops. No-op when already running.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true

	s.wg.Add(3)
	go s.refreshLoop(loopCtx)
	go s.summaryLoop(loopCtx)
	go s.reportLoop(loopCtx)

	s.logger.Info().
		Dur("refresh_interval", s.refreshInterval).
		Dur("summary_interval", s.summaryInterval).
		Int("report_hour", s.reportHour).
		Msg("scheduler started")
}

// Stop cancels the timer loops and waits for the current iteration to
// finish. An in-flight refresh completes; nothing reschedules afterward.
// No-op when already stopped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info().Msg("scheduler stopped")
}

// Running reports whether the timer loops are active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) refreshLoop(ctx context.Context) {
	defer s.wg.Done()

	// Prime the cache immediately instead of waiting a full interval.
	s.runRefresh(context.WithoutCancel(ctx), "startup")

	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Detached context: stopping the scheduler must not abort a
			// cycle that already started.
			s.runRefresh(context.WithoutCancel(ctx), "timer")
		}
	}
}

func (s *Scheduler) summaryLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.summaryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.PersistZoneSummaries(context.WithoutCancel(ctx)); err != nil {
				s.logger.Error().Err(err).Msg("zone summary persistence failed")
			}
		}
	}
}

func (s *Scheduler) reportLoop(ctx context.Context) {
	defer s.wg.Done()

	for {
		wait := s.untilNextReport(time.Now())
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if _, err := s.GenerateDailyReport(context.WithoutCancel(ctx)); err != nil {
				s.logger.Error().Err(err).Msg("daily report generation failed")
			}
		}
	}
}

// untilNextReport returns the wait until the next report hour in the
// configured timezone.
func (s *Scheduler) untilNextReport(now time.Time) time.Duration {
	local := now.In(s.location)
	next := time.Date(local.Year(), local.Month(), local.Day(), s.reportHour, 0, 0, 0, s.location)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(local)
}

// TriggerDataUpdate runs one refresh cycle outside the timer, for the ops
// endpoint and Pub/Sub jobs. Returns ErrSchedulerStopped when not running.
func (s *Scheduler) TriggerDataUpdate(ctx context.Context) (*RefreshOutcome, error) {
	if !s.Running() {
		return nil, ErrSchedulerStopped
	}

	outcome := s.runRefresh(ctx, "manual")
	if outcome.Err != nil {
		return &outcome, outcome.Err
	}
	return &outcome, nil
}

func (s *Scheduler) runRefresh(ctx context.Context, trigger string) RefreshOutcome {
	start := time.Now()
	err := s.pollution.Refresh(ctx)
	duration := time.Since(start)

	status := s.pollution.Status()
	outcome := RefreshOutcome{
		StartedAt:    start,
		Duration:     duration,
		WardsUpdated: status.WardCount,
		Trigger:      trigger,
		Err:          err,
	}

	s.metrics.recordCycle(ctx, trigger, duration, err != nil)

	if err != nil {
		s.logger.Error().Err(err).Str("trigger", trigger).Msg("refresh cycle failed")
	} else {
		s.logger.Info().
			Str("trigger", trigger).
			Int("wards", outcome.WardsUpdated).
			Dur("duration", duration).
			Msg("refresh cycle completed")
	}

	for _, fn := range s.callbacks {
		fn(outcome)
	}
	return outcome
}

// PersistZoneSummaries aggregates the current snapshots and replaces the
// stored zone summary set.
func (s *Scheduler) PersistZoneSummaries(ctx context.Context) error {
	snapshots := s.pollution.GetAll()
	if len(snapshots) == 0 {
		return pollution.ErrNoData
	}

	summaries := report.SummarizeZones(snapshots, s.registry)
	if err := s.repository.SaveZoneSummaries(ctx, summaries, time.Now()); err != nil {
		return err
	}

	s.logger.Info().Int("zones", len(summaries)).Msg("zone summaries persisted")
	return nil
}

// GenerateDailyReport builds and stores the daily city report from the
// current snapshots.
func (s *Scheduler) GenerateDailyReport(ctx context.Context) (*report.Report, error) {
	snapshots := s.pollution.GetAll()
	if len(snapshots) == 0 {
		return nil, pollution.ErrNoData
	}

	summaries := report.SummarizeZones(snapshots, s.registry)
	hotspots := report.RankHotspots(snapshots, s.registry, s.hotspotLimit)
	rep := report.BuildDailyReport(summaries, hotspots, time.Now().In(s.location))

	if err := s.repository.SaveDailyReport(ctx, rep); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("date", rep.Date).
		Int("city_avg_aqi", rep.CityOverview.CityAvgAQI).
		Str("worst_zone", rep.CityOverview.WorstZone).
		Msg("daily report generated")
	return &rep, nil
}

// HealthCheck reports scheduler state, data staleness, and upstream
// connectivity.
func (s *Scheduler) HealthCheck(ctx context.Context) Health {
	status := s.pollution.Status()

	health := Health{
		Running:       s.Running(),
		LastSuccessAt: status.LastSuccessAt,
	}
	health.DataStale = status.LastSuccessAt.IsZero() ||
		time.Since(status.LastSuccessAt) > s.staleThreshold

	probeCtx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()
	if err := s.pollution.Probe(probeCtx); err != nil {
		health.Upstream = err.Error()
	} else {
		health.Upstream = "ok"
	}
	return health
}

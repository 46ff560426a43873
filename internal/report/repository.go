package report

import (
	"context"
	"sync"
	"time"
)

// SummaryRepository persists zone summaries and daily reports. Writes are
// full replacements: the latest zone summary set supersedes the previous
// one, and a report regenerated for the same date overwrites it.
type SummaryRepository interface {
	SaveZoneSummaries(ctx context.Context, summaries map[string]ZoneSummary, generatedAt time.Time) error
	LatestZoneSummaries(ctx context.Context) (map[string]ZoneSummary, time.Time, error)

	SaveDailyReport(ctx context.Context, r Report) error
	DailyReportByDate(ctx context.Context, date string) (*Report, error)
}

// MemoryRepository is an in-memory SummaryRepository for tests and
// single-node deployments without Postgres.
type MemoryRepository struct {
	mu          sync.RWMutex
	summaries   map[string]ZoneSummary
	generatedAt time.Time
	reports     map[string]Report
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		reports: make(map[string]Report),
	}
}

// SaveZoneSummaries replaces the stored summary set.
func (r *MemoryRepository) SaveZoneSummaries(_ context.Context, summaries map[string]ZoneSummary, generatedAt time.Time) error {
	copied := make(map[string]ZoneSummary, len(summaries))
	for name, zone := range summaries {
		copied[name] = zone
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.summaries = copied
	r.generatedAt = generatedAt
	return nil
}

// LatestZoneSummaries returns the stored summary set.
func (r *MemoryRepository) LatestZoneSummaries(_ context.Context) (map[string]ZoneSummary, time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.summaries == nil {
		return nil, time.Time{}, ErrNoSummaries
	}
	copied := make(map[string]ZoneSummary, len(r.summaries))
	for name, zone := range r.summaries {
		copied[name] = zone
	}
	return copied, r.generatedAt, nil
}

// SaveDailyReport stores the report keyed by its date, replacing any
// earlier report for the same date.
func (r *MemoryRepository) SaveDailyReport(_ context.Context, rep Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[rep.Date] = rep
	return nil
}

// DailyReportByDate returns the report for the given YYYY-MM-DD date.
func (r *MemoryRepository) DailyReportByDate(_ context.Context, date string) (*Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep, ok := r.reports[date]
	if !ok {
		return nil, ErrReportNotFound
	}
	return &rep, nil
}

var _ SummaryRepository = (*MemoryRepository)(nil)

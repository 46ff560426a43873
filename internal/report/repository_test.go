package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airward/airward/internal/report"
)

func TestMemoryRepository_ZoneSummaries(t *testing.T) {
	repo := report.NewMemoryRepository()
	ctx := context.Background()

	_, _, err := repo.LatestZoneSummaries(ctx)
	assert.ErrorIs(t, err, report.ErrNoSummaries)

	first := map[string]report.ZoneSummary{
		"Narela": {ZoneName: "Narela", AvgAQI: 310},
	}
	at := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveZoneSummaries(ctx, first, at))

	got, gotAt, err := repo.LatestZoneSummaries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 310, got["Narela"].AvgAQI)
	assert.True(t, gotAt.Equal(at))

	// Full replacement: a later save drops zones absent from the new set.
	second := map[string]report.ZoneSummary{
		"Central Zone": {ZoneName: "Central Zone", AvgAQI: 140},
	}
	require.NoError(t, repo.SaveZoneSummaries(ctx, second, at.Add(time.Hour)))

	got, _, err = repo.LatestZoneSummaries(ctx)
	require.NoError(t, err)
	assert.NotContains(t, got, "Narela")
	assert.Contains(t, got, "Central Zone")
}

func TestMemoryRepository_DailyReports(t *testing.T) {
	repo := report.NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.DailyReportByDate(ctx, "2026-01-12")
	assert.ErrorIs(t, err, report.ErrReportNotFound)

	rep := report.Report{ID: "r-1", Date: "2026-01-12"}
	require.NoError(t, repo.SaveDailyReport(ctx, rep))

	got, err := repo.DailyReportByDate(ctx, "2026-01-12")
	require.NoError(t, err)
	assert.Equal(t, "r-1", got.ID)

	// Regenerating the same date overwrites.
	require.NoError(t, repo.SaveDailyReport(ctx, report.Report{ID: "r-2", Date: "2026-01-12"}))
	got, err = repo.DailyReportByDate(ctx, "2026-01-12")
	require.NoError(t, err)
	assert.Equal(t, "r-2", got.ID)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := report.NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveZoneSummaries(ctx, map[string]report.ZoneSummary{
		"Narela": {ZoneName: "Narela", AvgAQI: 100},
	}, time.Now()))

	got, _, err := repo.LatestZoneSummaries(ctx)
	require.NoError(t, err)
	got["Narela"] = report.ZoneSummary{ZoneName: "Narela", AvgAQI: 999}

	fresh, _, err := repo.LatestZoneSummaries(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, fresh["Narela"].AvgAQI)
}

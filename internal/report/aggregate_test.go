package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airward/airward/internal/pollution"
	"github.com/airward/airward/internal/report"
	"github.com/airward/airward/internal/ward"
)

func testRegistry() *ward.Registry {
	return ward.NewRegistry([]ward.Ward{
		{ID: 1, Name: "Narela", Zone: "Narela", Lat: 28.85, Lon: 77.09},
		{ID: 2, Name: "Bankner", Zone: "Narela", Lat: 28.83, Lon: 77.08},
		{ID: 90, Name: "Connaught Place", Zone: "Central Zone", Lat: 28.63, Lon: 77.21},
		{ID: 91, Name: "Karol Bagh", Zone: "Central Zone", Lat: 28.65, Lon: 77.19},
	})
}

func snapshot(wardID int, aqi int, dominant string) pollution.WardSnapshot {
	return pollution.WardSnapshot{
		WardID:            wardID,
		AQI:               aqi,
		Category:          pollution.CategoryFor(aqi),
		DominantPollutant: dominant,
		Pollutants:        pollution.Pollutants{PM25: float64(aqi) / 2, PM10: float64(aqi) / 3},
		DataSource:        pollution.SourceMeasured,
	}
}

func TestSummarizeZones(t *testing.T) {
	registry := testRegistry()
	snapshots := map[int]pollution.WardSnapshot{
		1:  snapshot(1, 320, "pm2.5"),
		2:  snapshot(2, 280, "pm2.5"),
		90: snapshot(90, 180, "pm10"),
		// ward 91 has no data this cycle
	}

	zones := report.SummarizeZones(snapshots, registry)
	require.Len(t, zones, 2)

	narela := zones["Narela"]
	assert.Equal(t, 2, narela.WardCount)
	assert.Equal(t, 300, narela.AvgAQI)
	assert.Equal(t, 320, narela.MaxAQI)
	assert.Equal(t, 280, narela.MinAQI)
	assert.Equal(t, 2, narela.DominantPollutantCounts["pm2.5"])
	require.Len(t, narela.Wards, 2)
	assert.Equal(t, "Narela", narela.Wards[0].WardName)

	central := zones["Central Zone"]
	assert.Equal(t, 2, central.WardCount, "ward without data still counted")
	assert.Equal(t, 180, central.AvgAQI, "ward without data excluded from mean")
	assert.Equal(t, 180, central.MinAQI)
}

func TestSummarizeZones_NoData(t *testing.T) {
	zones := report.SummarizeZones(nil, testRegistry())

	narela := zones["Narela"]
	assert.Equal(t, 2, narela.WardCount)
	assert.Equal(t, 0, narela.AvgAQI)
	assert.Equal(t, 0, narela.MinAQI)
}

func TestRankHotspots(t *testing.T) {
	registry := testRegistry()
	snapshots := map[int]pollution.WardSnapshot{
		1:  snapshot(1, 280, "pm2.5"),
		2:  snapshot(2, 410, "pm2.5"),
		90: snapshot(90, 280, "pm10"),
		91: snapshot(91, 150, "pm10"),
	}

	analysis := report.RankHotspots(snapshots, registry, 3)

	require.Len(t, analysis.Hotspots, 3)
	assert.Equal(t, 2, analysis.Hotspots[0].WardID)
	assert.Equal(t, 1, analysis.Hotspots[0].Rank)
	assert.Equal(t, "Hazardous", analysis.Hotspots[0].Category)

	// Equal AQI: registry order breaks the tie (ward 1 before ward 90).
	assert.Equal(t, 1, analysis.Hotspots[1].WardID)
	assert.Equal(t, 90, analysis.Hotspots[2].WardID)

	assert.Equal(t, 4, analysis.TotalWardsAnalyzed)
	assert.Equal(t, 280, analysis.AverageAQI) // (280+410+280+150)/4
	assert.Equal(t, 1, analysis.CriticalWards)
}

func TestRankHotspots_SeverityScore(t *testing.T) {
	snapshots := map[int]pollution.WardSnapshot{
		1: {
			WardID:     1,
			AQI:        400,
			Category:   pollution.CategorySevere,
			Pollutants: pollution.Pollutants{PM25: 240, PM10: 300, NO2: 50, SO2: 20, CO: 10},
		},
	}
	registry := ward.NewRegistry([]ward.Ward{{ID: 1, Name: "X", Zone: "Z"}})

	analysis := report.RankHotspots(snapshots, registry, 5)
	require.Len(t, analysis.Hotspots, 1)
	// 0.4*400 + 0.3*240 + 0.2*300 + 0.1*80 = 300
	assert.Equal(t, 300, analysis.Hotspots[0].SeverityScore)
}

func TestBuildDailyReport(t *testing.T) {
	summaries := map[string]report.ZoneSummary{
		"Narela":       {ZoneName: "Narela", WardCount: 2, AvgAQI: 320},
		"Central Zone": {ZoneName: "Central Zone", WardCount: 2, AvgAQI: 180},
	}
	hotspots := report.HotspotAnalysis{
		Hotspots: []report.Hotspot{{Rank: 1, WardID: 1, AQI: 410}},
	}
	now := time.Date(2026, 1, 12, 6, 0, 0, 0, time.UTC)

	rep := report.BuildDailyReport(summaries, hotspots, now)

	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, "2026-01-12", rep.Date)
	assert.Equal(t, 2, rep.CityOverview.TotalZones)
	assert.Equal(t, 4, rep.CityOverview.TotalWards)
	assert.Equal(t, 250, rep.CityOverview.CityAvgAQI)
	assert.Equal(t, "Narela", rep.CityOverview.WorstZone)
	assert.Equal(t, "Central Zone", rep.CityOverview.BestZone)
	require.Len(t, rep.Hotspots, 1)

	// 200 < city average <= 300: Stage II tier.
	require.Len(t, rep.Recommendations.ImmediateActions, 1)
	assert.Contains(t, rep.Recommendations.ImmediateActions[0], "Stage II")
}

func TestBuildDailyReport_EmergencyTier(t *testing.T) {
	summaries := map[string]report.ZoneSummary{
		"Narela": {ZoneName: "Narela", WardCount: 2, AvgAQI: 350},
	}
	rep := report.BuildDailyReport(summaries, report.HotspotAnalysis{}, time.Now())

	require.Len(t, rep.Recommendations.ImmediateActions, 1)
	assert.Contains(t, rep.Recommendations.ImmediateActions[0], "emergency")
	assert.Contains(t, rep.Recommendations.CitizenAdvisories[0], "Stay indoors")
}

func TestBuildDailyReport_CleanDay(t *testing.T) {
	summaries := map[string]report.ZoneSummary{
		"Narela": {ZoneName: "Narela", WardCount: 2, AvgAQI: 90},
	}
	rep := report.BuildDailyReport(summaries, report.HotspotAnalysis{}, time.Now())

	assert.Empty(t, rep.Recommendations.ImmediateActions)
	assert.Empty(t, rep.Recommendations.CitizenAdvisories)
}

// Package report aggregates ward snapshots into zone summaries, hotspot
// rankings, and the daily city report.
package report

import (
	"errors"
	"time"
)

// ErrReportNotFound is returned when no report exists for the requested date.
var ErrReportNotFound = errors.New("report not found")

// ErrNoSummaries is returned when no zone summaries have been persisted yet.
var ErrNoSummaries = errors.New("no zone summaries stored")

// ZoneWard is one ward's entry inside a zone summary.
type ZoneWard struct {
	WardID            int    `json:"ward_id"`
	WardName          string `json:"ward_name"`
	AQI               int    `json:"aqi"`
	DominantPollutant string `json:"dominant_pollutant"`
	DataSource        string `json:"data_source"`
}

// ZoneSummary aggregates one administrative zone.
type ZoneSummary struct {
	ZoneName                string         `json:"zone_name"`
	WardCount               int            `json:"ward_count"`
	AvgAQI                  int            `json:"avg_aqi"`
	MaxAQI                  int            `json:"max_aqi"`
	MinAQI                  int            `json:"min_aqi"`
	DominantPollutantCounts map[string]int `json:"dominant_pollutants"`
	Wards                   []ZoneWard     `json:"wards"`
}

// Hotspot is one entry in the worst-wards ranking.
type Hotspot struct {
	Rank              int    `json:"rank"`
	WardID            int    `json:"ward_id"`
	WardName          string `json:"ward_name"`
	Zone              string `json:"zone"`
	AQI               int    `json:"aqi"`
	Category          string `json:"category"`
	DominantPollutant string `json:"dominant_pollutant"`
	SeverityScore     int    `json:"severity_score"`
}

// HotspotAnalysis is the ranking plus city-wide context.
type HotspotAnalysis struct {
	Hotspots           []Hotspot `json:"hotspots"`
	TotalWardsAnalyzed int       `json:"total_wards_analyzed"`
	AverageAQI         int       `json:"average_aqi"`
	CriticalWards      int       `json:"critical_wards"`
}

// CityOverview summarizes the whole city for the daily report.
type CityOverview struct {
	TotalZones int    `json:"total_zones"`
	TotalWards int    `json:"total_wards"`
	CityAvgAQI int    `json:"city_avg_aqi"`
	WorstZone  string `json:"worst_zone"`
	BestZone   string `json:"best_zone"`
}

// Recommendations are the action tiers attached to a daily report.
type Recommendations struct {
	ImmediateActions  []string `json:"immediate_actions"`
	CitizenAdvisories []string `json:"citizen_advisories"`
}

// Report is the daily city pollution report.
type Report struct {
	ID              string                 `json:"id"`
	Date            string                 `json:"report_date"`
	GeneratedAt     time.Time              `json:"generated_at"`
	CityOverview    CityOverview           `json:"city_overview"`
	ZoneSummaries   map[string]ZoneSummary `json:"zone_summary"`
	Hotspots        []Hotspot              `json:"hotspots"`
	Recommendations Recommendations        `json:"recommendations"`
}

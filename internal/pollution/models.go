// Package pollution implements the ward pollution pipeline: station
// readings are matched to wards geospatially, cleaned, scored into an AQI
// and attributed to a probable emission source, then cached per ward.
package pollution

import (
	"errors"
	"time"
)

// Service errors.
var (
	ErrUpstreamUnavailable = errors.New("station data provider unavailable")
	ErrUnknownWard         = errors.New("ward not found in registry")
	ErrNoData              = errors.New("no pollution data computed yet")
)

// RawPollutants holds pollutant concentrations as reported by a provider.
// Fields are pointers because stations routinely miss sensors; the cleaning
// step fills defaults and records flags.
type RawPollutants struct {
	PM25 *float64
	PM10 *float64
	NO2  *float64
	SO2  *float64
	CO   *float64
	O3   *float64
}

// Pollutants holds cleaned concentrations in µg/m³ (CO in mg/m³).
type Pollutants struct {
	PM25 float64 `json:"pm25"`
	PM10 float64 `json:"pm10"`
	NO2  float64 `json:"no2"`
	SO2  float64 `json:"so2"`
	CO   float64 `json:"co"`
	O3   float64 `json:"o3"`
}

// ForecastDay is one day of a provider's pollutant forecast.
type ForecastDay struct {
	Date string  `json:"date"`
	Avg  float64 `json:"avg"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// StationReading is one station's current readings. Readings are transient:
// fetched per refresh cycle, matched to wards, then discarded.
type StationReading struct {
	StationID    string
	Name         string
	Lat          float64
	Lon          float64
	Pollutants   RawPollutants
	ForecastPM25 []ForecastDay
	CapturedAt   time.Time
}

// Category is an AQI band.
type Category string

const (
	CategoryGood      Category = "Good"
	CategoryModerate  Category = "Moderate"
	CategoryPoor      Category = "Poor"
	CategoryVeryPoor  Category = "Very Poor"
	CategorySevere    Category = "Severe"
	CategoryHazardous Category = "Hazardous"
)

// QualityGrade describes how trustworthy a cleaned reading is.
type QualityGrade string

const (
	QualityHigh   QualityGrade = "High"
	QualityMedium QualityGrade = "Medium"
	QualityLow    QualityGrade = "Low"
)

// Confidence expresses how certain the source inference is.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// DataSource distinguishes measured snapshots from synthesized fallbacks.
type DataSource string

const (
	SourceMeasured  DataSource = "Measured"
	SourceEstimated DataSource = "Estimated"
)

// TrendDirection summarizes the forecast relative to the current level.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendWorsening TrendDirection = "worsening"
)

// Trend is derived from a station's PM2.5 forecast when one is available.
type Trend struct {
	Direction   TrendDirection `json:"direction"`
	AvgForecast int            `json:"avgForecast"`
	PeakDate    string         `json:"peakDate,omitempty"`
}

// Contribution is one slice of the modeled source breakdown.
type Contribution struct {
	Source     string `json:"source"`
	Percentage int    `json:"percentage"`
}

// SourceInference is the outcome of the rule-based source classifier.
type SourceInference struct {
	Label      string     `json:"label"`
	Confidence Confidence `json:"confidence"`
	Reasoning  string     `json:"reasoning"`
}

// WardSnapshot is the computed pollution state for one ward. A new refresh
// cycle replaces the snapshot wholesale; snapshots are never appended.
type WardSnapshot struct {
	WardID            int            `json:"wardId"`
	WardName          string         `json:"wardName"`
	Zone              string         `json:"zone"`
	AQI               int            `json:"aqi"`
	Category          Category       `json:"category"`
	DominantPollutant string         `json:"dominantPollutant"`
	Pollutants        Pollutants     `json:"pollutants"`
	QualityGrade      QualityGrade   `json:"qualityGrade"`
	QualityFlags      []string       `json:"qualityFlags,omitempty"`
	Source            SourceInference `json:"sourceInference"`
	Contribution      []Contribution `json:"sourceContribution"`
	DataSource        DataSource     `json:"dataSource"`
	MatchedStationID  *string        `json:"matchedStationId,omitempty"`
	DistanceKm        *float64       `json:"distanceKm,omitempty"`
	Trend             *Trend         `json:"trend,omitempty"`
	ComputedAt        time.Time      `json:"computedAt"`
	Stale             bool           `json:"stale"`
}

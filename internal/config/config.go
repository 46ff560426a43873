// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultRefreshInterval = 30 * time.Minute
	defaultSummaryInterval = time.Hour
	defaultReportHour      = 6
	defaultTimezone        = "Asia/Kolkata"
	defaultCacheTTL        = 10 * time.Minute
	defaultMaxMatchKm      = 10.0
	defaultHotspotLimit    = 5
)

// Provider names accepted in POLLUTION_PROVIDER.
const (
	ProviderWAQI   = "waqi"
	ProviderOpenAQ = "openaq"
)

// Storage backends accepted in REPORT_STORAGE.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds runtime configuration shared by the api and worker binaries.
type Config struct {
	// Provider selects the station data source: waqi or openaq.
	Provider string

	// WAQI settings, used when Provider is waqi.
	WAQIBaseURL     string
	WAQIToken       string
	WAQIStationUIDs []int

	// OpenAQ settings, used when Provider is openaq.
	OpenAQBaseURL string
	OpenAQAPIKey  string
	OpenAQBBox    string

	// Pipeline tuning.
	CacheTTL           time.Duration
	MaxMatchDistanceKm float64
	HotspotLimit       int

	// Scheduler cadence.
	RefreshInterval time.Duration
	SummaryInterval time.Duration
	ReportHour      int
	Timezone        string

	// ReportStorage selects where summaries and daily reports are
	// persisted: memory or postgres.
	ReportStorage string

	// Pub/Sub job intake (worker only).
	PubSubProjectID    string
	PubSubSubscription string
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{
		Provider:           ProviderWAQI,
		CacheTTL:           defaultCacheTTL,
		MaxMatchDistanceKm: defaultMaxMatchKm,
		HotspotLimit:       defaultHotspotLimit,
		RefreshInterval:    defaultRefreshInterval,
		SummaryInterval:    defaultSummaryInterval,
		ReportHour:         defaultReportHour,
		Timezone:           defaultTimezone,
		ReportStorage:      StorageMemory,
	}

	if v := strings.TrimSpace(os.Getenv("POLLUTION_PROVIDER")); v != "" {
		switch v {
		case ProviderWAQI, ProviderOpenAQ:
			cfg.Provider = v
		default:
			return cfg, fmt.Errorf("invalid POLLUTION_PROVIDER %q: must be %s or %s", v, ProviderWAQI, ProviderOpenAQ)
		}
	}

	cfg.WAQIBaseURL = strings.TrimSpace(os.Getenv("WAQI_BASE_URL"))
	cfg.WAQIToken = strings.TrimSpace(os.Getenv("WAQI_TOKEN"))
	if v := strings.TrimSpace(os.Getenv("WAQI_STATION_UIDS")); v != "" {
		uids, err := parseUIDs(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid WAQI_STATION_UIDS: %w", err)
		}
		cfg.WAQIStationUIDs = uids
	}

	cfg.OpenAQBaseURL = strings.TrimSpace(os.Getenv("OPENAQ_BASE_URL"))
	cfg.OpenAQAPIKey = strings.TrimSpace(os.Getenv("OPENAQ_API_KEY"))
	cfg.OpenAQBBox = strings.TrimSpace(os.Getenv("OPENAQ_BBOX"))

	if cfg.Provider == ProviderWAQI {
		if cfg.WAQIToken == "" {
			return cfg, fmt.Errorf("WAQI_TOKEN is required when POLLUTION_PROVIDER is %s", ProviderWAQI)
		}
		if len(cfg.WAQIStationUIDs) == 0 {
			return cfg, fmt.Errorf("WAQI_STATION_UIDS is required when POLLUTION_PROVIDER is %s", ProviderWAQI)
		}
	}

	var err error
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL", cfg.CacheTTL); err != nil {
		return cfg, err
	}
	if cfg.RefreshInterval, err = durationEnv("REFRESH_INTERVAL", cfg.RefreshInterval); err != nil {
		return cfg, err
	}
	if cfg.SummaryInterval, err = durationEnv("SUMMARY_INTERVAL", cfg.SummaryInterval); err != nil {
		return cfg, err
	}

	if v := strings.TrimSpace(os.Getenv("MAX_MATCH_DISTANCE_KM")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return cfg, fmt.Errorf("invalid MAX_MATCH_DISTANCE_KM %q", v)
		}
		cfg.MaxMatchDistanceKm = f
	}

	if v := strings.TrimSpace(os.Getenv("HOTSPOT_LIMIT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid HOTSPOT_LIMIT %q", v)
		}
		cfg.HotspotLimit = n
	}

	if v := strings.TrimSpace(os.Getenv("REPORT_HOUR")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 23 {
			return cfg, fmt.Errorf("invalid REPORT_HOUR %q: must be 0-23", v)
		}
		cfg.ReportHour = n
	}

	if v := strings.TrimSpace(os.Getenv("TIMEZONE")); v != "" {
		if _, err := time.LoadLocation(v); err != nil {
			return cfg, fmt.Errorf("invalid TIMEZONE %q: %w", v, err)
		}
		cfg.Timezone = v
	}

	if v := strings.TrimSpace(os.Getenv("REPORT_STORAGE")); v != "" {
		switch v {
		case StorageMemory, StoragePostgres:
			cfg.ReportStorage = v
		default:
			return cfg, fmt.Errorf("invalid REPORT_STORAGE %q: must be %s or %s", v, StorageMemory, StoragePostgres)
		}
	}

	cfg.PubSubProjectID = strings.TrimSpace(os.Getenv("PUBSUB_PROJECT_ID"))
	cfg.PubSubSubscription = strings.TrimSpace(os.Getenv("PUBSUB_SUBSCRIPTION"))

	return cfg, nil
}

// Location resolves the configured timezone. Load validates it, so this
// only falls back to UTC when called on a hand-built Config.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func parseUIDs(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	uids := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		uid, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", part)
		}
		uids = append(uids, uid)
	}
	if len(uids) == 0 {
		return nil, fmt.Errorf("no station uids in %q", raw)
	}
	return uids, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

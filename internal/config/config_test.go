package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airward/airward/internal/config"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("WAQI_TOKEN", "test-token")
	t.Setenv("WAQI_STATION_UIDS", "2553,2554,12477")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.ProviderWAQI, cfg.Provider)
	assert.Equal(t, []int{2553, 2554, 12477}, cfg.WAQIStationUIDs)
	assert.Equal(t, 30*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, time.Hour, cfg.SummaryInterval)
	assert.Equal(t, 6, cfg.ReportHour)
	assert.Equal(t, "Asia/Kolkata", cfg.Timezone)
	assert.Equal(t, 10.0, cfg.MaxMatchDistanceKm)
	assert.Equal(t, 5, cfg.HotspotLimit)
	assert.Equal(t, config.StorageMemory, cfg.ReportStorage)
}

func TestLoad_WAQIRequiresToken(t *testing.T) {
	t.Setenv("WAQI_TOKEN", "")
	t.Setenv("WAQI_STATION_UIDS", "2553")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WAQI_TOKEN")
}

func TestLoad_WAQIRequiresStations(t *testing.T) {
	t.Setenv("WAQI_TOKEN", "test-token")
	t.Setenv("WAQI_STATION_UIDS", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WAQI_STATION_UIDS")
}

func TestLoad_OpenAQNeedsNoWAQISettings(t *testing.T) {
	t.Setenv("POLLUTION_PROVIDER", "openaq")
	t.Setenv("WAQI_TOKEN", "")
	t.Setenv("WAQI_STATION_UIDS", "")
	t.Setenv("OPENAQ_API_KEY", "test-key")
	t.Setenv("OPENAQ_BBOX", "76.84,28.40,77.34,28.88")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.ProviderOpenAQ, cfg.Provider)
	assert.Equal(t, "test-key", cfg.OpenAQAPIKey)
	assert.Equal(t, "76.84,28.40,77.34,28.88", cfg.OpenAQBBox)
}

func TestLoad_InvalidProvider(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("POLLUTION_PROVIDER", "cpcb")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POLLUTION_PROVIDER")
}

func TestLoad_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("REFRESH_INTERVAL", "15m")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("MAX_MATCH_DISTANCE_KM", "7.5")
	t.Setenv("HOTSPOT_LIMIT", "10")
	t.Setenv("REPORT_HOUR", "7")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("REPORT_STORAGE", "postgres")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 7.5, cfg.MaxMatchDistanceKm)
	assert.Equal(t, 10, cfg.HotspotLimit)
	assert.Equal(t, 7, cfg.ReportHour)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, config.StoragePostgres, cfg.ReportStorage)
}

func TestLoad_InvalidStationUIDs(t *testing.T) {
	t.Setenv("WAQI_TOKEN", "test-token")
	t.Setenv("WAQI_STATION_UIDS", "2553,not-a-number")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WAQI_STATION_UIDS")
}

func TestLoad_InvalidReportHour(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("REPORT_HOUR", "24")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPORT_HOUR")
}

func TestLoad_MidnightReportHour(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("REPORT_HOUR", "0")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.ReportHour)
}

func TestConfig_Location(t *testing.T) {
	cfg := config.Config{Timezone: "Asia/Kolkata"}
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())

	cfg = config.Config{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())
}

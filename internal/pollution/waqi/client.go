// Package waqi provides a station data provider backed by the World Air
// Quality Index (aqicn.org) feed API. Stations are polled one feed at a
// time by UID, the way the Delhi monitoring portals expose them.
package waqi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/airward/airward/internal/pollution"
	"github.com/airward/airward/internal/provider/resilience"
)

const (
	// DefaultBaseURL is the base URL for the WAQI API.
	DefaultBaseURL = "https://api.waqi.info"

	// ProviderName identifies this provider.
	ProviderName = "waqi"
)

// probeGeo is a fixed city-center coordinate used for connectivity probes.
const probeGeo = "28.6304;77.2177"

// JSONGetter abstracts the resilient HTTP layer.
type JSONGetter interface {
	GetJSON(ctx context.Context, url string, out any) error
}

// ClientConfig holds configuration for the WAQI client.
type ClientConfig struct {
	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// Token is the WAQI API token. Required.
	Token string

	// StationUIDs is the list of station feed UIDs to poll each cycle.
	StationUIDs []int

	// HTTPClient overrides the default resilient client.
	HTTPClient JSONGetter

	// Timeout for individual API requests (default: 15s).
	Timeout time.Duration

	// Logger for per-station fetch failures.
	Logger zerolog.Logger
}

// Client fetches station readings from WAQI feeds.
type Client struct {
	baseURL    string
	token      string
	uids       []int
	httpClient JSONGetter
	logger     zerolog.Logger
}

// NewClient creates a WAQI client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 15 * time.Second
		}
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:            ProviderName,
			Timeout:         timeout,
			MaxRetries:      3,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     5 * time.Second,
			Logger:          cfg.Logger,
		})
	}

	return &Client{
		baseURL:    baseURL,
		token:      cfg.Token,
		uids:       cfg.StationUIDs,
		httpClient: httpClient,
		logger:     cfg.Logger.With().Str("provider", ProviderName).Logger(),
	}
}

// API response types (WAQI feed API).

type feedResponse struct {
	Status string   `json:"status"`
	Data   feedData `json:"data"`
}

type feedData struct {
	AQI         int       `json:"aqi"`
	IDx         int       `json:"idx"`
	DominentPol string    `json:"dominentpol"`
	City        feedCity  `json:"city"`
	IAQI        feedIAQI  `json:"iaqi"`
	Time        feedTime  `json:"time"`
	Forecast    *forecast `json:"forecast"`
}

type feedCity struct {
	Name string    `json:"name"`
	Geo  []float64 `json:"geo"`
}

type feedIAQI struct {
	PM25 *iaqiValue `json:"pm25"`
	PM10 *iaqiValue `json:"pm10"`
	NO2  *iaqiValue `json:"no2"`
	SO2  *iaqiValue `json:"so2"`
	CO   *iaqiValue `json:"co"`
	O3   *iaqiValue `json:"o3"`
}

type iaqiValue struct {
	V float64 `json:"v"`
}

type feedTime struct {
	ISO string `json:"iso"`
}

type forecast struct {
	Daily forecastDaily `json:"daily"`
}

type forecastDaily struct {
	PM25 []forecastEntry `json:"pm25"`
}

type forecastEntry struct {
	Avg float64 `json:"avg"`
	Day string  `json:"day"`
	Max float64 `json:"max"`
	Min float64 `json:"min"`
}

// FetchReadings polls each configured station feed sequentially. A station
// that errors or answers with a non-ok status is skipped, not fatal; the
// call fails only when every feed fails.
func (c *Client) FetchReadings(ctx context.Context) ([]pollution.StationReading, error) {
	if len(c.uids) == 0 {
		return nil, fmt.Errorf("waqi: no station UIDs configured")
	}

	readings := make([]pollution.StationReading, 0, len(c.uids))
	var lastErr error
	for _, uid := range c.uids {
		reading, err := c.fetchStation(ctx, uid)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			c.logger.Warn().Err(err).Int("uid", uid).Msg("station feed skipped")
			continue
		}
		readings = append(readings, *reading)
	}

	if len(readings) == 0 {
		return nil, fmt.Errorf("waqi: all %d station feeds failed: %w", len(c.uids), lastErr)
	}
	return readings, nil
}

func (c *Client) fetchStation(ctx context.Context, uid int) (*pollution.StationReading, error) {
	var resp feedResponse
	if err := c.httpClient.GetJSON(ctx, c.feedURL("@"+strconv.Itoa(uid)), &resp); err != nil {
		return nil, err
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("feed status %q", resp.Status)
	}

	d := resp.Data
	reading := &pollution.StationReading{
		StationID:  strconv.Itoa(uid),
		Name:       d.City.Name,
		CapturedAt: parseISO(d.Time.ISO),
	}
	if len(d.City.Geo) == 2 {
		reading.Lat = d.City.Geo[0]
		reading.Lon = d.City.Geo[1]
	}

	reading.Pollutants = pollution.RawPollutants{
		PM25: iaqiPtr(d.IAQI.PM25),
		PM10: iaqiPtr(d.IAQI.PM10),
		NO2:  iaqiPtr(d.IAQI.NO2),
		SO2:  iaqiPtr(d.IAQI.SO2),
		CO:   iaqiPtr(d.IAQI.CO),
		O3:   iaqiPtr(d.IAQI.O3),
	}

	if d.Forecast != nil {
		for _, day := range d.Forecast.Daily.PM25 {
			reading.ForecastPM25 = append(reading.ForecastPM25, pollution.ForecastDay{
				Date: day.Day,
				Avg:  day.Avg,
				Min:  day.Min,
				Max:  day.Max,
			})
		}
	}

	return reading, nil
}

// Probe hits the geo feed for the city center to verify token and
// connectivity without touching the station list.
func (c *Client) Probe(ctx context.Context) error {
	var resp feedResponse
	if err := c.httpClient.GetJSON(ctx, c.feedURL("geo:"+probeGeo), &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return fmt.Errorf("waqi probe: status %q", resp.Status)
	}
	return nil
}

func (c *Client) feedURL(station string) string {
	return c.baseURL + "/feed/" + station + "/?token=" + url.QueryEscape(c.token)
}

func iaqiPtr(v *iaqiValue) *float64 {
	if v == nil {
		return nil
	}
	val := v.V
	return &val
}

func parseISO(iso string) time.Time {
	if iso == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return time.Time{}
	}
	return t
}

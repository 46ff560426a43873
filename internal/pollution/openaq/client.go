// Package openaq provides a station data provider backed by the OpenAQ v3
// API. It pulls every monitoring location inside a bounding box in one call,
// which suits city-wide refresh cycles.
package openaq

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/airward/airward/internal/pollution"
	"github.com/airward/airward/internal/provider/resilience"
)

const (
	// DefaultBaseURL is the base URL for the OpenAQ API.
	DefaultBaseURL = "https://api.openaq.org"

	// DefaultBBox covers the Delhi NCT monitoring network.
	DefaultBBox = "76.84,28.40,77.34,28.88"

	// DefaultLimit is the page size for location queries.
	DefaultLimit = 100

	// ProviderName identifies this provider.
	ProviderName = "openaq"
)

// JSONGetter abstracts the resilient HTTP layer.
type JSONGetter interface {
	GetJSON(ctx context.Context, url string, out any) error
}

// ClientConfig holds configuration for the OpenAQ client.
type ClientConfig struct {
	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// APIKey is sent as a query parameter when set. OpenAQ rate-limits
	// anonymous access hard.
	APIKey string

	// BBox is the "minLon,minLat,maxLon,maxLat" query box
	// (defaults to DefaultBBox).
	BBox string

	// Limit caps the number of locations returned (default: DefaultLimit).
	Limit int

	// HTTPClient overrides the default resilient client.
	HTTPClient JSONGetter

	// Timeout for individual API requests (default: 15s).
	Timeout time.Duration
}

// Client fetches station readings from OpenAQ.
type Client struct {
	baseURL    string
	apiKey     string
	bbox       string
	limit      int
	httpClient JSONGetter
}

// NewClient creates an OpenAQ client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	bbox := cfg.BBox
	if bbox == "" {
		bbox = DefaultBBox
	}
	limit := cfg.Limit
	if limit == 0 {
		limit = DefaultLimit
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
		})
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		bbox:       bbox,
		limit:      limit,
		httpClient: httpClient,
	}
}

// API response types (OpenAQ v3).

type locationsResponse struct {
	Results []locationResult `json:"results"`
}

type locationResult struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Coordinates *coordinates     `json:"coordinates"`
	Sensors     []sensorResult   `json:"sensors"`
	Datetime    *datetimeOffsets `json:"datetimeLast"`
}

type coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type sensorResult struct {
	Parameter parameterInfo `json:"parameter"`
	Value     *float64      `json:"value"`
}

type parameterInfo struct {
	Name string `json:"name"`
}

type datetimeOffsets struct {
	UTC string `json:"utc"`
}

// FetchReadings retrieves one reading per monitoring location inside the
// configured bounding box. Locations without coordinates are skipped.
func (c *Client) FetchReadings(ctx context.Context) ([]pollution.StationReading, error) {
	var resp locationsResponse
	if err := c.httpClient.GetJSON(ctx, c.locationsURL(), &resp); err != nil {
		return nil, fmt.Errorf("openaq locations: %w", err)
	}

	readings := make([]pollution.StationReading, 0, len(resp.Results))
	for _, loc := range resp.Results {
		if loc.Coordinates == nil {
			continue
		}

		reading := pollution.StationReading{
			StationID:  strconv.Itoa(loc.ID),
			Name:       loc.Name,
			Lat:        loc.Coordinates.Latitude,
			Lon:        loc.Coordinates.Longitude,
			CapturedAt: parseUTC(loc.Datetime),
		}
		for _, sensor := range loc.Sensors {
			if sensor.Value == nil {
				continue
			}
			switch sensor.Parameter.Name {
			case "pm25":
				reading.Pollutants.PM25 = sensor.Value
			case "pm10":
				reading.Pollutants.PM10 = sensor.Value
			case "no2":
				reading.Pollutants.NO2 = sensor.Value
			case "so2":
				reading.Pollutants.SO2 = sensor.Value
			case "co":
				reading.Pollutants.CO = sensor.Value
			case "o3":
				reading.Pollutants.O3 = sensor.Value
			}
		}
		readings = append(readings, reading)
	}

	return readings, nil
}

// Probe issues a single-location query to verify the API is reachable.
func (c *Client) Probe(ctx context.Context) error {
	params := url.Values{}
	params.Set("bbox", c.bbox)
	params.Set("limit", "1")
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	var resp locationsResponse
	return c.httpClient.GetJSON(ctx, c.baseURL+"/v3/locations?"+params.Encode(), &resp)
}

func (c *Client) locationsURL() string {
	params := url.Values{}
	params.Set("bbox", c.bbox)
	params.Set("limit", strconv.Itoa(c.limit))
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}
	return c.baseURL + "/v3/locations?" + params.Encode()
}

func parseUTC(dt *datetimeOffsets) time.Time {
	if dt == nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, dt.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

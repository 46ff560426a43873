package openaq_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airward/airward/internal/pollution/openaq"
)

const locationsBody = `{
  "results": [
    {
      "id": 8118,
      "name": "Anand Vihar, Delhi",
      "coordinates": {"latitude": 28.6508, "longitude": 77.3152},
      "sensors": [
        {"parameter": {"name": "pm25"}, "value": 182.0},
        {"parameter": {"name": "pm10"}, "value": 240.5},
        {"parameter": {"name": "no2"}, "value": 61.2},
        {"parameter": {"name": "tempc"}, "value": 31.0}
      ],
      "datetimeLast": {"utc": "2026-01-12T06:30:00Z"}
    },
    {
      "id": 9001,
      "name": "No Coordinates Station",
      "sensors": [{"parameter": {"name": "pm25"}, "value": 90.0}]
    },
    {
      "id": 9002,
      "name": "Null Sensor Station",
      "coordinates": {"latitude": 28.58, "longitude": 77.05},
      "sensors": [{"parameter": {"name": "pm25"}, "value": null}]
    }
  ]
}`

func TestClient_FetchReadings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/locations", r.URL.Path)
		assert.Equal(t, openaq.DefaultBBox, r.URL.Query().Get("bbox"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(locationsBody))
	}))
	defer server.Close()

	client := openaq.NewClient(openaq.ClientConfig{BaseURL: server.URL})

	readings, err := client.FetchReadings(context.Background())
	require.NoError(t, err)
	require.Len(t, readings, 2, "location without coordinates is dropped")

	first := readings[0]
	assert.Equal(t, "8118", first.StationID)
	assert.Equal(t, "Anand Vihar, Delhi", first.Name)
	assert.InDelta(t, 28.6508, first.Lat, 1e-6)
	require.NotNil(t, first.Pollutants.PM25)
	assert.Equal(t, 182.0, *first.Pollutants.PM25)
	require.NotNil(t, first.Pollutants.PM10)
	assert.Equal(t, 240.5, *first.Pollutants.PM10)
	assert.Nil(t, first.Pollutants.SO2)
	assert.Equal(t, 2026, first.CapturedAt.Year())

	// Station whose only sensor reported null keeps a nil pollutant.
	assert.Nil(t, readings[1].Pollutants.PM25)
}

func TestClient_FetchReadings_CustomBBoxAndKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "77.0,28.5,77.1,28.6", r.URL.Query().Get("bbox"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "secret", r.URL.Query().Get("api_key"))
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := openaq.NewClient(openaq.ClientConfig{
		BaseURL: server.URL,
		APIKey:  "secret",
		BBox:    "77.0,28.5,77.1,28.6",
		Limit:   25,
	})

	readings, err := client.FetchReadings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, readings)
}

func TestClient_FetchReadings_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := openaq.NewClient(openaq.ClientConfig{BaseURL: server.URL})

	_, err := client.FetchReadings(context.Background())
	assert.Error(t, err)
}

func TestClient_Probe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := openaq.NewClient(openaq.ClientConfig{BaseURL: server.URL})
	assert.NoError(t, client.Probe(context.Background()))
}

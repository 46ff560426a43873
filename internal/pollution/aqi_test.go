package pollution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airward/airward/internal/pollution"
)

func f(v float64) *float64 { return &v }

func TestCategoryFor_Boundaries(t *testing.T) {
	tests := []struct {
		aqi  int
		want pollution.Category
	}{
		{0, pollution.CategoryGood},
		{50, pollution.CategoryGood},
		{51, pollution.CategoryModerate},
		{100, pollution.CategoryModerate},
		{101, pollution.CategoryPoor},
		{200, pollution.CategoryPoor},
		{201, pollution.CategoryVeryPoor},
		{300, pollution.CategoryVeryPoor},
		{301, pollution.CategorySevere},
		{400, pollution.CategorySevere},
		{401, pollution.CategoryHazardous},
		{550, pollution.CategoryHazardous},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pollution.CategoryFor(tt.aqi), "aqi=%d", tt.aqi)
	}
}

func TestComputeAQI_DominantPollutant(t *testing.T) {
	// PM2.5 sub-index: 250/60*100 ≈ 417, the largest by far.
	res := pollution.ComputeAQI(pollution.Pollutants{
		PM25: 250, PM10: 100, NO2: 10, SO2: 5,
	})

	assert.Equal(t, 417, res.AQI)
	assert.Equal(t, pollution.CategoryHazardous, res.Category)
	assert.Equal(t, "PM2.5", res.DominantPollutant)
}

func TestComputeAQI_SubIndexScaling(t *testing.T) {
	// PM10 at its threshold gives a sub-index of exactly 100.
	res := pollution.ComputeAQI(pollution.Pollutants{PM10: 100})
	assert.Equal(t, 100, res.AQI)
	assert.Equal(t, pollution.CategoryModerate, res.Category)
	assert.Equal(t, "PM10", res.DominantPollutant)
}

func TestComputeAQI_AllZero(t *testing.T) {
	res := pollution.ComputeAQI(pollution.Pollutants{})
	assert.Equal(t, 0, res.AQI)
	assert.Equal(t, pollution.CategoryGood, res.Category)
	// Ties keep the first pollutant in evaluation order.
	assert.Equal(t, "PM2.5", res.DominantPollutant)
}

func TestComputeAQI_ValueNotClamped(t *testing.T) {
	// 600 µg/m³ PM2.5 gives a sub-index of 1000: the value is reported
	// as computed while the category saturates.
	res := pollution.ComputeAQI(pollution.Pollutants{PM25: 600})
	assert.Equal(t, 1000, res.AQI)
	assert.Equal(t, pollution.CategoryHazardous, res.Category)
}

func TestClean_MissingValuesDefaultToZero(t *testing.T) {
	res := pollution.Clean(pollution.RawPollutants{PM25: f(80), PM10: f(120)})

	assert.Equal(t, 80.0, res.Pollutants.PM25)
	assert.Equal(t, 120.0, res.Pollutants.PM10)
	assert.Zero(t, res.Pollutants.NO2)
	assert.Equal(t, pollution.QualityMedium, res.Grade)
	assert.Contains(t, res.Flags, "missing no2")
	assert.Contains(t, res.Flags, "missing so2")
}

func TestClean_NegativeCapped(t *testing.T) {
	res := pollution.Clean(pollution.RawPollutants{
		PM25: f(-5), PM10: f(90), NO2: f(10), SO2: f(2), CO: f(0.5), O3: f(30),
	})

	assert.Zero(t, res.Pollutants.PM25)
	assert.Contains(t, res.Flags, "negative pm25 capped to 0")
}

func TestClean_ExtremePM25Capped(t *testing.T) {
	res := pollution.Clean(pollution.RawPollutants{
		PM25: f(1500), PM10: f(90), NO2: f(10), SO2: f(2), CO: f(0.5), O3: f(30),
	})

	assert.Equal(t, 999.0, res.Pollutants.PM25)
	assert.Equal(t, pollution.QualityLow, res.Grade)
	assert.Contains(t, res.Flags, "extreme pm25 capped")
}

func TestClean_CriticalPMMissing(t *testing.T) {
	res := pollution.Clean(pollution.RawPollutants{NO2: f(10)})

	assert.Equal(t, pollution.QualityLow, res.Grade)
	assert.Contains(t, res.Flags, "critical PM data missing")
}

func TestClean_FullReadingIsHighQuality(t *testing.T) {
	res := pollution.Clean(pollution.RawPollutants{
		PM25: f(80), PM10: f(120), NO2: f(40), SO2: f(8), CO: f(0.8), O3: f(25),
	})

	assert.Equal(t, pollution.QualityHigh, res.Grade)
	assert.Empty(t, res.Flags)
}

func TestNormalize_CappedAtFive(t *testing.T) {
	n := pollution.Normalize(pollution.Pollutants{PM25: 600, PM10: 50, NO2: 120})

	assert.Equal(t, 5.0, n.PM25)
	assert.Equal(t, 0.5, n.PM10)
	assert.InDelta(t, 1.5, n.NO2, 0.0001)
}

func TestBuildTrend(t *testing.T) {
	forecast := []pollution.ForecastDay{
		{Date: "2026-09-01", Avg: 120},
		{Date: "2026-09-02", Avg: 180},
		{Date: "2026-09-03", Avg: 150},
	}

	t.Run("worsening", func(t *testing.T) {
		trend := pollution.BuildTrend(100, forecast)
		require.NotNil(t, trend)
		assert.Equal(t, pollution.TrendWorsening, trend.Direction)
		assert.Equal(t, 150, trend.AvgForecast)
		assert.Equal(t, "2026-09-02", trend.PeakDate)
	})

	t.Run("improving", func(t *testing.T) {
		trend := pollution.BuildTrend(200, forecast)
		require.NotNil(t, trend)
		assert.Equal(t, pollution.TrendImproving, trend.Direction)
	})

	t.Run("stable", func(t *testing.T) {
		trend := pollution.BuildTrend(150, forecast)
		require.NotNil(t, trend)
		assert.Equal(t, pollution.TrendStable, trend.Direction)
	})

	t.Run("no forecast", func(t *testing.T) {
		assert.Nil(t, pollution.BuildTrend(100, nil))
	})
}

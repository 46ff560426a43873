package pollution

import (
	"math"
)

// Regulatory 24-hour thresholds (CPCB standards), µg/m³ except CO (mg/m³)
// and O₃ (8-hour).
const (
	ThresholdPM25 = 60.0
	ThresholdPM10 = 100.0
	ThresholdNO2  = 80.0
	ThresholdSO2  = 80.0
	ThresholdCO   = 2.0
	ThresholdO3   = 100.0
)

// extremePM25Cap bounds implausible PM2.5 sensor spikes.
const extremePM25Cap = 999.0

// CleanResult is the output of the cleaning step: concentrations with
// defaults filled in, plus data-quality flags describing what was fixed.
type CleanResult struct {
	Pollutants Pollutants
	Grade      QualityGrade
	Flags      []string
}

// Clean validates raw pollutant values, substituting 0 for missing or
// negative readings and capping extremes. Cleaning never fails; problems
// are recorded as flags so computation can proceed on degraded data.
func Clean(raw RawPollutants) CleanResult {
	res := CleanResult{Grade: QualityHigh}

	clean := func(val *float64, name string) float64 {
		if val == nil {
			res.Flags = append(res.Flags, "missing "+name)
			if res.Grade == QualityHigh {
				res.Grade = QualityMedium
			}
			return 0
		}
		if *val < 0 {
			res.Flags = append(res.Flags, "negative "+name+" capped to 0")
			return 0
		}
		if name == "pm25" && *val > extremePM25Cap {
			res.Flags = append(res.Flags, "extreme pm25 capped")
			res.Grade = QualityLow
			return extremePM25Cap
		}
		return *val
	}

	res.Pollutants = Pollutants{
		PM25: clean(raw.PM25, "pm25"),
		PM10: clean(raw.PM10, "pm10"),
		NO2:  clean(raw.NO2, "no2"),
		SO2:  clean(raw.SO2, "so2"),
		CO:   clean(raw.CO, "co"),
		O3:   clean(raw.O3, "o3"),
	}

	if res.Pollutants.PM25 == 0 && res.Pollutants.PM10 == 0 {
		res.Grade = QualityLow
		res.Flags = append(res.Flags, "critical PM data missing")
	}

	return res
}

// AQIResult is the outcome of the AQI computation.
type AQIResult struct {
	AQI               int
	Category          Category
	DominantPollutant string
}

// ComputeAQI derives the ward AQI from cleaned concentrations. Each
// pollutant contributes a sub-index of concentration/threshold × 100; the
// AQI is the rounded maximum and the pollutant supplying it is dominant.
// The value is not clamped, but the category saturates at Hazardous.
func ComputeAQI(p Pollutants) AQIResult {
	subIndices := []struct {
		name string
		val  float64
	}{
		{"PM2.5", p.PM25 / ThresholdPM25 * 100},
		{"PM10", p.PM10 / ThresholdPM10 * 100},
		{"NO2", p.NO2 / ThresholdNO2 * 100},
		{"SO2", p.SO2 / ThresholdSO2 * 100},
	}

	max := subIndices[0]
	for _, si := range subIndices[1:] {
		if si.val > max.val {
			max = si
		}
	}

	aqi := int(math.Round(max.val))
	return AQIResult{
		AQI:               aqi,
		Category:          CategoryFor(aqi),
		DominantPollutant: max.name,
	}
}

// CategoryFor maps an AQI value to its band.
func CategoryFor(aqi int) Category {
	switch {
	case aqi <= 50:
		return CategoryGood
	case aqi <= 100:
		return CategoryModerate
	case aqi <= 200:
		return CategoryPoor
	case aqi <= 300:
		return CategoryVeryPoor
	case aqi <= 400:
		return CategorySevere
	default:
		return CategoryHazardous
	}
}

// Normalized holds concentrations divided by their regulatory threshold,
// capped at 5. The source-inference rules operate on these ratios.
type Normalized struct {
	PM25 float64
	PM10 float64
	NO2  float64
	SO2  float64
}

// Normalize converts cleaned concentrations into threshold ratios.
func Normalize(p Pollutants) Normalized {
	norm := func(val, threshold float64) float64 {
		return math.Min(val/threshold, 5)
	}
	return Normalized{
		PM25: norm(p.PM25, ThresholdPM25),
		PM10: norm(p.PM10, ThresholdPM10),
		NO2:  norm(p.NO2, ThresholdNO2),
		SO2:  norm(p.SO2, ThresholdSO2),
	}
}

// BuildTrend derives a trend from a PM2.5 forecast relative to the current
// AQI. Returns nil when no forecast is available.
func BuildTrend(currentAQI int, forecast []ForecastDay) *Trend {
	if len(forecast) == 0 {
		return nil
	}

	var sum float64
	peak := forecast[0]
	for _, day := range forecast {
		sum += day.Avg
		if day.Avg > peak.Avg {
			peak = day
		}
	}
	avg := sum / float64(len(forecast))

	t := &Trend{
		Direction:   TrendStable,
		AvgForecast: int(math.Round(avg)),
		PeakDate:    peak.Date,
	}
	switch {
	case avg > float64(currentAQI)*1.1:
		t.Direction = TrendWorsening
	case avg < float64(currentAQI)*0.9:
		t.Direction = TrendImproving
	}
	return t
}

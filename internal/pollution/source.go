package pollution

import (
	"math"
	"time"
)

// Source labels assigned by the classifier.
const (
	SourceVehicular  = "Vehicular Emissions"
	SourceRoadDust   = "Road Dust / Construction"
	SourceBiomass    = "Waste / Biomass Burning"
	SourceIndustrial = "Industrial Emissions"
	SourceMixed      = "Mixed Urban Activity"
	SourceBackground = "Background / Regional"
)

// hourContext buckets the wall-clock hour into the windows the rules use.
type hourContext struct {
	peakTraffic bool // [08:00,11:00] or [17:00,20:00]
	night       bool // >= 20:00 or <= 06:00
}

func hourContextAt(ts time.Time) hourContext {
	h := ts.Hour()
	return hourContext{
		peakTraffic: (h >= 8 && h <= 11) || (h >= 17 && h <= 20),
		night:       h >= 20 || h <= 6,
	}
}

// sourceRule pairs a predicate with its inference result. Rules are
// evaluated in order and the first match wins, so adding a rule never
// changes the behavior of the rules above it.
type sourceRule struct {
	match  func(n Normalized, pmRatio float64, hc hourContext) bool
	result SourceInference
}

var sourceRules = []sourceRule{
	{
		match: func(n Normalized, _ float64, hc hourContext) bool {
			return n.NO2 > 1.5 || (n.PM25 > 1.5 && n.NO2 > 0.8 && hc.peakTraffic)
		},
		result: SourceInference{
			Label:      SourceVehicular,
			Confidence: ConfidenceHigh,
			Reasoning:  "Elevated NO₂ levels combined with PM2.5 spikes during peak traffic hours.",
		},
	},
	{
		match: func(n Normalized, pmRatio float64, _ hourContext) bool {
			return n.PM10 > 1.5 && pmRatio < 0.5
		},
		result: SourceInference{
			Label:      SourceRoadDust,
			Confidence: ConfidenceHigh,
			Reasoning:  "Dominance of coarse particles (PM10) suggests resuspended road dust or construction activity.",
		},
	},
	{
		match: func(n Normalized, pmRatio float64, hc hourContext) bool {
			return n.PM25 > 2.0 && pmRatio > 0.6 && hc.night
		},
		result: SourceInference{
			Label:      SourceBiomass,
			Confidence: ConfidenceMedium,
			Reasoning:  "High concentration of fine particles (PM2.5) at night is characteristic of biomass or waste burning.",
		},
	},
	{
		match: func(n Normalized, _ float64, _ hourContext) bool {
			return n.SO2 > 1.0
		},
		result: SourceInference{
			Label:      SourceIndustrial,
			Confidence: ConfidenceHigh,
			Reasoning:  "Significant SO₂ levels indicate industrial fuel burning (coal/oil).",
		},
	},
	{
		match: func(n Normalized, _ float64, _ hourContext) bool {
			return n.PM25 > 1.0
		},
		result: SourceInference{
			Label:      SourceMixed,
			Confidence: ConfidenceLow,
			Reasoning:  "High PM2.5 levels without distinct chemical markers suggest mixed sources.",
		},
	},
}

var backgroundInference = SourceInference{
	Label:      SourceBackground,
	Confidence: ConfidenceLow,
	Reasoning:  "Pollutant levels are within expected regional background ranges.",
}

// InferSource classifies the dominant pollution source from cleaned
// concentrations and the hour of day. Pure and deterministic: the same
// pollutants and timestamp always yield the same inference.
func InferSource(p Pollutants, ts time.Time) SourceInference {
	n := Normalize(p)
	hc := hourContextAt(ts)

	pm10 := p.PM10
	if pm10 == 0 {
		pm10 = 1
	}
	pmRatio := p.PM25 / pm10

	for _, rule := range sourceRules {
		if rule.match(n, pmRatio, hc) {
			return rule.result
		}
	}
	return backgroundInference
}

// Contribution model categories and the average urban prior.
var contributionPrior = []Contribution{
	{Source: "Transport", Percentage: 30},
	{Source: "Dust / Construction", Percentage: 25},
	{Source: "Industry", Percentage: 15},
	{Source: "Waste / Biomass", Percentage: 15},
	{Source: "Others", Percentage: 15},
}

// contributionNudges shifts the prior toward the inferred source. Indexes
// follow contributionPrior order.
var contributionNudges = map[string][5]int{
	SourceVehicular:  {+25, -10, 0, -10, -5},
	SourceRoadDust:   {-10, +30, 0, -10, -10},
	SourceIndustrial: {-10, -10, +30, 0, -10},
	SourceBiomass:    {-10, -10, 0, +25, -5},
}

// EstimateContribution maps an inference onto the fixed five-category
// contribution model: the urban prior nudged toward the matched category,
// then renormalized so percentages sum to 100 (within rounding).
func EstimateContribution(inference SourceInference) []Contribution {
	model := make([]Contribution, len(contributionPrior))
	copy(model, contributionPrior)

	if nudges, ok := contributionNudges[inference.Label]; ok {
		for i := range model {
			model[i].Percentage += nudges[i]
		}
	}

	total := 0
	for _, c := range model {
		total += c.Percentage
	}
	for i := range model {
		model[i].Percentage = int(math.Round(float64(model[i].Percentage) / float64(total) * 100))
	}
	return model
}

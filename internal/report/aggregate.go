package report

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/airward/airward/internal/pollution"
	"github.com/airward/airward/internal/ward"
)

// SummarizeZones rolls the per-ward snapshots up into one summary per zone.
// Wards without a snapshot count toward WardCount but are excluded from the
// AQI statistics. The result is a fresh map each call.
func SummarizeZones(snapshots map[int]pollution.WardSnapshot, registry *ward.Registry) map[string]ZoneSummary {
	summaries := make(map[string]ZoneSummary)

	for _, w := range registry.All() {
		zone, ok := summaries[w.Zone]
		if !ok {
			zone = ZoneSummary{
				ZoneName:                w.Zone,
				DominantPollutantCounts: make(map[string]int),
			}
		}
		zone.WardCount++

		snap, hasData := snapshots[w.ID]
		entry := ZoneWard{WardID: w.ID, WardName: w.Name}
		if hasData {
			entry.AQI = snap.AQI
			entry.DominantPollutant = snap.DominantPollutant
			entry.DataSource = string(snap.DataSource)
			if snap.DominantPollutant != "" {
				zone.DominantPollutantCounts[snap.DominantPollutant]++
			}
		}
		zone.Wards = append(zone.Wards, entry)
		summaries[w.Zone] = zone
	}

	for name, zone := range summaries {
		var sum, count int
		maxAQI := 0
		minAQI := math.MaxInt
		for _, entry := range zone.Wards {
			if _, ok := snapshots[entry.WardID]; !ok {
				continue
			}
			sum += entry.AQI
			count++
			if entry.AQI > maxAQI {
				maxAQI = entry.AQI
			}
			if entry.AQI < minAQI {
				minAQI = entry.AQI
			}
		}
		if count > 0 {
			zone.AvgAQI = int(math.Round(float64(sum) / float64(count)))
			zone.MaxAQI = maxAQI
			zone.MinAQI = minAQI
		}
		summaries[name] = zone
	}

	return summaries
}

// RankHotspots returns the worst wards sorted by AQI descending, capped at
// limit. The sort is stable with respect to registry order, so equal-AQI
// wards rank in registry position. Wards without data are skipped.
func RankHotspots(snapshots map[int]pollution.WardSnapshot, registry *ward.Registry, limit int) HotspotAnalysis {
	total := registry.Count()

	hotspots := make([]Hotspot, 0, len(snapshots))
	aqiSum := 0
	for _, w := range registry.All() {
		snap, ok := snapshots[w.ID]
		if !ok {
			continue
		}
		aqiSum += snap.AQI
		if snap.AQI <= 0 {
			continue
		}
		hotspots = append(hotspots, Hotspot{
			WardID:            w.ID,
			WardName:          w.Name,
			Zone:              w.Zone,
			AQI:               snap.AQI,
			Category:          string(snap.Category),
			DominantPollutant: snap.DominantPollutant,
			SeverityScore:     severityScore(snap),
		})
	}

	sort.SliceStable(hotspots, func(i, j int) bool {
		return hotspots[i].AQI > hotspots[j].AQI
	})
	if limit > 0 && len(hotspots) > limit {
		hotspots = hotspots[:limit]
	}
	for i := range hotspots {
		hotspots[i].Rank = i + 1
	}

	analysis := HotspotAnalysis{
		Hotspots:           hotspots,
		TotalWardsAnalyzed: total,
	}
	if total > 0 {
		analysis.AverageAQI = int(math.Round(float64(aqiSum) / float64(total)))
	}
	for _, h := range hotspots {
		if h.AQI > 300 {
			analysis.CriticalWards++
		}
	}
	return analysis
}

// severityScore weights AQI 40%, PM2.5 30%, PM10 20%, and the remaining
// gaseous pollutants 10%.
func severityScore(snap pollution.WardSnapshot) int {
	p := snap.Pollutants
	score := float64(snap.AQI)*0.4 +
		p.PM25*0.3 +
		p.PM10*0.2 +
		(p.NO2+p.SO2+p.CO)*0.1
	return int(math.Round(score))
}

// BuildDailyReport assembles the daily city report from zone summaries and
// the hotspot ranking. Recommendation tiers follow the city average: above
// 300 triggers emergency measures, above 200 Stage-II GRAP measures.
func BuildDailyReport(zones map[string]ZoneSummary, hotspots HotspotAnalysis, now time.Time) Report {
	overview := CityOverview{TotalZones: len(zones)}

	avgSum := 0
	worstAQI, bestAQI := math.MinInt, math.MaxInt
	for _, zone := range sortedZones(zones) {
		overview.TotalWards += zone.WardCount
		avgSum += zone.AvgAQI
		if zone.AvgAQI > worstAQI {
			worstAQI = zone.AvgAQI
			overview.WorstZone = zone.ZoneName
		}
		if zone.AvgAQI < bestAQI {
			bestAQI = zone.AvgAQI
			overview.BestZone = zone.ZoneName
		}
	}
	if len(zones) > 0 {
		overview.CityAvgAQI = int(math.Round(float64(avgSum) / float64(len(zones))))
	}

	rec := Recommendations{
		ImmediateActions:  []string{},
		CitizenAdvisories: []string{},
	}
	switch {
	case overview.CityAvgAQI > 300:
		rec.ImmediateActions = append(rec.ImmediateActions, "Implement emergency pollution control measures")
		rec.CitizenAdvisories = append(rec.CitizenAdvisories, "Stay indoors and avoid all outdoor activities")
	case overview.CityAvgAQI > 200:
		rec.ImmediateActions = append(rec.ImmediateActions, "Activate Stage II GRAP measures")
		rec.CitizenAdvisories = append(rec.CitizenAdvisories, "Limit outdoor activities and wear masks")
	}

	return Report{
		ID:              uuid.NewString(),
		Date:            now.Format("2006-01-02"),
		GeneratedAt:     now,
		CityOverview:    overview,
		ZoneSummaries:   zones,
		Hotspots:        hotspots.Hotspots,
		Recommendations: rec,
	}
}

// sortedZones returns summaries in deterministic name order so worst/best
// tie-breaks do not depend on map iteration.
func sortedZones(zones map[string]ZoneSummary) []ZoneSummary {
	out := make([]ZoneSummary, 0, len(zones))
	for _, zone := range zones {
		out = append(out, zone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ZoneName < out[j].ZoneName
	})
	return out
}

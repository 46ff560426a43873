package pollution

import (
	"math"

	"github.com/airward/airward/internal/ward"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// NearestStation returns the station reading closest to the ward and its
// great-circle distance in kilometers, or nil when no reading is usable.
// The scan is linear: at hundreds of wards and at most a hundred stations a
// spatial index buys nothing. Equal distances keep the first reading in
// input order.
func NearestStation(w ward.Ward, readings []StationReading) (*StationReading, float64) {
	var nearest *StationReading
	minDist := math.Inf(1)

	for i := range readings {
		dist := stationDistanceKm(w, readings[i])
		if dist < minDist {
			minDist = dist
			nearest = &readings[i]
		}
	}

	return nearest, minDist
}

// stationDistanceKm is the matcher's distance metric. Missing coordinates
// on either side make the pair infinitely far apart rather than an error.
func stationDistanceKm(w ward.Ward, r StationReading) float64 {
	if !w.HasCoordinates() {
		return math.Inf(1)
	}
	if r.Lat == 0 && r.Lon == 0 {
		return math.Inf(1)
	}
	return HaversineKm(w.Lat, w.Lon, r.Lat, r.Lon)
}

// HaversineKm computes the great-circle distance between two coordinates in
// kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

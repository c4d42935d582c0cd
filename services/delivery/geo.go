package delivery

import (
	"math"

	"savora/models"
)

// earthRadiusMiles is the mean Earth radius used for great-circle
// distances, in statute miles.
const earthRadiusMiles = 3958.8

// Haversine returns the great-circle distance between two points in miles.
// Non-finite coordinates propagate as a NaN distance, which never matches
// any zone or rule downstream.
func Haversine(a, b models.GeoPoint) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180)
	lat1Rad := a.Latitude * (math.Pi / 180)
	lat2Rad := b.Latitude * (math.Pi / 180)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMiles * c
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

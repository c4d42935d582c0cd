package delivery

import (
	"math"
	"testing"

	"savora/models"
)

func TestHaversineSymmetry(t *testing.T) {
	a := models.GeoPoint{Latitude: 51.5074, Longitude: -0.1278}
	b := models.GeoPoint{Latitude: 48.8566, Longitude: 2.3522}

	ab := Haversine(a, b)
	ba := Haversine(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestHaversineIdentity(t *testing.T) {
	p := models.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	if d := Haversine(p, p); d != 0 {
		t.Fatalf("expected zero distance to self, got %v", d)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of latitude is about 69.09 statute miles.
	a := models.GeoPoint{Latitude: 51.0, Longitude: 0}
	b := models.GeoPoint{Latitude: 52.0, Longitude: 0}
	d := Haversine(a, b)
	if d < 69.0 || d > 69.2 {
		t.Fatalf("expected ~69.09 miles, got %v", d)
	}
}

func TestHaversineNaNPropagates(t *testing.T) {
	a := models.GeoPoint{Latitude: math.NaN(), Longitude: 0}
	b := models.GeoPoint{Latitude: 51.5, Longitude: -0.1}
	if d := Haversine(a, b); !math.IsNaN(d) {
		t.Fatalf("expected NaN distance, got %v", d)
	}
}

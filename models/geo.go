package models

// GeoPoint represents a geographic coordinate in decimal degrees (WGS 84).
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

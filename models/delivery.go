package models

// RadiusZone is a named circular service area. Inactive zones are excluded
// from matching entirely.
type RadiusZone struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	CenterLatitude  float64 `bson:"centerLatitude" json:"centerLatitude"`
	CenterLongitude float64 `bson:"centerLongitude" json:"centerLongitude"`
	RadiusMiles     float64 `bson:"radiusMiles" json:"radiusMiles"`
	Active          bool    `bson:"active" json:"active"`
	Priority        int     `bson:"priority" json:"priority"` // list order is the tie-break for matching
}

// DeliveryChargeRule is a distance-tiered price band within a zone.
// TimeStart/TimeEnd are "HH:MM"; both empty means the rule applies at any
// time of day. Location is a RadiusZone id; empty means any zone.
type DeliveryChargeRule struct {
	ID         string  `bson:"id" json:"id"`
	MilesStart float64 `bson:"milesStart" json:"milesStart"`
	MilesEnd   float64 `bson:"milesEnd" json:"milesEnd"`
	Price      float64 `bson:"price" json:"price"`
	TimeStart  string  `bson:"timeStart,omitempty" json:"timeStart,omitempty"`
	TimeEnd    string  `bson:"timeEnd,omitempty" json:"timeEnd,omitempty"`
	Location   string  `bson:"location,omitempty" json:"location,omitempty"`
	Active     bool    `bson:"active" json:"active"`
	Priority   int     `bson:"priority" json:"priority"`
}

// SurchargeRule is an additive, zone-scoped extra charge with no distance
// or time gating. Multiple surcharges on the same zone stack.
type SurchargeRule struct {
	ID       string  `bson:"id" json:"id"`
	Reason   string  `bson:"reason" json:"reason"`
	Price    float64 `bson:"price" json:"price"`
	Location string  `bson:"location" json:"location"`
	Active   bool    `bson:"active" json:"active"`
}

// ParcelSize buckets used by the pre-checkout parcel pricing variant.
const (
	ParcelSmall  = "small"
	ParcelMedium = "medium"
	ParcelLarge  = "large"
	ParcelBulky  = "bulky"
)

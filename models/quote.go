package models

// DeliveryQuote is the priced result of a quote computation. It is
// ephemeral and recomputed per request, never persisted.
//
// Radius and DistanceMiles are nil when no zone matched; callers must
// check Radius for deliverability rather than a zero TotalDelivery.
type DeliveryQuote struct {
	Radius         *RadiusZone         `json:"radius,omitempty"`
	DistanceMiles  *float64            `json:"distanceMiles,omitempty"`
	BaseRule       *DeliveryChargeRule `json:"baseRule,omitempty"`
	BaseCharge     float64             `json:"baseCharge"`
	Surcharges     []SurchargeRule     `json:"surcharges"`
	SurchargeTotal float64             `json:"surchargeTotal"`
	TotalDelivery  float64             `json:"totalDelivery"`
}

// DeliveryCheck is the reduced pre-checkout deliverability result.
type DeliveryCheck struct {
	Deliverable   bool        `json:"deliverable"`
	Zone          *RadiusZone `json:"zone,omitempty"`
	DistanceMiles *float64    `json:"distanceMiles,omitempty"`
}

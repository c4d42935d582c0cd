package delivery

import (
	"savora/models"
)

// ParcelAdjustedCharge scales a base delivery charge by the parcel size
// bucket: small x1, medium x1.5, large and bulky x2. Unknown sizes are
// charged at the base rate. Composable with BuildQuote's BaseCharge.
func ParcelAdjustedCharge(basePrice float64, parcelSize string) float64 {
	switch parcelSize {
	case models.ParcelMedium:
		return basePrice * 1.5
	case models.ParcelLarge, models.ParcelBulky:
		return basePrice * 2
	default:
		return basePrice
	}
}

// EstimateCharge is the back-office calculator variant of the tier match.
// It differs from the customer-facing quote path in one respect: the
// distance band is half-open, [milesStart, milesEnd). The two behaviors
// are kept as documented variants rather than unified.
//
// Returns the matched price and true, or 0 and false when no tier applies.
func EstimateCharge(distanceMiles float64, zoneID string, rules []models.DeliveryChargeRule, nowMinutes int) (float64, bool) {
	if !isFinite(distanceMiles) {
		return 0, false
	}
	for i := range rules {
		r := &rules[i]
		if !r.Active {
			continue
		}
		if r.Location != "" && r.Location != zoneID {
			continue
		}
		if !isFinite(r.MilesStart) || !isFinite(r.MilesEnd) || !isFinite(r.Price) {
			continue
		}
		if distanceMiles < r.MilesStart || distanceMiles >= r.MilesEnd {
			continue
		}
		if !ruleWindowContains(r.TimeStart, r.TimeEnd, nowMinutes) {
			continue
		}
		return r.Price, true
	}
	return 0, false
}

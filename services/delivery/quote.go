package delivery

import (
	"strconv"
	"strings"
	"time"

	"savora/models"
)

// QuoteEngine prices a delivery address against the configured zones,
// charge rules, and surcharges. All methods are pure apart from reading
// the injected clock; they never return errors — bad zone or rule data
// simply fails to match.
type QuoteEngine interface {
	// BuildQuote returns a priced quote, a zero quote with no zone when the
	// address is outside every active zone, or nil when the address is
	// absent or has non-finite coordinates ("cannot quote yet").
	BuildQuote(address *models.GeoPoint, zones []models.RadiusZone, rules []models.DeliveryChargeRule, surcharges []models.SurchargeRule) *models.DeliveryQuote
	// CheckDeliverability is the reduced pre-checkout surface: zone match
	// only, no pricing.
	CheckDeliverability(point models.GeoPoint, zones []models.RadiusZone) models.DeliveryCheck
}

// DefaultQuoteEngine implements QuoteEngine. Now is injectable for tests
// and defaults to time.Now.
type DefaultQuoteEngine struct {
	Now func() time.Time
}

func (e *DefaultQuoteEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// MatchZone returns the first active zone whose radius covers the point,
// along with the distance to its center, iterating in slice order.
// Zones with a non-finite radius never match.
func MatchZone(point models.GeoPoint, zones []models.RadiusZone) (*models.RadiusZone, float64) {
	for i := range zones {
		z := &zones[i]
		if !z.Active {
			continue
		}
		if !isFinite(z.RadiusMiles) {
			continue
		}
		d := Haversine(point, models.GeoPoint{Latitude: z.CenterLatitude, Longitude: z.CenterLongitude})
		if isFinite(d) && z.RadiusMiles >= d {
			return z, d
		}
	}
	return nil, 0
}

// BuildQuote implements the customer-facing quote path.
//
// Zone match is first-wins in slice order; the tier match uses an
// inclusive upper bound on milesEnd (the admin estimate in pricing.go
// deliberately uses an exclusive one). Surcharges stack with no time
// gating. Totals are raw sums; display rounding is the caller's job.
func (e *DefaultQuoteEngine) BuildQuote(address *models.GeoPoint, zones []models.RadiusZone, rules []models.DeliveryChargeRule, surcharges []models.SurchargeRule) *models.DeliveryQuote {
	if address == nil || !isFinite(address.Latitude) || !isFinite(address.Longitude) {
		return nil
	}

	quote := &models.DeliveryQuote{Surcharges: []models.SurchargeRule{}}

	zone, dist := MatchZone(*address, zones)
	if zone == nil {
		// Not deliverable: zero charge and no zone populated.
		return quote
	}
	quote.Radius = zone
	quote.DistanceMiles = &dist

	nowMinutes := minutesOfDay(e.now())
	for i := range rules {
		r := &rules[i]
		if !ruleMatches(r, zone.ID, dist, nowMinutes) {
			continue
		}
		quote.BaseRule = r
		quote.BaseCharge = r.Price
		break
	}

	for _, s := range surcharges {
		if !s.Active {
			continue
		}
		if s.Location != zone.ID {
			continue
		}
		if !isFinite(s.Price) {
			continue
		}
		quote.Surcharges = append(quote.Surcharges, s)
		quote.SurchargeTotal += s.Price
	}

	quote.TotalDelivery = quote.BaseCharge + quote.SurchargeTotal
	return quote
}

// CheckDeliverability reuses the zone-match primitive for the
// pre-checkout "can we even deliver here" surface.
func (e *DefaultQuoteEngine) CheckDeliverability(point models.GeoPoint, zones []models.RadiusZone) models.DeliveryCheck {
	if !isFinite(point.Latitude) || !isFinite(point.Longitude) {
		return models.DeliveryCheck{}
	}
	zone, dist := MatchZone(point, zones)
	if zone == nil {
		return models.DeliveryCheck{}
	}
	return models.DeliveryCheck{Deliverable: true, Zone: zone, DistanceMiles: &dist}
}

// ruleMatches reports whether a charge rule applies to the matched zone at
// the given distance and time of day. Bounds are inclusive at both ends.
func ruleMatches(r *models.DeliveryChargeRule, zoneID string, dist float64, nowMinutes int) bool {
	if !r.Active {
		return false
	}
	if r.Location != "" && r.Location != zoneID {
		return false
	}
	if !isFinite(r.MilesStart) || !isFinite(r.MilesEnd) || !isFinite(r.Price) {
		return false
	}
	if dist < r.MilesStart || dist > r.MilesEnd {
		return false
	}
	return ruleWindowContains(r.TimeStart, r.TimeEnd, nowMinutes)
}

// ruleWindowContains checks the optional [timeStart, timeEnd] window.
// Both ends absent means always valid; a window with start > end spans
// midnight (e.g. 22:00-02:00). A window that fails to parse never matches.
func ruleWindowContains(start, end string, nowMinutes int) bool {
	if start == "" && end == "" {
		return true
	}
	s, okS := parseClock(start)
	t, okT := parseClock(end)
	if !okS || !okT {
		return false
	}
	if s > t {
		// Overnight wraparound.
		return nowMinutes >= s || nowMinutes <= t
	}
	return nowMinutes >= s && nowMinutes <= t
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(v string) (int, bool) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

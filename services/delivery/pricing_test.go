package delivery

import (
	"testing"

	"savora/models"
)

func TestParcelAdjustedCharge(t *testing.T) {
	cases := []struct {
		size string
		want float64
	}{
		{models.ParcelSmall, 4.00},
		{models.ParcelMedium, 6.00},
		{models.ParcelLarge, 8.00},
		{models.ParcelBulky, 8.00},
		{"", 4.00},
		{"envelope", 4.00},
	}
	for _, tc := range cases {
		if got := ParcelAdjustedCharge(4.00, tc.size); got != tc.want {
			t.Errorf("ParcelAdjustedCharge(4.00, %q) = %v, want %v", tc.size, got, tc.want)
		}
	}
}

func TestEstimateChargeExclusiveUpperBound(t *testing.T) {
	rules := []models.DeliveryChargeRule{
		{ID: "r1", MilesStart: 0, MilesEnd: 3, Price: 2.00, Active: true},
		{ID: "r2", MilesStart: 3, MilesEnd: 6, Price: 4.00, Active: true},
	}

	// Exactly at a band edge the estimate falls into the next band, unlike
	// the customer-facing quote path.
	price, ok := EstimateCharge(3, "zone-1", rules, 720)
	if !ok || price != 4.00 {
		t.Fatalf("expected second band at exactly 3 miles, got price=%v ok=%v", price, ok)
	}

	price, ok = EstimateCharge(2.99, "zone-1", rules, 720)
	if !ok || price != 2.00 {
		t.Fatalf("expected first band below 3 miles, got price=%v ok=%v", price, ok)
	}

	if _, ok := EstimateCharge(6, "zone-1", rules, 720); ok {
		t.Error("expected no match at the exclusive outer edge")
	}
}

func TestEstimateChargeSkipsInactiveAndScoped(t *testing.T) {
	rules := []models.DeliveryChargeRule{
		{ID: "off", MilesStart: 0, MilesEnd: 10, Price: 1.00, Active: false},
		{ID: "elsewhere", MilesStart: 0, MilesEnd: 10, Price: 2.00, Location: "zone-9", Active: true},
		{ID: "match", MilesStart: 0, MilesEnd: 10, Price: 3.00, Active: true},
	}
	price, ok := EstimateCharge(5, "zone-1", rules, 720)
	if !ok || price != 3.00 {
		t.Fatalf("expected third rule to match, got price=%v ok=%v", price, ok)
	}
}

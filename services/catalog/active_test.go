package catalog

import (
	"testing"
	"time"

	"savora/models"
)

var frozenNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestIsEntityActiveFlag(t *testing.T) {
	if !IsEntityActive(true, "", frozenNow) {
		t.Fatal("active flag alone should activate")
	}
	if IsEntityActive(false, "", frozenNow) {
		t.Fatal("inactive with no reactivation date should stay inactive")
	}
}

func TestIsEntityActiveReactivation(t *testing.T) {
	if !IsEntityActive(false, "2024-01-01", frozenNow) {
		t.Fatal("past reactivation date should activate")
	}
	if IsEntityActive(false, "2024-12-25", frozenNow) {
		t.Fatal("future reactivation date should not activate")
	}
	// Active flag wins regardless of the stored date.
	if !IsEntityActive(true, "2099-01-01", frozenNow) {
		t.Fatal("active flag should win over any reactivation date")
	}
}

func TestIsEntityActiveIdempotent(t *testing.T) {
	first := IsEntityActive(false, "2024-01-01", frozenNow)
	second := IsEntityActive(false, "2024-01-01", frozenNow)
	if first != second {
		t.Fatalf("same frozen now must yield same result: %v vs %v", first, second)
	}
}

func TestIsEntityActiveMalformedDate(t *testing.T) {
	if IsEntityActive(false, "not-a-date", frozenNow) {
		t.Fatal("unparseable reactivation date should never activate")
	}
	if IsEntityActive(false, "01/02/2024", frozenNow) {
		t.Fatal("wrong date layout should never activate")
	}
}

func TestIsEntityActiveRFC3339(t *testing.T) {
	if !IsEntityActive(false, "2024-05-31T08:00:00Z", frozenNow) {
		t.Fatal("past RFC3339 timestamp should activate")
	}
}

func TestPendingReactivation(t *testing.T) {
	if !PendingReactivation(false, "2024-01-01", frozenNow) {
		t.Fatal("fired reactivation should be pending a write-back")
	}
	if PendingReactivation(true, "2024-01-01", frozenNow) {
		t.Fatal("already-active record needs no write-back")
	}
	if PendingReactivation(false, "2099-01-01", frozenNow) {
		t.Fatal("future date needs no write-back")
	}
}

func TestPendingItemReactivations(t *testing.T) {
	items := []models.Item{
		{ID: "due", Active: false, ReactivateOn: "2024-01-01"},
		{ID: "future", Active: false, ReactivateOn: "2099-01-01"},
		{ID: "on", Active: true},
	}
	ids := PendingItemReactivations(items, frozenNow)
	if len(ids) != 1 || ids[0] != "due" {
		t.Fatalf("expected only the due item, got %v", ids)
	}
}

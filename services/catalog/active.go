package catalog

import (
	"time"

	"savora/models"
)

// dateLayouts are the accepted formats for reactivateOn values. Records
// written by older admin tooling carry bare dates; newer ones carry full
// RFC 3339 timestamps.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// IsEntityActive reports the effective activation state of a catalog
// entity: active outright, or carrying a reactivateOn date at or before
// now. A reactivateOn that fails to parse never activates anything.
//
// This is read-time reactivation only; persisting the flip is the
// repository layer's job (see PendingReactivation).
func IsEntityActive(active bool, reactivateOn string, now time.Time) bool {
	if active {
		return true
	}
	if reactivateOn == "" {
		return false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, reactivateOn); err == nil {
			return !t.After(now)
		}
	}
	return false
}

// PendingReactivation reports whether a record's reactivation condition
// has fired, i.e. it reads as active only via its reactivateOn date. The
// caller should then persist {active: true, reactivateOn: ""} for it —
// an idempotent, best-effort write.
func PendingReactivation(active bool, reactivateOn string, now time.Time) bool {
	return !active && IsEntityActive(active, reactivateOn, now)
}

// PendingItemReactivations scans items and returns the ids needing the
// reactivation write-back.
func PendingItemReactivations(items []models.Item, now time.Time) []string {
	var ids []string
	for _, it := range items {
		if PendingReactivation(it.Active, it.ReactivateOn, now) {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// PendingCategoryReactivations scans categories and returns the ids
// needing the reactivation write-back.
func PendingCategoryReactivations(categories []models.Category, now time.Time) []string {
	var ids []string
	for _, c := range categories {
		if PendingReactivation(c.Active, c.ReactivateOn, now) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// PendingMainCategoryReactivations scans main categories and returns the
// ids needing the reactivation write-back.
func PendingMainCategoryReactivations(mains []models.MainCategory, now time.Time) []string {
	var ids []string
	for _, m := range mains {
		if PendingReactivation(m.Active, m.ReactivateOn, now) {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

package catalog

import (
	"strconv"
	"strings"

	"savora/models"
)

// IsScheduleOpen reports whether a category-level weekly schedule is open
// at the given weekday and minutes since midnight.
//
// A nil schedule means no restriction is configured: open. A schedule
// with no entry for the day means closed all day. A slot is open when
// both ends parse and minutes falls in [start, end). The record-absent /
// day-absent inversion is deliberate and load-bearing.
func IsScheduleOpen(sched *models.WeeklySchedule, day string, minutes int) bool {
	if sched == nil {
		return true
	}
	slots, ok := sched.Timeslots[day]
	if !ok {
		return false
	}
	if slotOpen(slots.Slot1Start, slots.Slot1End, minutes) {
		return true
	}
	return slotOpen(slots.Slot2Start, slots.Slot2End, minutes)
}

// IsItemScheduleOpen is the item-level counterpart, with any number of
// windows per day. Same absent-record/absent-day semantics; a listed day
// with zero windows is fully closed.
func IsItemScheduleOpen(sched *models.ItemSchedule, day string, minutes int) bool {
	if sched == nil {
		return true
	}
	windows, ok := sched.Timeslots[day]
	if !ok {
		return false
	}
	for _, w := range windows {
		if slotOpen(w.Start, w.End, minutes) {
			return true
		}
	}
	return false
}

// slotOpen checks one window. Malformed time strings fail toward closed.
func slotOpen(start, end string, minutes int) bool {
	s, okS := clockMinutes(start)
	t, okT := clockMinutes(end)
	if !okS || !okT {
		return false
	}
	return minutes >= s && minutes < t
}

// clockMinutes converts "HH:MM" to minutes since midnight.
func clockMinutes(v string) (int, bool) {
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

package catalog

import (
	"testing"

	"savora/models"
)

func TestScheduleAbsentRecordIsOpen(t *testing.T) {
	if !IsScheduleOpen(nil, "Monday", 600) {
		t.Fatal("no schedule record means no restriction: open")
	}
	if !IsItemScheduleOpen(nil, "Monday", 600) {
		t.Fatal("no item schedule record means no restriction: open")
	}
}

func TestScheduleAbsentDayIsClosed(t *testing.T) {
	sched := &models.WeeklySchedule{
		OwnerID: "cat-1",
		Timeslots: map[string]models.DaySlots{
			"Monday": {Slot1Start: "09:00", Slot1End: "17:00"},
		},
	}
	if IsScheduleOpen(sched, "Tuesday", 600) {
		t.Fatal("a day with no entry is fully closed")
	}
}

func TestScheduleSlotHalfOpen(t *testing.T) {
	sched := &models.WeeklySchedule{
		OwnerID: "cat-1",
		Timeslots: map[string]models.DaySlots{
			"Monday": {Slot1Start: "09:00", Slot1End: "17:00"},
		},
	}
	if !IsScheduleOpen(sched, "Monday", 9*60) {
		t.Error("open at the start boundary")
	}
	if IsScheduleOpen(sched, "Monday", 17*60) {
		t.Error("closed at the end boundary")
	}
	if IsScheduleOpen(sched, "Monday", 8*60) {
		t.Error("closed before opening")
	}
}

func TestScheduleSecondSlot(t *testing.T) {
	sched := &models.WeeklySchedule{
		OwnerID: "cat-1",
		Timeslots: map[string]models.DaySlots{
			"Friday": {
				Slot1Start: "09:00", Slot1End: "12:00",
				Slot2Start: "18:00", Slot2End: "22:00",
			},
		},
	}
	if !IsScheduleOpen(sched, "Friday", 19*60) {
		t.Error("second slot should open the evening")
	}
	if IsScheduleOpen(sched, "Friday", 14*60) {
		t.Error("gap between slots should be closed")
	}
}

func TestScheduleMalformedTimesFailClosed(t *testing.T) {
	sched := &models.WeeklySchedule{
		OwnerID: "cat-1",
		Timeslots: map[string]models.DaySlots{
			"Monday": {Slot1Start: "9am", Slot1End: "17:00"},
		},
	}
	if IsScheduleOpen(sched, "Monday", 600) {
		t.Fatal("malformed slot should be treated as never open")
	}
}

func TestItemScheduleManyWindows(t *testing.T) {
	sched := &models.ItemSchedule{
		ItemID: "item-1",
		Timeslots: map[string][]models.ItemWindow{
			"Saturday": {
				{Start: "08:00", End: "10:00"},
				{Start: "12:00", End: "14:00"},
				{Start: "18:00", End: "20:00"},
			},
			"Sunday": {},
		},
	}
	if !IsItemScheduleOpen(sched, "Saturday", 13*60) {
		t.Error("middle window should be open")
	}
	if IsItemScheduleOpen(sched, "Saturday", 11*60) {
		t.Error("between windows should be closed")
	}
	if IsItemScheduleOpen(sched, "Sunday", 13*60) {
		t.Error("a listed day with zero windows is fully closed")
	}
}

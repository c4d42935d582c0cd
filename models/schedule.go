package models

// DaySlots holds up to two open windows for one weekday, as "HH:MM"
// strings. An empty pair means the slot is unused.
type DaySlots struct {
	Slot1Start string `bson:"slot1Start,omitempty" json:"slot1Start,omitempty"`
	Slot1End   string `bson:"slot1End,omitempty" json:"slot1End,omitempty"`
	Slot2Start string `bson:"slot2Start,omitempty" json:"slot2Start,omitempty"`
	Slot2End   string `bson:"slot2End,omitempty" json:"slot2End,omitempty"`
}

// WeeklySchedule restricts visibility of a main category, category, or
// subcategory to recurring weekly windows. Keys are capitalized English
// weekday names ("Monday" ... "Sunday").
//
// Absence of the whole record means no restriction (always open); a
// record that has no entry for the current day means closed all day.
type WeeklySchedule struct {
	OwnerID   string              `bson:"ownerId" json:"ownerId"`
	Timeslots map[string]DaySlots `bson:"timeslots" json:"timeslots"`
}

// ItemWindow is one open window in an item-level schedule.
type ItemWindow struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// ItemSchedule is the item-level weekly schedule. Unlike WeeklySchedule
// it allows any number of windows per day. Same closed-by-default
// semantics for a listed day with no windows.
type ItemSchedule struct {
	ItemID    string                  `bson:"itemId" json:"itemId"`
	Timeslots map[string][]ItemWindow `bson:"timeslots" json:"timeslots"`
}

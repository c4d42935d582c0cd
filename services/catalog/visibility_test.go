package catalog

import (
	"testing"
	"time"

	"savora/models"
)

// baseContext builds a fully-open context: everything active, no
// schedules configured.
func baseContext() *VisibilityContext {
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC) // a Monday
	day, minutes := DayAndMinutes(now)
	return &VisibilityContext{
		Item:         models.Item{ID: "item-1", Name: "Margherita", CategoryID: "cat-1", Active: true},
		Category:     &models.Category{ID: "cat-1", Name: "Pizza", MainCategoryID: "main-1", Active: true},
		MainCategory: &models.MainCategory{ID: "main-1", Name: "Food", Active: true},
		Day:          day,
		Minutes:      minutes,
		Now:          now,
	}
}

func TestListVisibleWhenFullyOpen(t *testing.T) {
	ctx := baseContext()
	if !IsItemListVisible(ctx) {
		t.Fatal("fully active hierarchy with no schedules should be visible")
	}
	if !IsItemDirectlyAccessible(ctx) {
		t.Fatal("fully active hierarchy should be directly accessible")
	}
}

func TestInactiveItemHardBlock(t *testing.T) {
	ctx := baseContext()
	ctx.Item.Active = false
	// Even an always-open schedule cannot resurrect an inactive item.
	ctx.ItemSchedule = &models.ItemSchedule{
		ItemID: "item-1",
		Timeslots: map[string][]models.ItemWindow{
			"Monday": {{Start: "00:00", End: "23:59"}},
		},
	}
	if IsItemListVisible(ctx) {
		t.Fatal("inactive item must never be list-visible")
	}
	if IsItemDirectlyAccessible(ctx) {
		t.Fatal("inactive item must never be directly accessible")
	}
}

func TestDeepLinkSurvivesClosedSchedule(t *testing.T) {
	ctx := baseContext()
	// Item schedule with no entry for today: closed for listing.
	ctx.ItemSchedule = &models.ItemSchedule{
		ItemID: "item-1",
		Timeslots: map[string][]models.ItemWindow{
			"Tuesday": {{Start: "09:00", End: "17:00"}},
		},
	}
	if IsItemListVisible(ctx) {
		t.Fatal("item should be hidden from listings outside its windows")
	}
	if !IsItemDirectlyAccessible(ctx) {
		t.Fatal("deep link should survive outside opening hours")
	}
}

func TestCategoryReactivationGrace(t *testing.T) {
	ctx := baseContext()
	ctx.Category.Active = false
	ctx.Category.ReactivateOn = "2024-01-01"
	if !IsItemListVisible(ctx) {
		t.Fatal("category with a past reactivation date should count as active")
	}

	ctx.Category.ReactivateOn = "2099-01-01"
	if IsItemListVisible(ctx) {
		t.Fatal("category with a future reactivation date should block listing")
	}
	if IsItemDirectlyAccessible(ctx) {
		t.Fatal("deactivated category should block deep links too")
	}
}

func TestMainCategoryGates(t *testing.T) {
	ctx := baseContext()
	ctx.MainCategory.Active = false
	if IsItemListVisible(ctx) {
		t.Fatal("inactive main category should block listing")
	}
	if IsItemDirectlyAccessible(ctx) {
		t.Fatal("inactive main category should block deep links")
	}
}

func TestMainCategoryScheduleGate(t *testing.T) {
	ctx := baseContext()
	ctx.MainCategorySchedule = &models.WeeklySchedule{
		OwnerID: "main-1",
		Timeslots: map[string]models.DaySlots{
			"Sunday": {Slot1Start: "09:00", Slot1End: "17:00"},
		},
	}
	if IsItemListVisible(ctx) {
		t.Fatal("main-category schedule closed today should block listing")
	}
	if !IsItemDirectlyAccessible(ctx) {
		t.Fatal("schedules must not affect deep links")
	}
}

func TestSubcategoryHardActive(t *testing.T) {
	ctx := baseContext()
	ctx.Item.SubcategoryID = "sub-1"
	ctx.Subcategory = &models.Subcategory{ID: "sub-1", Name: "Vegan", CategoryID: "cat-1", Active: false, ReactivateOn: "2024-01-01"}

	// No reactivation grace for subcategories: the past date doesn't help.
	if IsItemListVisible(ctx) {
		t.Fatal("inactive subcategory blocks listing even with a past reactivation date")
	}
	if IsItemDirectlyAccessible(ctx) {
		t.Fatal("inactive subcategory blocks deep links")
	}

	ctx.Subcategory.Active = true
	if !IsItemListVisible(ctx) {
		t.Fatal("active subcategory should pass the gate")
	}
}

func TestSubcategoryAddressedByName(t *testing.T) {
	ctx := baseContext()
	ctx.Item.SubcategoryName = "Vegan"
	ctx.Subcategory = &models.Subcategory{ID: "sub-1", Name: "Vegan", CategoryID: "cat-1", Active: true}
	if !IsItemListVisible(ctx) {
		t.Fatal("legacy name-addressed subcategory should resolve")
	}

	// Pointing at a subcategory that was never loaded fails the gate.
	ctx.Subcategory = nil
	if IsItemListVisible(ctx) {
		t.Fatal("declared but unresolved subcategory should block listing")
	}
}

func TestNoSubcategoryIsVacuouslyTrue(t *testing.T) {
	ctx := baseContext()
	ctx.Subcategory = &models.Subcategory{ID: "sub-1", Name: "Vegan", Active: false}
	// The item declares no subcategory, so the inactive record is irrelevant.
	if !IsItemListVisible(ctx) {
		t.Fatal("items without a subcategory skip the subcategory gate")
	}
}

func TestSubcategoryScheduleGate(t *testing.T) {
	ctx := baseContext()
	ctx.Item.SubcategoryID = "sub-1"
	ctx.Subcategory = &models.Subcategory{ID: "sub-1", Name: "Vegan", CategoryID: "cat-1", Active: true}
	ctx.SubcategorySchedule = &models.WeeklySchedule{
		OwnerID: "sub-1",
		Timeslots: map[string]models.DaySlots{
			"Monday": {Slot1Start: "18:00", Slot1End: "22:00"},
		},
	}
	// Noon on a Monday is outside the 18:00-22:00 window.
	if IsItemListVisible(ctx) {
		t.Fatal("closed subcategory schedule should block listing")
	}
	if !IsItemDirectlyAccessible(ctx) {
		t.Fatal("subcategory schedule must not affect deep links")
	}
}

func TestMissingCategoryRecord(t *testing.T) {
	ctx := baseContext()
	ctx.Category = nil
	if IsItemListVisible(ctx) {
		t.Fatal("an item whose category record is missing cannot be listed")
	}
	// Deep links only check records that are present.
	if !IsItemDirectlyAccessible(ctx) {
		t.Fatal("deep link should pass when no category record exists to block it")
	}
}

package catalog

import (
	"time"

	"savora/models"
)

// VisibilityContext bundles one item's slice of the hierarchy snapshot
// plus the evaluation instant. Nil pointers mean the record does not
// exist; for schedules that reads as "no restriction configured".
type VisibilityContext struct {
	Item         models.Item
	Category     *models.Category
	MainCategory *models.MainCategory
	Subcategory  *models.Subcategory

	MainCategorySchedule *models.WeeklySchedule
	CategorySchedule     *models.WeeklySchedule
	SubcategorySchedule  *models.WeeklySchedule
	ItemSchedule         *models.ItemSchedule

	// Day is the capitalized English weekday name; Minutes is minutes
	// since local midnight. Now drives the reactivation date comparison.
	Day     string
	Minutes int
	Now     time.Time
}

// hasSubcategory reports whether the item declares a subcategory under
// either historical addressing scheme (id or literal name).
func (ctx *VisibilityContext) hasSubcategory() bool {
	return ctx.Item.SubcategoryID != "" || ctx.Item.SubcategoryName != ""
}

// subcategoryMatches reports whether the given subcategory record is the
// one the item points at, by id or by name.
func (ctx *VisibilityContext) subcategoryMatches(sub *models.Subcategory) bool {
	if sub == nil {
		return false
	}
	if ctx.Item.SubcategoryID != "" && ctx.Item.SubcategoryID == sub.ID {
		return true
	}
	return ctx.Item.SubcategoryName != "" && ctx.Item.SubcategoryName == sub.Name
}

// IsItemListVisible decides whether an item appears in browse/listing
// views. Four gates, short-circuit AND, most restrictive wins:
//
//  1. the item's own active flag (hard block, no schedule can override);
//  2. category + main category active-or-reactivated, and both their
//     weekly schedules open;
//  3. if the item declares a subcategory: that subcategory hard-active,
//     its parent category active-or-reactivated, and its schedule open;
//  4. the item's own weekly schedule open.
func IsItemListVisible(ctx *VisibilityContext) bool {
	if !ctx.Item.Active {
		return false
	}
	if !categoryGateOpen(ctx) {
		return false
	}
	if !subcategoryGateOpen(ctx) {
		return false
	}
	return IsItemScheduleOpen(ctx.ItemSchedule, ctx.Day, ctx.Minutes)
}

// IsItemDirectlyAccessible decides deep-link access. Activation gates
// only: weekly schedules are deliberately not consulted, so a saved link
// keeps working outside opening hours but never resurrects a deactivated
// item or branch.
func IsItemDirectlyAccessible(ctx *VisibilityContext) bool {
	if !ctx.Item.Active {
		return false
	}
	if ctx.Category != nil && !IsEntityActive(ctx.Category.Active, ctx.Category.ReactivateOn, ctx.Now) {
		return false
	}
	if ctx.MainCategory != nil && !IsEntityActive(ctx.MainCategory.Active, ctx.MainCategory.ReactivateOn, ctx.Now) {
		return false
	}
	if ctx.hasSubcategory() {
		if !ctx.subcategoryMatches(ctx.Subcategory) {
			return false
		}
		if !ctx.Subcategory.Active {
			return false
		}
	}
	return true
}

func categoryGateOpen(ctx *VisibilityContext) bool {
	if ctx.Category == nil || !IsEntityActive(ctx.Category.Active, ctx.Category.ReactivateOn, ctx.Now) {
		return false
	}
	if ctx.MainCategory == nil || !IsEntityActive(ctx.MainCategory.Active, ctx.MainCategory.ReactivateOn, ctx.Now) {
		return false
	}
	if !IsScheduleOpen(ctx.MainCategorySchedule, ctx.Day, ctx.Minutes) {
		return false
	}
	return IsScheduleOpen(ctx.CategorySchedule, ctx.Day, ctx.Minutes)
}

// subcategoryGateOpen is vacuously true when the item declares no
// subcategory. Subcategories get no reactivation grace: Active only.
func subcategoryGateOpen(ctx *VisibilityContext) bool {
	if !ctx.hasSubcategory() {
		return true
	}
	if !ctx.subcategoryMatches(ctx.Subcategory) {
		return false
	}
	if !ctx.Subcategory.Active {
		return false
	}
	if ctx.Category == nil || !IsEntityActive(ctx.Category.Active, ctx.Category.ReactivateOn, ctx.Now) {
		return false
	}
	return IsScheduleOpen(ctx.SubcategorySchedule, ctx.Day, ctx.Minutes)
}

// DayAndMinutes derives the weekday name and minutes-since-midnight the
// visibility predicates expect from a local time.
func DayAndMinutes(t time.Time) (string, int) {
	return t.Weekday().String(), t.Hour()*60 + t.Minute()
}

package catalog

import (
	"fmt"
	"testing"
	"time"

	"savora/models"
)

// memorySource is an in-memory Source for exercising the browse service.
type memorySource struct {
	mains []models.MainCategory
	cats  []models.Category
	subs  []models.Subcategory
	items []models.Item

	mainScheds map[string]*models.WeeklySchedule
	catScheds  map[string]*models.WeeklySchedule
	subScheds  map[string]*models.WeeklySchedule
	itemScheds map[string]*models.ItemSchedule
}

func (m *memorySource) GetMainCategories() ([]models.MainCategory, error) { return m.mains, nil }
func (m *memorySource) GetCategories() ([]models.Category, error)         { return m.cats, nil }
func (m *memorySource) GetSubcategories() ([]models.Subcategory, error)   { return m.subs, nil }
func (m *memorySource) GetItems() ([]models.Item, error)                  { return m.items, nil }

func (m *memorySource) GetItemByID(id string) (*models.Item, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, fmt.Errorf("item %s: no documents in result", id)
}

func (m *memorySource) GetMainCategorySchedule(id string) (*models.WeeklySchedule, error) {
	return m.mainScheds[id], nil
}
func (m *memorySource) GetCategorySchedule(id string) (*models.WeeklySchedule, error) {
	return m.catScheds[id], nil
}
func (m *memorySource) GetSubcategorySchedule(id string) (*models.WeeklySchedule, error) {
	return m.subScheds[id], nil
}
func (m *memorySource) GetItemSchedule(id string) (*models.ItemSchedule, error) {
	return m.itemScheds[id], nil
}

func newMemorySource() *memorySource {
	return &memorySource{
		mains: []models.MainCategory{{ID: "main-1", Name: "Food", Active: true}},
		cats:  []models.Category{{ID: "cat-1", Name: "Pizza", MainCategoryID: "main-1", Active: true}},
		subs:  []models.Subcategory{{ID: "sub-1", Name: "Vegan", CategoryID: "cat-1", Active: true}},
		items: []models.Item{
			{ID: "item-1", Name: "Margherita", CategoryID: "cat-1", Active: true},
			{ID: "item-2", Name: "Calzone", CategoryID: "cat-1", Active: false},
		},
		mainScheds: map[string]*models.WeeklySchedule{},
		catScheds:  map[string]*models.WeeklySchedule{},
		subScheds:  map[string]*models.WeeklySchedule{},
		itemScheds: map[string]*models.ItemSchedule{},
	}
}

func mondayNoon() time.Time {
	return time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
}

func TestVisibleItemsFiltersInactive(t *testing.T) {
	src := newMemorySource()
	svc := &DefaultBrowseService{Repo: src, Now: mondayNoon}

	items, err := svc.VisibleItems()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "item-1" {
		t.Fatalf("expected only the active item, got %+v", items)
	}
}

func TestVisibleItemsRespectsItemSchedule(t *testing.T) {
	src := newMemorySource()
	src.itemScheds["item-1"] = &models.ItemSchedule{
		ItemID: "item-1",
		Timeslots: map[string][]models.ItemWindow{
			"Tuesday": {{Start: "09:00", End: "17:00"}},
		},
	}
	svc := &DefaultBrowseService{Repo: src, Now: mondayNoon}

	items, err := svc.VisibleItems()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no visible items on a closed day, got %+v", items)
	}

	// The same item still resolves through a deep link.
	item, err := svc.AccessibleItem("item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item == nil {
		t.Fatal("deep link should bypass the schedule restriction")
	}
}

func TestAccessibleItemInactive(t *testing.T) {
	src := newMemorySource()
	svc := &DefaultBrowseService{Repo: src, Now: mondayNoon}

	item, err := svc.AccessibleItem("item-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item != nil {
		t.Fatalf("inactive item must not resolve through a deep link, got %+v", item)
	}
}

func TestAccessibleItemUnknownID(t *testing.T) {
	src := newMemorySource()
	svc := &DefaultBrowseService{Repo: src, Now: mondayNoon}

	if _, err := svc.AccessibleItem("nope"); err == nil {
		t.Fatal("expected an error for an unknown item id")
	}
}

func TestVisibleItemsCategoryScheduleCached(t *testing.T) {
	src := newMemorySource()
	src.items = append(src.items, models.Item{ID: "item-3", Name: "Quattro", CategoryID: "cat-1", Active: true})
	src.catScheds["cat-1"] = &models.WeeklySchedule{
		OwnerID: "cat-1",
		Timeslots: map[string]models.DaySlots{
			"Monday": {Slot1Start: "09:00", Slot1End: "17:00"},
		},
	}
	svc := &DefaultBrowseService{Repo: src, Now: mondayNoon}

	items, err := svc.VisibleItems()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected both active items inside the category window, got %+v", items)
	}
}

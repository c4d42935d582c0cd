package catalog

import (
	"fmt"
	"time"

	"savora/models"
)

// Source is the slice of the catalog repository the browse service needs.
// Schedule getters return nil, nil when no record is configured.
type Source interface {
	GetMainCategories() ([]models.MainCategory, error)
	GetCategories() ([]models.Category, error)
	GetSubcategories() ([]models.Subcategory, error)
	GetItems() ([]models.Item, error)
	GetItemByID(id string) (*models.Item, error)
	GetMainCategorySchedule(ownerID string) (*models.WeeklySchedule, error)
	GetCategorySchedule(ownerID string) (*models.WeeklySchedule, error)
	GetSubcategorySchedule(ownerID string) (*models.WeeklySchedule, error)
	GetItemSchedule(itemID string) (*models.ItemSchedule, error)
}

// BrowseService exposes the customer-facing catalog reads.
type BrowseService interface {
	// VisibleItems returns the items that pass the listing predicate right now.
	VisibleItems() ([]models.Item, error)
	// AccessibleItem resolves a deep link: the item when it passes the
	// direct-access predicate, nil when it exists but is inaccessible.
	AccessibleItem(id string) (*models.Item, error)
}

// DefaultBrowseService implements BrowseService over a catalog Source.
// Now is injectable for tests and defaults to time.Now.
type DefaultBrowseService struct {
	Repo Source
	Now  func() time.Time
}

func (s *DefaultBrowseService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// snapshot is one fetch of the hierarchy, indexed for context assembly.
type snapshot struct {
	mainsByID  map[string]*models.MainCategory
	catsByID   map[string]*models.Category
	subsByID   map[string]*models.Subcategory
	subsByName map[string]*models.Subcategory

	weeklyCache map[string]*models.WeeklySchedule
}

func (s *DefaultBrowseService) loadSnapshot() (*snapshot, error) {
	mains, err := s.Repo.GetMainCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load main categories: %w", err)
	}
	cats, err := s.Repo.GetCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	subs, err := s.Repo.GetSubcategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load subcategories: %w", err)
	}

	snap := &snapshot{
		mainsByID:   make(map[string]*models.MainCategory, len(mains)),
		catsByID:    make(map[string]*models.Category, len(cats)),
		subsByID:    make(map[string]*models.Subcategory, len(subs)),
		subsByName:  make(map[string]*models.Subcategory, len(subs)),
		weeklyCache: make(map[string]*models.WeeklySchedule),
	}
	for i := range mains {
		snap.mainsByID[mains[i].ID] = &mains[i]
	}
	for i := range cats {
		snap.catsByID[cats[i].ID] = &cats[i]
	}
	for i := range subs {
		snap.subsByID[subs[i].ID] = &subs[i]
		snap.subsByName[subs[i].Name] = &subs[i]
	}
	return snap, nil
}

// contextFor assembles the visibility context for one item against the
// snapshot. Schedule lookups are cached per owner for the scan.
func (s *DefaultBrowseService) contextFor(item models.Item, snap *snapshot, now time.Time) (*VisibilityContext, error) {
	day, minutes := DayAndMinutes(now)
	ctx := &VisibilityContext{
		Item:    item,
		Day:     day,
		Minutes: minutes,
		Now:     now,
	}

	ctx.Category = snap.catsByID[item.CategoryID]
	if ctx.Category != nil {
		ctx.MainCategory = snap.mainsByID[ctx.Category.MainCategoryID]

		sched, err := s.weeklySchedule(snap, "cat:"+ctx.Category.ID, s.Repo.GetCategorySchedule, ctx.Category.ID)
		if err != nil {
			return nil, err
		}
		ctx.CategorySchedule = sched
	}
	if ctx.MainCategory != nil {
		sched, err := s.weeklySchedule(snap, "main:"+ctx.MainCategory.ID, s.Repo.GetMainCategorySchedule, ctx.MainCategory.ID)
		if err != nil {
			return nil, err
		}
		ctx.MainCategorySchedule = sched
	}

	// Resolve the subcategory under either addressing scheme.
	if item.SubcategoryID != "" {
		ctx.Subcategory = snap.subsByID[item.SubcategoryID]
	}
	if ctx.Subcategory == nil && item.SubcategoryName != "" {
		ctx.Subcategory = snap.subsByName[item.SubcategoryName]
	}
	if ctx.Subcategory != nil {
		sched, err := s.weeklySchedule(snap, "sub:"+ctx.Subcategory.ID, s.Repo.GetSubcategorySchedule, ctx.Subcategory.ID)
		if err != nil {
			return nil, err
		}
		ctx.SubcategorySchedule = sched
	}

	itemSched, err := s.Repo.GetItemSchedule(item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item schedule: %w", err)
	}
	ctx.ItemSchedule = itemSched
	return ctx, nil
}

func (s *DefaultBrowseService) weeklySchedule(snap *snapshot, key string, get func(string) (*models.WeeklySchedule, error), ownerID string) (*models.WeeklySchedule, error) {
	if sched, ok := snap.weeklyCache[key]; ok {
		return sched, nil
	}
	sched, err := get(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule for %s: %w", ownerID, err)
	}
	snap.weeklyCache[key] = sched
	return sched, nil
}

func (s *DefaultBrowseService) VisibleItems() ([]models.Item, error) {
	items, err := s.Repo.GetItems()
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	snap, err := s.loadSnapshot()
	if err != nil {
		return nil, err
	}

	now := s.now()
	visible := []models.Item{}
	for _, item := range items {
		ctx, err := s.contextFor(item, snap, now)
		if err != nil {
			return nil, err
		}
		if IsItemListVisible(ctx) {
			visible = append(visible, item)
		}
	}
	return visible, nil
}

func (s *DefaultBrowseService) AccessibleItem(id string) (*models.Item, error) {
	item, err := s.Repo.GetItemByID(id)
	if err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot()
	if err != nil {
		return nil, err
	}
	ctx, err := s.contextFor(*item, snap, s.now())
	if err != nil {
		return nil, err
	}
	if !IsItemDirectlyAccessible(ctx) {
		return nil, nil
	}
	return item, nil
}

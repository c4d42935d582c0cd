package catalogRepo

import (
	"savora/models"
)

// CatalogRepository defines data access for the four-level catalog
// hierarchy and its weekly schedule records.
//
// The list methods perform the lazy reactivation write-back: any record
// whose reactivateOn date has passed is persisted as active before the
// results are returned. The write is idempotent and best-effort; a
// failure only means the record is reconsidered on the next read.
type CatalogRepository interface {
	GetMainCategories() ([]models.MainCategory, error)
	GetCategories() ([]models.Category, error)
	GetSubcategories() ([]models.Subcategory, error)
	GetItems() ([]models.Item, error)
	GetItemByID(id string) (*models.Item, error)

	CreateMainCategory(mc *models.MainCategory) error
	CreateCategory(c *models.Category) error
	CreateSubcategory(sc *models.Subcategory) error
	CreateItem(item *models.Item) error

	UpdateMainCategory(mc *models.MainCategory) error
	UpdateCategory(c *models.Category) error
	UpdateSubcategory(sc *models.Subcategory) error
	UpdateItem(item *models.Item) error

	DeleteMainCategory(id string) error
	DeleteCategory(id string) error
	DeleteSubcategory(id string) error
	DeleteItem(id string) error

	// Schedules. A nil result with nil error means no schedule record is
	// configured for that owner, which the visibility engine reads as
	// "always open".
	GetMainCategorySchedule(ownerID string) (*models.WeeklySchedule, error)
	GetCategorySchedule(ownerID string) (*models.WeeklySchedule, error)
	GetSubcategorySchedule(ownerID string) (*models.WeeklySchedule, error)
	GetItemSchedule(itemID string) (*models.ItemSchedule, error)

	UpsertMainCategorySchedule(s *models.WeeklySchedule) error
	UpsertCategorySchedule(s *models.WeeklySchedule) error
	UpsertSubcategorySchedule(s *models.WeeklySchedule) error
	UpsertItemSchedule(s *models.ItemSchedule) error

	DeleteMainCategorySchedule(ownerID string) error
	DeleteCategorySchedule(ownerID string) error
	DeleteSubcategorySchedule(ownerID string) error
	DeleteItemSchedule(itemID string) error
}

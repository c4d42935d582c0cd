package zoneRepo

import (
	"savora/models"
)

// ZoneRepository defines methods for radius-zone data access.
type ZoneRepository interface {
	// GetByID retrieves a zone by its unique ID.
	GetByID(id string) (*models.RadiusZone, error)
	// GetAll retrieves all zones ordered by priority.
	GetAll() ([]models.RadiusZone, error)
	// GetActive retrieves active zones ordered by priority. The slice
	// order is the matching tie-break and must be preserved by callers.
	GetActive() ([]models.RadiusZone, error)
	// Create inserts a new zone record.
	Create(zone *models.RadiusZone) error
	// Update modifies an existing zone record.
	Update(zone *models.RadiusZone) error
	// Delete removes a zone record by its ID.
	Delete(id string) error
}

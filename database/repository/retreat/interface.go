package retreatRepo

import (
	"veranera/models"
)

// RetreatRepository persists retreat documents with their embedded room
// types and extra activities.
type RetreatRepository interface {
	Create(retreat *models.Retreat) error
	Update(retreat *models.Retreat) error
	Delete(id string) error

	// GetByID / GetBySlug return nil when the retreat does not exist.
	GetByID(id string) (*models.Retreat, error)
	GetBySlug(slug string) (*models.Retreat, error)

	// GetByRoomTypeID returns the retreat embedding the given room type,
	// or nil if no retreat does.
	GetByRoomTypeID(roomTypeID string) (*models.Retreat, error)

	// GetAll returns every retreat; GetPublished only the live ones.
	GetAll() ([]models.Retreat, error)
	GetPublished() ([]models.Retreat, error)

	SetPublished(slug string, published bool) error
}

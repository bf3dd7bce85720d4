package retreat

import (
	"context"
	"errors"

	"veranera/models"
)

// Sentinel errors for the retreat catalogue.
var (
	ErrNotFound  = errors.New("retreat not found")
	ErrSlugTaken = errors.New("a retreat with this slug already exists")
	ErrInvalid   = errors.New("slug and title are required")
)

// RetreatService manages the retreat catalogue: public reads (cached) and
// admin mutations, which invalidate the cache so readers never see stale
// catalogue entries.
type RetreatService interface {
	// Public reads.
	GetPublished(ctx context.Context) ([]models.Retreat, error)
	GetBySlug(ctx context.Context, slug string) (*models.Retreat, error)

	// Admin operations.
	GetAll(ctx context.Context) ([]models.Retreat, error)
	Create(ctx context.Context, retreat *models.Retreat) error
	Update(ctx context.Context, slug string, retreat *models.Retreat) (*models.Retreat, error)
	Delete(ctx context.Context, slug string) error
	SetPublished(ctx context.Context, slug string, published bool) error
}

package retreat

import (
	"context"
	"fmt"
	"strings"

	retreatRepo "veranera/database/repository/retreat"
	"veranera/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultRetreatService is the production implementation. Cache may be
// nil, in which case every read goes to the repository.
type DefaultRetreatService struct {
	Repo   retreatRepo.RetreatRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

func (s *DefaultRetreatService) GetPublished(ctx context.Context) ([]models.Retreat, error) {
	if cached, ok := s.cachedList(ctx); ok {
		return cached, nil
	}
	retreats, err := s.Repo.GetPublished()
	if err != nil {
		return nil, fmt.Errorf("failed to list published retreats: %w", err)
	}
	s.cacheList(ctx, retreats)
	return retreats, nil
}

func (s *DefaultRetreatService) GetBySlug(ctx context.Context, slug string) (*models.Retreat, error) {
	if cached, ok := s.cachedRetreat(ctx, slug); ok {
		return cached, nil
	}
	retreat, err := s.Repo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load retreat %s: %w", slug, err)
	}
	if retreat == nil {
		return nil, ErrNotFound
	}
	s.cacheRetreat(ctx, retreat)
	return retreat, nil
}

func (s *DefaultRetreatService) GetAll(ctx context.Context) ([]models.Retreat, error) {
	retreats, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list retreats: %w", err)
	}
	return retreats, nil
}

// Create validates and persists a new retreat, assigning ids to the
// retreat and its embedded room types and extras.
func (s *DefaultRetreatService) Create(ctx context.Context, retreat *models.Retreat) error {
	retreat.Slug = strings.TrimSpace(retreat.Slug)
	retreat.Title = strings.TrimSpace(retreat.Title)
	if retreat.Slug == "" || retreat.Title == "" {
		return ErrInvalid
	}

	existing, err := s.Repo.GetBySlug(retreat.Slug)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if existing != nil {
		return ErrSlugTaken
	}

	retreat.ID = uuid.New().String()
	assignEmbeddedIDs(retreat)

	if err := s.Repo.Create(retreat); err != nil {
		return fmt.Errorf("failed to create retreat: %w", err)
	}
	s.invalidate(ctx, retreat.Slug)
	s.Logger.Info("retreat created", zap.String("slug", retreat.Slug))
	return nil
}

// Update replaces a retreat's content while keeping its identity. Room
// types that already carry an id keep it, so existing bookings stay
// valid; new ones get fresh ids.
func (s *DefaultRetreatService) Update(ctx context.Context, slug string, updated *models.Retreat) (*models.Retreat, error) {
	current, err := s.Repo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load retreat %s: %w", slug, err)
	}
	if current == nil {
		return nil, ErrNotFound
	}

	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	if strings.TrimSpace(updated.Slug) == "" {
		updated.Slug = current.Slug
	}
	if strings.TrimSpace(updated.Title) == "" {
		return nil, ErrInvalid
	}
	assignEmbeddedIDs(updated)

	if err := s.Repo.Update(updated); err != nil {
		return nil, fmt.Errorf("failed to update retreat %s: %w", slug, err)
	}
	s.invalidate(ctx, slug)
	if updated.Slug != slug {
		s.invalidate(ctx, updated.Slug)
	}
	s.Logger.Info("retreat updated", zap.String("slug", updated.Slug))
	return updated, nil
}

func (s *DefaultRetreatService) Delete(ctx context.Context, slug string) error {
	current, err := s.Repo.GetBySlug(slug)
	if err != nil {
		return fmt.Errorf("failed to load retreat %s: %w", slug, err)
	}
	if current == nil {
		return ErrNotFound
	}
	if err := s.Repo.Delete(current.ID); err != nil {
		return fmt.Errorf("failed to delete retreat %s: %w", slug, err)
	}
	s.invalidate(ctx, slug)
	s.Logger.Info("retreat deleted", zap.String("slug", slug))
	return nil
}

func (s *DefaultRetreatService) SetPublished(ctx context.Context, slug string, published bool) error {
	current, err := s.Repo.GetBySlug(slug)
	if err != nil {
		return fmt.Errorf("failed to load retreat %s: %w", slug, err)
	}
	if current == nil {
		return ErrNotFound
	}
	if err := s.Repo.SetPublished(slug, published); err != nil {
		return fmt.Errorf("failed to publish retreat %s: %w", slug, err)
	}
	s.invalidate(ctx, slug)
	return nil
}

// assignEmbeddedIDs gives ids to embedded room types and extras that do
// not have one yet.
func assignEmbeddedIDs(retreat *models.Retreat) {
	for i := range retreat.RoomTypes {
		if retreat.RoomTypes[i].ID == "" {
			retreat.RoomTypes[i].ID = uuid.New().String()
		}
	}
	for i := range retreat.ExtraActivities {
		if retreat.ExtraActivities[i].ID == "" {
			retreat.ExtraActivities[i].ID = uuid.New().String()
		}
	}
}

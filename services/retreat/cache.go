package retreat

import (
	"context"
	"encoding/json"
	"time"

	"veranera/models"

	"go.uber.org/zap"
)

const (
	cacheKeyPublished = "retreats:published"
	cacheKeyPrefix    = "retreat:slug:"
	cacheTTL          = 5 * time.Minute
)

// Catalogue reads are cached; availability never is. Cache failures are
// logged and treated as misses.

func (s *DefaultRetreatService) cachedList(ctx context.Context) ([]models.Retreat, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, cacheKeyPublished).Result()
	if err != nil {
		return nil, false
	}
	var retreats []models.Retreat
	if err := json.Unmarshal([]byte(data), &retreats); err != nil {
		return nil, false
	}
	return retreats, true
}

func (s *DefaultRetreatService) cacheList(ctx context.Context, retreats []models.Retreat) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(retreats)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKeyPublished, data, cacheTTL).Err(); err != nil {
		s.Logger.Warn("retreat cache: failed to store list", zap.Error(err))
	}
}

func (s *DefaultRetreatService) cachedRetreat(ctx context.Context, slug string) (*models.Retreat, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, cacheKeyPrefix+slug).Result()
	if err != nil {
		return nil, false
	}
	var retreat models.Retreat
	if err := json.Unmarshal([]byte(data), &retreat); err != nil {
		return nil, false
	}
	return &retreat, true
}

func (s *DefaultRetreatService) cacheRetreat(ctx context.Context, retreat *models.Retreat) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(retreat)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKeyPrefix+retreat.Slug, data, cacheTTL).Err(); err != nil {
		s.Logger.Warn("retreat cache: failed to store retreat", zap.Error(err))
	}
}

// invalidate drops the cached list and the cached detail for a slug after
// any admin mutation.
func (s *DefaultRetreatService) invalidate(ctx context.Context, slug string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, cacheKeyPublished, cacheKeyPrefix+slug).Err(); err != nil {
		s.Logger.Warn("retreat cache: failed to invalidate", zap.String("slug", slug), zap.Error(err))
	}
}

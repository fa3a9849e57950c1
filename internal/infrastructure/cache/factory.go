package cache

import (
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewFacetCache creates a facet cache backed by Redis, falling back to the
// in-memory cache when Redis is unavailable. In-memory caches do not share
// state across process instances.
func NewFacetCache(cfg config.RedisConfig, logger *zap.Logger) FacetCache {
	cache, err := NewRedisFacetCache(cfg, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory facet cache",
			zap.Error(err),
		)
		return NewInMemoryFacetCache()
	}
	logger.Info("using Redis facet cache")
	return cache
}

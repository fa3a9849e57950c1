package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/config"
	"go.uber.org/zap"
)

// FacetCache caches serialized facet count responses. Values are opaque
// bytes; the storefront service owns the encoding.
type FacetCache interface {
	// Get returns the cached payload and whether it was found
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Invalidate drops all cached facet payloads
	Invalidate(ctx context.Context) error
	Close() error
}

const facetKeyPrefix = "catalog:facets:"

const scanBatchSize = 100

// RedisFacetCache implements FacetCache using Redis
type RedisFacetCache struct {
	client     *redis.Client
	ownsClient bool
	logger     *zap.Logger
}

// NewRedisFacetCache creates a new Redis-based facet cache
func NewRedisFacetCache(cfg config.RedisConfig, logger *zap.Logger) (*RedisFacetCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisFacetCache{
		client:     client,
		ownsClient: true,
		logger:     logger,
	}, nil
}

// NewRedisFacetCacheWithClient creates a cache with an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisFacetCacheWithClient(client *redis.Client, logger *zap.Logger) *RedisFacetCache {
	return &RedisFacetCache{
		client: client,
		logger: logger,
	}
}

// Get retrieves a cached payload
func (c *RedisFacetCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, facetKeyPrefix+key).Bytes()
	if err == redis.Nil {
		c.logger.Debug("facet cache miss", zap.String("key", key))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get facets from cache: %w", err)
	}
	c.logger.Debug("facet cache hit", zap.String("key", key))
	return data, true, nil
}

// Set stores a payload with a TTL
func (c *RedisFacetCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, facetKeyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set facets in cache: %w", err)
	}
	return nil
}

// Invalidate drops all cached facet payloads using SCAN to avoid blocking Redis
func (c *RedisFacetCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, facetKeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cache keys: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close releases the Redis client if this cache owns it
func (c *RedisFacetCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}

var _ FacetCache = (*RedisFacetCache)(nil)

package storefront

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/pricing"
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

const facetCacheKey = "sidebar"

// FacetCache caches serialized facet payloads. Satisfied by the Redis and
// in-memory caches in the infrastructure layer.
type FacetCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// FacetConfig holds the facet computation knobs
type FacetConfig struct {
	BrandLimit   int
	CacheTTL     time.Duration
	CacheEnabled bool
}

// FacetService computes the filter sidebar buckets over published website
// items
type FacetService struct {
	queryRepo    catalog.StorefrontQueryRepository
	rangeRepo    catalog.CatalogPriceRangeRepository
	settingsRepo pricing.SettingsRepository
	cache        FacetCache
	config       FacetConfig
	logger       *zap.Logger
}

// NewFacetService creates a new FacetService. The cache may be nil.
func NewFacetService(
	queryRepo catalog.StorefrontQueryRepository,
	rangeRepo catalog.CatalogPriceRangeRepository,
	settingsRepo pricing.SettingsRepository,
	cache FacetCache,
	config FacetConfig,
	logger *zap.Logger,
) *FacetService {
	if config.BrandLimit <= 0 {
		config.BrandLimit = 20
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = 5 * time.Minute
	}
	return &FacetService{
		queryRepo:    queryRepo,
		rangeRepo:    rangeRepo,
		settingsRepo: settingsRepo,
		cache:        cache,
		config:       config,
		logger:       logger,
	}
}

// GetFacets returns the facet buckets for the filter sidebar, served from
// cache when possible. Cache failures degrade to a direct computation.
func (s *FacetService) GetFacets(ctx context.Context) (*FacetsResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "storefront", "get_facets")
	defer span.End()

	if s.cacheEnabled() {
		data, found, err := s.cache.Get(ctx, facetCacheKey)
		if err != nil {
			s.logger.Warn("facet cache read failed", zap.Error(err))
		} else if found {
			var cached FacetsResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				telemetry.SetAttribute(span, "cache_hit", true)
				return &cached, nil
			}
			s.logger.Warn("discarding malformed facet cache entry", zap.Error(err))
		}
	}

	resp, err := s.computeFacets(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if s.cacheEnabled() {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, facetCacheKey, data, s.config.CacheTTL); err != nil {
				s.logger.Warn("facet cache write failed", zap.Error(err))
			}
		}
	}

	return resp, nil
}

// InvalidateCache drops cached facet payloads after catalog writes
func (s *FacetService) InvalidateCache(ctx context.Context) {
	if !s.cacheEnabled() {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("facet cache invalidation failed", zap.Error(err))
	}
}

func (s *FacetService) cacheEnabled() bool {
	return s.cache != nil && s.config.CacheEnabled
}

func (s *FacetService) computeFacets(ctx context.Context) (*FacetsResponse, error) {
	itemGroups, err := s.queryRepo.CountPublishedByItemGroup(ctx)
	if err != nil {
		return nil, err
	}

	brands, err := s.queryRepo.CountPublishedByBrand(ctx, s.config.BrandLimit)
	if err != nil {
		return nil, err
	}

	priceRanges, err := s.priceRangeFacets(ctx)
	if err != nil {
		return nil, err
	}

	offers, err := s.queryRepo.CountPublishedByOfferTitle(ctx)
	if err != nil {
		return nil, err
	}

	badges, err := s.queryRepo.CountPublishedByBadgeType(ctx)
	if err != nil {
		return nil, err
	}

	return &FacetsResponse{
		ItemGroups:  itemGroups,
		Brands:      brands,
		PriceRanges: priceRanges,
		Offers:      offers,
		Badges:      badges,
	}, nil
}

// priceRangeFacets counts published items per enabled price bucket. Bucket
// bounds are half-open: rate >= from, rate < to.
func (s *FacetService) priceRangeFacets(ctx context.Context) ([]PriceRangeFacet, error) {
	ranges, err := s.rangeRepo.FindEnabled(ctx)
	if err != nil {
		return nil, err
	}

	priceList, err := resolveActivePriceList(ctx, s.settingsRepo)
	if err != nil {
		return nil, err
	}

	facets := make([]PriceRangeFacet, 0, len(ranges))
	for _, r := range ranges {
		count, err := s.queryRepo.CountPublishedInPriceRange(ctx, priceList, r.FromAmount, r.ToAmount)
		if err != nil {
			return nil, err
		}
		facets = append(facets, PriceRangeFacet{
			Label:      r.Label,
			FromAmount: r.FromAmount,
			ToAmount:   r.ToAmount,
			Count:      count,
		})
	}
	return facets, nil
}

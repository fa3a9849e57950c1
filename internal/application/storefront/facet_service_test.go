package storefront

import (
	"context"
	"testing"
	"time"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFacetService_GetFacets(t *testing.T) {
	queryRepo := new(MockStorefrontQueryRepository)
	rangeRepo := new(MockPriceRangeRepository)
	settingsRepo := new(MockSettingsRepository)

	queryRepo.On("CountPublishedByItemGroup", mock.Anything).Return([]catalog.FacetCount{
		{Label: "Products", Count: 12},
		{Label: "Services", Count: 3},
	}, nil)
	queryRepo.On("CountPublishedByBrand", mock.Anything, 20).Return([]catalog.FacetCount{
		{Label: "Acme", Count: 7},
	}, nil)
	queryRepo.On("CountPublishedByOfferTitle", mock.Anything).Return([]catalog.FacetCount{}, nil)
	queryRepo.On("CountPublishedByBadgeType", mock.Anything).Return([]catalog.FacetCount{
		{Label: "New", Count: 4},
	}, nil)

	from := decimalPtr("0")
	to := decimalPtr("100")
	priceRange, err := catalog.NewCatalogPriceRange("Under 100", from, to, 1)
	require.NoError(t, err)
	rangeRepo.On("FindEnabled", mock.Anything).Return([]catalog.CatalogPriceRange{*priceRange}, nil)

	// no settings row bootstrapped yet, fall back to the standard price list
	settingsRepo.On("Get", mock.Anything).Return(nil, shared.ErrNotFound)
	queryRepo.On("CountPublishedInPriceRange", mock.Anything, "Standard Selling", from, to).
		Return(int64(5), nil)

	svc := NewFacetService(queryRepo, rangeRepo, settingsRepo, nil, FacetConfig{}, zap.NewNop())

	resp, err := svc.GetFacets(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.ItemGroups, 2)
	assert.Equal(t, "Acme", resp.Brands[0].Label)
	require.Len(t, resp.PriceRanges, 1)
	assert.Equal(t, "Under 100", resp.PriceRanges[0].Label)
	assert.Equal(t, int64(5), resp.PriceRanges[0].Count)
	assert.Equal(t, "New", resp.Badges[0].Label)

	queryRepo.AssertExpectations(t)
	rangeRepo.AssertExpectations(t)
}

func TestFacetService_GetFacets_ServedFromCache(t *testing.T) {
	queryRepo := new(MockStorefrontQueryRepository)
	rangeRepo := new(MockPriceRangeRepository)
	settingsRepo := new(MockSettingsRepository)
	cache := newFakeFacetCache()

	queryRepo.On("CountPublishedByItemGroup", mock.Anything).Return([]catalog.FacetCount{
		{Label: "Products", Count: 1},
	}, nil).Once()
	queryRepo.On("CountPublishedByBrand", mock.Anything, 20).Return([]catalog.FacetCount{}, nil).Once()
	queryRepo.On("CountPublishedByOfferTitle", mock.Anything).Return([]catalog.FacetCount{}, nil).Once()
	queryRepo.On("CountPublishedByBadgeType", mock.Anything).Return([]catalog.FacetCount{}, nil).Once()
	rangeRepo.On("FindEnabled", mock.Anything).Return([]catalog.CatalogPriceRange{}, nil).Once()
	settingsRepo.On("Get", mock.Anything).Return(nil, shared.ErrNotFound).Once()

	svc := NewFacetService(queryRepo, rangeRepo, settingsRepo, cache,
		FacetConfig{CacheEnabled: true, CacheTTL: time.Minute}, zap.NewNop())

	first, err := svc.GetFacets(context.Background())
	require.NoError(t, err)

	// second call must not hit the repositories again
	second, err := svc.GetFacets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ItemGroups, second.ItemGroups)

	queryRepo.AssertExpectations(t)
}

func TestFacetService_InvalidateCache(t *testing.T) {
	cache := newFakeFacetCache()
	cache.data[facetCacheKey] = []byte(`{}`)

	svc := NewFacetService(new(MockStorefrontQueryRepository), new(MockPriceRangeRepository),
		new(MockSettingsRepository), cache, FacetConfig{CacheEnabled: true}, zap.NewNop())

	svc.InvalidateCache(context.Background())
	assert.Empty(t, cache.data)
	assert.Equal(t, 1, cache.invalidated)
}

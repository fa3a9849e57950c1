package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockItemRepository is a mock implementation of catalog.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByCode(ctx context.Context, code string) (*catalog.Item, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByCodes(ctx context.Context, codes []string) ([]catalog.Item, error) {
	args := m.Called(ctx, codes)
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) FindVariants(ctx context.Context, templateCode string) ([]catalog.Item, error) {
	args := m.Called(ctx, templateCode)
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) VariantCodes(ctx context.Context, templateCode string) ([]string, error) {
	args := m.Called(ctx, templateCode)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) ReplaceBadges(ctx context.Context, itemCode string, badges []catalog.ItemBadge) error {
	args := m.Called(ctx, itemCode, badges)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWebsiteItemRepository is a mock implementation of catalog.WebsiteItemRepository
type MockWebsiteItemRepository struct {
	mock.Mock
}

func (m *MockWebsiteItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.WebsiteItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.WebsiteItem), args.Error(1)
}

func (m *MockWebsiteItemRepository) FindByItemCode(ctx context.Context, itemCode string) (*catalog.WebsiteItem, error) {
	args := m.Called(ctx, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.WebsiteItem), args.Error(1)
}

func (m *MockWebsiteItemRepository) FindByItemCodes(ctx context.Context, itemCodes []string) ([]catalog.WebsiteItem, error) {
	args := m.Called(ctx, itemCodes)
	return args.Get(0).([]catalog.WebsiteItem), args.Error(1)
}

func (m *MockWebsiteItemRepository) FindPublishedByItemCodes(ctx context.Context, itemCodes []string) ([]catalog.WebsiteItem, error) {
	args := m.Called(ctx, itemCodes)
	return args.Get(0).([]catalog.WebsiteItem), args.Error(1)
}

func (m *MockWebsiteItemRepository) ExistsByItemCode(ctx context.Context, itemCode string) (bool, error) {
	args := m.Called(ctx, itemCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockWebsiteItemRepository) FindPublished(ctx context.Context) ([]catalog.WebsiteItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.WebsiteItem), args.Error(1)
}

func (m *MockWebsiteItemRepository) Save(ctx context.Context, item *catalog.WebsiteItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWebsiteItemRepository) SetConsumerDiscount(ctx context.Context, itemCode string, discount decimal.Decimal) error {
	args := m.Called(ctx, itemCode, discount)
	return args.Error(0)
}

func (m *MockWebsiteItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStorefrontQueryRepository is a mock implementation of catalog.StorefrontQueryRepository
type MockStorefrontQueryRepository struct {
	mock.Mock
}

func (m *MockStorefrontQueryRepository) CountPublishedByItemGroup(ctx context.Context) ([]catalog.FacetCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.FacetCount), args.Error(1)
}

func (m *MockStorefrontQueryRepository) CountPublishedByBrand(ctx context.Context, limit int) ([]catalog.FacetCount, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]catalog.FacetCount), args.Error(1)
}

func (m *MockStorefrontQueryRepository) CountPublishedByOfferTitle(ctx context.Context) ([]catalog.FacetCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.FacetCount), args.Error(1)
}

func (m *MockStorefrontQueryRepository) CountPublishedByBadgeType(ctx context.Context) ([]catalog.FacetCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.FacetCount), args.Error(1)
}

func (m *MockStorefrontQueryRepository) CountPublishedInPriceRange(ctx context.Context, priceList string, from, to *decimal.Decimal) (int64, error) {
	args := m.Called(ctx, priceList, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorefrontQueryRepository) SearchPublished(ctx context.Context, q catalog.ListingQuery) ([]catalog.WebsiteItem, int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]catalog.WebsiteItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorefrontQueryRepository) ItemCodesWithPriceBetween(ctx context.Context, priceList string, itemCodes []string, from, to *decimal.Decimal) ([]string, error) {
	args := m.Called(ctx, priceList, itemCodes, from, to)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStorefrontQueryRepository) WebsiteItemIDsWithOffers(ctx context.Context, ids []uuid.UUID, offerTitles []string) ([]uuid.UUID, error) {
	args := m.Called(ctx, ids, offerTitles)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockStorefrontQueryRepository) ItemCodesWithBadges(ctx context.Context, itemCodes []string, badgeTypes []string) ([]string, error) {
	args := m.Called(ctx, itemCodes, badgeTypes)
	return args.Get(0).([]string), args.Error(1)
}

// MockPriceRangeRepository is a mock implementation of catalog.CatalogPriceRangeRepository
type MockPriceRangeRepository struct {
	mock.Mock
}

func (m *MockPriceRangeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.CatalogPriceRange, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CatalogPriceRange), args.Error(1)
}

func (m *MockPriceRangeRepository) FindEnabled(ctx context.Context) ([]catalog.CatalogPriceRange, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.CatalogPriceRange), args.Error(1)
}

func (m *MockPriceRangeRepository) FindAll(ctx context.Context) ([]catalog.CatalogPriceRange, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.CatalogPriceRange), args.Error(1)
}

func (m *MockPriceRangeRepository) Save(ctx context.Context, r *catalog.CatalogPriceRange) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPriceRangeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSettingsRepository is a mock implementation of pricing.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*pricing.StorefrontSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.StorefrontSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *pricing.StorefrontSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockItemPriceRepository is a mock implementation of pricing.ItemPriceRepository
type MockItemPriceRepository struct {
	mock.Mock
}

func (m *MockItemPriceRepository) FindSelling(ctx context.Context, itemCode, priceList string) (*pricing.ItemPrice, error) {
	args := m.Called(ctx, itemCode, priceList)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.ItemPrice), args.Error(1)
}

func (m *MockItemPriceRepository) FindSellingForItems(ctx context.Context, itemCodes []string, priceList string) ([]pricing.ItemPrice, error) {
	args := m.Called(ctx, itemCodes, priceList)
	return args.Get(0).([]pricing.ItemPrice), args.Error(1)
}

func (m *MockItemPriceRepository) Save(ctx context.Context, price *pricing.ItemPrice) error {
	args := m.Called(ctx, price)
	return args.Error(0)
}

// MockInvoiceRepository is a mock implementation of sales.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) QtySoldSince(ctx context.Context, since time.Time) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// MockBinRepository is a mock implementation of inventory.BinRepository
type MockBinRepository struct {
	mock.Mock
}

func (m *MockBinRepository) Qty(ctx context.Context, itemCode, warehouse string) (decimal.Decimal, error) {
	args := m.Called(ctx, itemCode, warehouse)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBinRepository) TotalQtyByItem(ctx context.Context, itemCodes []string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, itemCodes)
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// fakeFacetCache is a tiny in-memory FacetCache for tests
type fakeFacetCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	invalidated int
}

func newFakeFacetCache() *fakeFacetCache {
	return &fakeFacetCache{data: make(map[string][]byte)}
}

func (c *fakeFacetCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.data[key]
	return data, ok, nil
}

func (c *fakeFacetCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	return nil
}

func (c *fakeFacetCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.invalidated++
	return nil
}

// fakeFileStore is a tiny in-memory PublicFileStore for tests
type fakeFileStore struct {
	files map[string]bool
}

func (f *fakeFileStore) Exists(ctx context.Context, fileKey string) (bool, error) {
	return f.files[fileKey], nil
}

func (f *fakeFileStore) PublicURL(fileKey string) string {
	return "https://storage.example.com/" + fileKey
}

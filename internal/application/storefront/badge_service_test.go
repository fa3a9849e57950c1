package storefront

import (
	"context"
	"testing"
	"time"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBadgeService(itemRepo *MockItemRepository, wiRepo *MockWebsiteItemRepository, invRepo *MockInvoiceRepository, binRepo *MockBinRepository) *BadgeService {
	return NewBadgeService(itemRepo, wiRepo, invRepo, binRepo, nil, BadgeConfig{}, zap.NewNop())
}

func publishedWebsiteItem(t *testing.T, item *catalog.Item) catalog.WebsiteItem {
	t.Helper()
	wi, err := catalog.NewWebsiteItemFromItem(item)
	require.NoError(t, err)
	return *wi
}

func TestBadgeService_Recompute_AppliesRules(t *testing.T) {
	itemRepo := new(MockItemRepository)
	wiRepo := new(MockWebsiteItemRepository)
	invRepo := new(MockInvoiceRepository)
	binRepo := new(MockBinRepository)

	// fresh item: gets New; low stock qty 3: gets Low Stock
	item, err := catalog.NewItem("SKU-001", "Widget")
	require.NoError(t, err)
	item.ClearDomainEvents()

	wiRepo.On("FindPublished", mock.Anything).Return([]catalog.WebsiteItem{
		publishedWebsiteItem(t, item),
	}, nil)
	itemRepo.On("FindByCodes", mock.Anything, []string{"SKU-001"}).Return([]catalog.Item{*item}, nil)
	invRepo.On("QtySoldSince", mock.Anything, mock.Anything).Return(map[string]decimal.Decimal{}, nil)
	binRepo.On("TotalQtyByItem", mock.Anything, []string{"SKU-001"}).Return(map[string]decimal.Decimal{
		"SKU-001": decimal.NewFromInt(3),
	}, nil)
	itemRepo.On("ReplaceBadges", mock.Anything, "SKU-001", mock.MatchedBy(func(badges []catalog.ItemBadge) bool {
		types := make(map[string]bool, len(badges))
		for _, b := range badges {
			types[b.BadgeType] = true
		}
		return len(badges) == 2 && types[catalog.BadgeTypeNew] && types[catalog.BadgeTypeLowStock]
	})).Return(nil)

	svc := newBadgeService(itemRepo, wiRepo, invRepo, binRepo)

	stats, err := svc.Recompute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ItemsScanned)
	assert.Equal(t, 1, stats.ItemsUpdated)
	assert.Equal(t, 0, stats.Failures)

	itemRepo.AssertExpectations(t)
}

func TestBadgeService_Recompute_ClearsStaleAutoBadges(t *testing.T) {
	itemRepo := new(MockItemRepository)
	wiRepo := new(MockWebsiteItemRepository)
	invRepo := new(MockInvoiceRepository)
	binRepo := new(MockBinRepository)

	// old item with a stale auto New badge and a manual badge that must survive
	item, err := catalog.NewItem("SKU-OLD", "Old Widget")
	require.NoError(t, err)
	item.ClearDomainEvents()
	item.CreatedAt = time.Now().AddDate(0, -6, 0)
	item.Badges = []catalog.ItemBadge{
		catalog.NewAutoBadge("SKU-OLD", catalog.BadgeTypeNew, 1),
		catalog.NewManualBadge("SKU-OLD", "Clearance", nil, nil, 2),
	}
	item.IsStockItem = false

	wiRepo.On("FindPublished", mock.Anything).Return([]catalog.WebsiteItem{
		publishedWebsiteItem(t, item),
	}, nil)
	itemRepo.On("FindByCodes", mock.Anything, []string{"SKU-OLD"}).Return([]catalog.Item{*item}, nil)
	invRepo.On("QtySoldSince", mock.Anything, mock.Anything).Return(map[string]decimal.Decimal{}, nil)
	binRepo.On("TotalQtyByItem", mock.Anything, []string{"SKU-OLD"}).Return(map[string]decimal.Decimal{}, nil)
	itemRepo.On("ReplaceBadges", mock.Anything, "SKU-OLD", mock.MatchedBy(func(badges []catalog.ItemBadge) bool {
		return len(badges) == 1 && badges[0].BadgeType == "Clearance" && badges[0].Source == catalog.BadgeSourceManual
	})).Return(nil)

	svc := newBadgeService(itemRepo, wiRepo, invRepo, binRepo)

	stats, err := svc.Recompute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ItemsUpdated)

	itemRepo.AssertExpectations(t)
}

func TestBadgeService_Recompute_BestsellerLimit(t *testing.T) {
	itemRepo := new(MockItemRepository)
	wiRepo := new(MockWebsiteItemRepository)
	invRepo := new(MockInvoiceRepository)
	binRepo := new(MockBinRepository)

	svc := NewBadgeService(itemRepo, wiRepo, invRepo, binRepo, nil,
		BadgeConfig{BestsellerLimit: 1}, zap.NewNop())

	invRepo.On("QtySoldSince", mock.Anything, mock.Anything).Return(map[string]decimal.Decimal{
		"SKU-A": decimal.NewFromInt(10),
		"SKU-B": decimal.NewFromInt(90),
	}, nil)

	top, err := svc.bestsellerCodes(context.Background())
	require.NoError(t, err)
	assert.True(t, top["SKU-B"])
	assert.False(t, top["SKU-A"])
}

func TestBadgeService_Recompute_NoPublishedItems(t *testing.T) {
	itemRepo := new(MockItemRepository)
	wiRepo := new(MockWebsiteItemRepository)
	wiRepo.On("FindPublished", mock.Anything).Return([]catalog.WebsiteItem{}, nil)

	svc := newBadgeService(itemRepo, wiRepo, new(MockInvoiceRepository), new(MockBinRepository))

	stats, err := svc.Recompute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RecomputeStats{}, stats)
	itemRepo.AssertNotCalled(t, "FindByCodes", mock.Anything, mock.Anything)
}

func TestBadgeService_GetItemBadges(t *testing.T) {
	itemRepo := new(MockItemRepository)
	wiRepo := new(MockWebsiteItemRepository)

	item, err := catalog.NewItem("SKU-001", "Widget")
	require.NoError(t, err)
	item.ClearDomainEvents()

	yesterday := time.Now().AddDate(0, 0, -1)
	lastWeek := time.Now().AddDate(0, 0, -7)
	expired := catalog.NewManualBadge("SKU-001", "Expired", &lastWeek, &yesterday, 1)
	active := catalog.NewAutoBadge("SKU-001", catalog.BadgeTypeNew, 2)
	item.Badges = []catalog.ItemBadge{expired, active}

	wiRepo.On("FindPublishedByItemCodes", mock.Anything, []string{"SKU-001", "SKU-HIDDEN"}).
		Return([]catalog.WebsiteItem{publishedWebsiteItem(t, item)}, nil)
	itemRepo.On("FindByCodes", mock.Anything, []string{"SKU-001"}).Return([]catalog.Item{*item}, nil)

	svc := newBadgeService(itemRepo, wiRepo, new(MockInvoiceRepository), new(MockBinRepository))

	result, err := svc.GetItemBadges(context.Background(), []string{"SKU-001", "SKU-HIDDEN"})
	require.NoError(t, err)

	require.Len(t, result["SKU-001"], 1, "expired badge must be filtered out")
	assert.Equal(t, catalog.BadgeTypeNew, result["SKU-001"][0].BadgeType)
	assert.Empty(t, result["SKU-HIDDEN"], "unpublished codes map to an empty list")
}

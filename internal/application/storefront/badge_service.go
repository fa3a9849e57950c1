package storefront

import (
	"context"
	"sort"
	"time"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/inventory"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/sales"
	"github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BadgeConfig holds the automatic badge rule thresholds
type BadgeConfig struct {
	NewBadgeDays      int
	BestsellerWindow  time.Duration
	BestsellerLimit   int
	LowStockThreshold int64
}

// BadgeService computes automatic item badges and answers the storefront
// badge query. Only items with a published website item are considered.
type BadgeService struct {
	itemRepo        catalog.ItemRepository
	websiteItemRepo catalog.WebsiteItemRepository
	invoiceRepo     sales.InvoiceRepository
	binRepo         inventory.BinRepository
	cache           FacetCache
	config          BadgeConfig
	logger          *zap.Logger
	now             func() time.Time
}

// NewBadgeService creates a new BadgeService. The cache may be nil.
func NewBadgeService(
	itemRepo catalog.ItemRepository,
	websiteItemRepo catalog.WebsiteItemRepository,
	invoiceRepo sales.InvoiceRepository,
	binRepo inventory.BinRepository,
	cache FacetCache,
	config BadgeConfig,
	logger *zap.Logger,
) *BadgeService {
	if config.NewBadgeDays <= 0 {
		config.NewBadgeDays = 30
	}
	if config.BestsellerWindow <= 0 {
		config.BestsellerWindow = 30 * 24 * time.Hour
	}
	if config.BestsellerLimit <= 0 {
		config.BestsellerLimit = 50
	}
	if config.LowStockThreshold <= 0 {
		config.LowStockThreshold = 5
	}
	return &BadgeService{
		itemRepo:        itemRepo,
		websiteItemRepo: websiteItemRepo,
		invoiceRepo:     invoiceRepo,
		binRepo:         binRepo,
		cache:           cache,
		config:          config,
		logger:          logger,
		now:             time.Now,
	}
}

// RecomputeAll runs a full recompute and reports only the error, for the
// scheduler hook
func (s *BadgeService) RecomputeAll(ctx context.Context) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "badge", "recompute_all")
	defer span.End()

	stats, err := s.Recompute(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	telemetry.SetAttribute(span, "items_scanned", stats.ItemsScanned)
	return nil
}

// Recompute reevaluates the automatic badge rules for every item with a
// published website item. Per-item failures are logged and do not abort the
// run.
func (s *BadgeService) Recompute(ctx context.Context) (RecomputeStats, error) {
	stats := RecomputeStats{}

	published, err := s.websiteItemRepo.FindPublished(ctx)
	if err != nil {
		return stats, err
	}
	if len(published) == 0 {
		return stats, nil
	}

	codes := make([]string, 0, len(published))
	discountByCode := make(map[string]decimal.Decimal, len(published))
	for _, wi := range published {
		codes = append(codes, wi.ItemCode)
		discountByCode[wi.ItemCode] = wi.ConsumerDiscount
	}

	items, err := s.itemRepo.FindByCodes(ctx, codes)
	if err != nil {
		return stats, err
	}

	bestsellers, err := s.bestsellerCodes(ctx)
	if err != nil {
		return stats, err
	}

	stockByCode, err := s.binRepo.TotalQtyByItem(ctx, codes)
	if err != nil {
		return stats, err
	}

	newCutoff := s.now().AddDate(0, 0, -s.config.NewBadgeDays)
	lowStockLimit := decimal.NewFromInt(s.config.LowStockThreshold)

	for i := range items {
		item := &items[i]
		stats.ItemsScanned++

		desired := map[string]bool{
			catalog.BadgeTypeNew:        item.CreatedAt.After(newCutoff),
			catalog.BadgeTypeBestseller: bestsellers[item.Code],
			catalog.BadgeTypeOnSale:     discountByCode[item.Code].IsPositive(),
			catalog.BadgeTypeLowStock:   s.isLowStock(item, stockByCode[item.Code], lowStockLimit),
		}

		changed := false
		for _, badgeType := range catalog.AutoBadgeTypes() {
			if desired[badgeType] {
				changed = item.UpsertAutoBadge(badgeType) || changed
			} else {
				changed = item.ClearAutoBadge(badgeType) || changed
			}
		}
		if !changed {
			continue
		}

		if err := s.itemRepo.ReplaceBadges(ctx, item.Code, item.Badges); err != nil {
			stats.Failures++
			s.logger.Error("failed to rewrite item badges",
				zap.String("item_code", item.Code),
				zap.Error(err),
			)
			continue
		}
		stats.ItemsUpdated++
	}

	if stats.ItemsUpdated > 0 && s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("facet cache invalidation failed after badge recompute", zap.Error(err))
		}
	}

	s.logger.Info("badge recompute finished",
		zap.Int("items_scanned", stats.ItemsScanned),
		zap.Int("items_updated", stats.ItemsUpdated),
		zap.Int("failures", stats.Failures),
	)

	return stats, nil
}

// GetItemBadges returns the active badge rows per requested item code.
// Items without a published website item, and codes without badges, map to
// an empty list.
func (s *BadgeService) GetItemBadges(ctx context.Context, itemCodes []string) (map[string][]BadgeResponse, error) {
	result := make(map[string][]BadgeResponse, len(itemCodes))
	for _, code := range itemCodes {
		result[code] = []BadgeResponse{}
	}
	if len(itemCodes) == 0 {
		return result, nil
	}

	published, err := s.websiteItemRepo.FindPublishedByItemCodes(ctx, itemCodes)
	if err != nil {
		return nil, err
	}
	if len(published) == 0 {
		return result, nil
	}

	publishedCodes := make([]string, 0, len(published))
	for _, wi := range published {
		publishedCodes = append(publishedCodes, wi.ItemCode)
	}

	items, err := s.itemRepo.FindByCodes(ctx, publishedCodes)
	if err != nil {
		return nil, err
	}

	today := s.now()
	for i := range items {
		active := items[i].ActiveBadges(today)
		sort.SliceStable(active, func(a, b int) bool { return active[a].Idx < active[b].Idx })
		result[items[i].Code] = toBadgeResponses(active)
	}

	return result, nil
}

// bestsellerCodes returns the item codes in the top N by quantity sold over
// submitted invoices in the configured window
func (s *BadgeService) bestsellerCodes(ctx context.Context) (map[string]bool, error) {
	since := s.now().Add(-s.config.BestsellerWindow)
	sold, err := s.invoiceRepo.QtySoldSince(ctx, since)
	if err != nil {
		return nil, err
	}

	type soldQty struct {
		code string
		qty  decimal.Decimal
	}
	ranked := make([]soldQty, 0, len(sold))
	for code, qty := range sold {
		ranked = append(ranked, soldQty{code: code, qty: qty})
	}
	sort.Slice(ranked, func(a, b int) bool {
		if !ranked[a].qty.Equal(ranked[b].qty) {
			return ranked[a].qty.GreaterThan(ranked[b].qty)
		}
		return ranked[a].code < ranked[b].code
	})

	limit := s.config.BestsellerLimit
	if limit > len(ranked) {
		limit = len(ranked)
	}

	top := make(map[string]bool, limit)
	for _, entry := range ranked[:limit] {
		top[entry.code] = true
	}
	return top, nil
}

// isLowStock applies the low-stock rule: stock item with 0 < qty <= threshold
func (s *BadgeService) isLowStock(item *catalog.Item, qty, limit decimal.Decimal) bool {
	if !item.IsStockItem {
		return false
	}
	return qty.IsPositive() && qty.LessThanOrEqual(limit)
}

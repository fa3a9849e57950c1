package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ItemRepository defines the persistence interface for items
type ItemRepository interface {
	shared.Repository[Item]
	FindByCode(ctx context.Context, code string) (*Item, error)
	// FindByCodes loads items with their badge rows preloaded
	FindByCodes(ctx context.Context, codes []string) ([]Item, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	// FindVariants loads the variants of a template item with attributes preloaded
	FindVariants(ctx context.Context, templateCode string) ([]Item, error)
	VariantCodes(ctx context.Context, templateCode string) ([]string, error)
	// ReplaceBadges rewrites the full badge child table for an item
	ReplaceBadges(ctx context.Context, itemCode string, badges []ItemBadge) error
}

// WebsiteItemRepository defines the persistence interface for website items
type WebsiteItemRepository interface {
	shared.Repository[WebsiteItem]
	FindByItemCode(ctx context.Context, itemCode string) (*WebsiteItem, error)
	// FindByItemCodes loads website items with their offer rows preloaded
	FindByItemCodes(ctx context.Context, itemCodes []string) ([]WebsiteItem, error)
	FindPublishedByItemCodes(ctx context.Context, itemCodes []string) ([]WebsiteItem, error)
	ExistsByItemCode(ctx context.Context, itemCode string) (bool, error)
	FindPublished(ctx context.Context) ([]WebsiteItem, error)
	// SetConsumerDiscount mirrors the discount without touching the
	// record's updated-at timestamp
	SetConsumerDiscount(ctx context.Context, itemCode string, discount decimal.Decimal) error
}

// CatalogPriceRangeRepository defines the persistence interface for price
// range buckets
type CatalogPriceRangeRepository interface {
	shared.Repository[CatalogPriceRange]
	// FindEnabled returns enabled ranges ordered by sort order, then bounds,
	// then label
	FindEnabled(ctx context.Context) ([]CatalogPriceRange, error)
	FindAll(ctx context.Context) ([]CatalogPriceRange, error)
}

// FacetCount is a single labelled bucket in the filter sidebar
type FacetCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// ListingQuery describes the core storefront listing query. Custom filter
// keys (price, offers, badges) are applied as post-filters by the
// application layer and never reach this query.
type ListingQuery struct {
	shared.Filter
	ItemGroups []string
	Brands     []string
}

// StorefrontQueryRepository exposes the read-model queries behind the facet
// sidebar and the product filter endpoint. Implementations join across
// website items, items, prices, offers and badges.
type StorefrontQueryRepository interface {
	// Facet buckets over published website items
	CountPublishedByItemGroup(ctx context.Context) ([]FacetCount, error)
	CountPublishedByBrand(ctx context.Context, limit int) ([]FacetCount, error)
	CountPublishedByOfferTitle(ctx context.Context) ([]FacetCount, error)
	CountPublishedByBadgeType(ctx context.Context) ([]FacetCount, error)
	// CountPublishedInPriceRange counts distinct published website items
	// whose selling price in the given price list satisfies
	// rate >= from (when set) and rate < to (when set)
	CountPublishedInPriceRange(ctx context.Context, priceList string, from, to *decimal.Decimal) (int64, error)

	// SearchPublished runs the core listing query with paging
	SearchPublished(ctx context.Context, q ListingQuery) ([]WebsiteItem, int64, error)

	// Post-filter lookups for the custom filter keys. Price bounds here are
	// inclusive on both ends.
	ItemCodesWithPriceBetween(ctx context.Context, priceList string, itemCodes []string, from, to *decimal.Decimal) ([]string, error)
	WebsiteItemIDsWithOffers(ctx context.Context, ids []uuid.UUID, offerTitles []string) ([]uuid.UUID, error)
	ItemCodesWithBadges(ctx context.Context, itemCodes []string, badgeTypes []string) ([]string, error)
}

package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormStorefrontQueryRepository implements the storefront read-model queries
// behind the facet sidebar and the product filter endpoint.
type GormStorefrontQueryRepository struct {
	db *gorm.DB
}

// NewGormStorefrontQueryRepository creates a new GormStorefrontQueryRepository
func NewGormStorefrontQueryRepository(db *gorm.DB) *GormStorefrontQueryRepository {
	return &GormStorefrontQueryRepository{db: db}
}

// CountPublishedByItemGroup counts published website items per item group,
// most frequent first
func (r *GormStorefrontQueryRepository) CountPublishedByItemGroup(ctx context.Context) ([]catalog.FacetCount, error) {
	var counts []catalog.FacetCount
	if err := r.db.WithContext(ctx).
		Model(&catalog.WebsiteItem{}).
		Select("item_group AS label, COUNT(*) AS count").
		Where("published = ? AND item_group <> ''", true).
		Group("item_group").
		Order("count DESC, label ASC").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// CountPublishedByBrand counts published website items per brand. Empty
// brands are skipped and only the top buckets are returned.
func (r *GormStorefrontQueryRepository) CountPublishedByBrand(ctx context.Context, limit int) ([]catalog.FacetCount, error) {
	var counts []catalog.FacetCount
	query := r.db.WithContext(ctx).
		Model(&catalog.WebsiteItem{}).
		Select("brand AS label, COUNT(*) AS count").
		Where("published = ? AND brand <> ''", true).
		Group("brand").
		Order("count DESC, label ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// CountPublishedByOfferTitle counts published website items per offer title,
// most frequent first, ties broken by title
func (r *GormStorefrontQueryRepository) CountPublishedByOfferTitle(ctx context.Context) ([]catalog.FacetCount, error) {
	var counts []catalog.FacetCount
	if err := r.db.WithContext(ctx).
		Table("website_offers").
		Select("website_offers.offer_title AS label, COUNT(DISTINCT website_items.id) AS count").
		Joins("JOIN website_items ON website_items.id = website_offers.website_item_id").
		Where("website_items.published = ? AND website_offers.offer_title <> ''", true).
		Group("website_offers.offer_title").
		Order("count DESC, label ASC").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// CountPublishedByBadgeType counts published website items per active badge
// type, most frequent first, ties broken by type
func (r *GormStorefrontQueryRepository) CountPublishedByBadgeType(ctx context.Context) ([]catalog.FacetCount, error) {
	var counts []catalog.FacetCount
	if err := r.db.WithContext(ctx).
		Table("item_badges").
		Select("item_badges.badge_type AS label, COUNT(DISTINCT website_items.id) AS count").
		Joins("JOIN website_items ON website_items.item_code = item_badges.item_code").
		Where("website_items.published = ? AND item_badges.badge_type <> ''", true).
		Where("(item_badges.valid_from IS NULL OR item_badges.valid_from <= CURRENT_DATE)").
		Where("(item_badges.valid_upto IS NULL OR item_badges.valid_upto >= CURRENT_DATE)").
		Group("item_badges.badge_type").
		Order("count DESC, label ASC").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// CountPublishedInPriceRange counts distinct published website items whose
// selling price in the given price list satisfies rate >= from (when set)
// and rate < to (when set)
func (r *GormStorefrontQueryRepository) CountPublishedInPriceRange(ctx context.Context, priceList string, from, to *decimal.Decimal) (int64, error) {
	query := r.db.WithContext(ctx).
		Table("website_items").
		Joins("JOIN item_prices ON item_prices.item_code = website_items.item_code").
		Where("website_items.published = ?", true).
		Where("item_prices.price_list = ? AND item_prices.selling = ?", priceList, true)

	if from != nil {
		query = query.Where("item_prices.rate >= ?", *from)
	}
	if to != nil {
		query = query.Where("item_prices.rate < ?", *to)
	}

	var count int64
	if err := query.Distinct("website_items.id").Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SearchPublished runs the core listing query with paging
func (r *GormStorefrontQueryRepository) SearchPublished(ctx context.Context, q catalog.ListingQuery) ([]catalog.WebsiteItem, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&catalog.WebsiteItem{}).
		Where("published = ?", true)

	if len(q.ItemGroups) > 0 {
		base = base.Where("item_group IN ?", q.ItemGroups)
	}
	if len(q.Brands) > 0 {
		base = base.Where("brand IN ?", q.Brands)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		base = base.Where("web_title ILIKE ? OR item_code ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Preload("Offers").Order("web_title ASC, item_code ASC")
	if q.PageSize > 0 {
		query = query.Offset(q.Offset()).Limit(q.PageSize)
	}

	var items []catalog.WebsiteItem
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ItemCodesWithPriceBetween returns the subset of item codes whose selling
// rate in the price list lies within the inclusive bounds
func (r *GormStorefrontQueryRepository) ItemCodesWithPriceBetween(ctx context.Context, priceList string, itemCodes []string, from, to *decimal.Decimal) ([]string, error) {
	if len(itemCodes) == 0 {
		return []string{}, nil
	}

	query := r.db.WithContext(ctx).
		Table("item_prices").
		Where("item_code IN ? AND price_list = ? AND selling = ?", itemCodes, priceList, true)

	if from != nil {
		query = query.Where("rate >= ?", *from)
	}
	if to != nil {
		query = query.Where("rate <= ?", *to)
	}

	var codes []string
	if err := query.Distinct().Pluck("item_code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// WebsiteItemIDsWithOffers returns the subset of website item IDs carrying at
// least one of the given offer titles
func (r *GormStorefrontQueryRepository) WebsiteItemIDsWithOffers(ctx context.Context, ids []uuid.UUID, offerTitles []string) ([]uuid.UUID, error) {
	if len(ids) == 0 || len(offerTitles) == 0 {
		return []uuid.UUID{}, nil
	}

	var matched []uuid.UUID
	if err := r.db.WithContext(ctx).
		Table("website_offers").
		Where("website_item_id IN ? AND offer_title IN ?", ids, offerTitles).
		Distinct().
		Pluck("website_item_id", &matched).Error; err != nil {
		return nil, err
	}
	return matched, nil
}

// ItemCodesWithBadges returns the subset of item codes carrying at least one
// active badge of the given types
func (r *GormStorefrontQueryRepository) ItemCodesWithBadges(ctx context.Context, itemCodes []string, badgeTypes []string) ([]string, error) {
	if len(itemCodes) == 0 || len(badgeTypes) == 0 {
		return []string{}, nil
	}

	var codes []string
	if err := r.db.WithContext(ctx).
		Table("item_badges").
		Where("item_code IN ? AND badge_type IN ?", itemCodes, badgeTypes).
		Where("(valid_from IS NULL OR valid_from <= CURRENT_DATE)").
		Where("(valid_upto IS NULL OR valid_upto >= CURRENT_DATE)").
		Distinct().
		Pluck("item_code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

var _ catalog.StorefrontQueryRepository = (*GormStorefrontQueryRepository)(nil)

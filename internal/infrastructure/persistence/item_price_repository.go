package persistence

import (
	"context"
	"errors"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/pricing"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"gorm.io/gorm"
)

// GormItemPriceRepository implements ItemPriceRepository using GORM
type GormItemPriceRepository struct {
	db *gorm.DB
}

// NewGormItemPriceRepository creates a new GormItemPriceRepository
func NewGormItemPriceRepository(db *gorm.DB) *GormItemPriceRepository {
	return &GormItemPriceRepository{db: db}
}

// FindSelling returns the selling price row for an item in a price list
func (r *GormItemPriceRepository) FindSelling(ctx context.Context, itemCode, priceList string) (*pricing.ItemPrice, error) {
	var price pricing.ItemPrice
	if err := r.db.WithContext(ctx).
		Where("item_code = ? AND price_list = ? AND selling = ?", itemCode, priceList, true).
		First(&price).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &price, nil
}

// FindSellingForItems returns the selling rows for many items in one price list
func (r *GormItemPriceRepository) FindSellingForItems(ctx context.Context, itemCodes []string, priceList string) ([]pricing.ItemPrice, error) {
	if len(itemCodes) == 0 {
		return []pricing.ItemPrice{}, nil
	}

	var prices []pricing.ItemPrice
	if err := r.db.WithContext(ctx).
		Where("item_code IN ? AND price_list = ? AND selling = ?", itemCodes, priceList, true).
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

// Save creates or updates an item price
func (r *GormItemPriceRepository) Save(ctx context.Context, price *pricing.ItemPrice) error {
	return r.db.WithContext(ctx).Save(price).Error
}

var _ pricing.ItemPriceRepository = (*GormItemPriceRepository)(nil)

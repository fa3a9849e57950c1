package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormWebsiteItemRepository implements WebsiteItemRepository using GORM
type GormWebsiteItemRepository struct {
	db *gorm.DB
}

// NewGormWebsiteItemRepository creates a new GormWebsiteItemRepository
func NewGormWebsiteItemRepository(db *gorm.DB) *GormWebsiteItemRepository {
	return &GormWebsiteItemRepository{db: db}
}

// FindByID finds a website item by its ID
func (r *GormWebsiteItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.WebsiteItem, error) {
	var item catalog.WebsiteItem
	if err := r.db.WithContext(ctx).
		Preload("Offers").
		First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByItemCode finds the website item linked to an item code
func (r *GormWebsiteItemRepository) FindByItemCode(ctx context.Context, itemCode string) (*catalog.WebsiteItem, error) {
	var item catalog.WebsiteItem
	if err := r.db.WithContext(ctx).
		Preload("Offers").
		Where("item_code = ?", itemCode).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByItemCodes loads website items with their offer rows preloaded
func (r *GormWebsiteItemRepository) FindByItemCodes(ctx context.Context, itemCodes []string) ([]catalog.WebsiteItem, error) {
	if len(itemCodes) == 0 {
		return []catalog.WebsiteItem{}, nil
	}

	var items []catalog.WebsiteItem
	if err := r.db.WithContext(ctx).
		Preload("Offers").
		Where("item_code IN ?", itemCodes).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindPublishedByItemCodes loads published website items for the given codes
func (r *GormWebsiteItemRepository) FindPublishedByItemCodes(ctx context.Context, itemCodes []string) ([]catalog.WebsiteItem, error) {
	if len(itemCodes) == 0 {
		return []catalog.WebsiteItem{}, nil
	}

	var items []catalog.WebsiteItem
	if err := r.db.WithContext(ctx).
		Preload("Offers").
		Where("item_code IN ? AND published = ?", itemCodes, true).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ExistsByItemCode checks if a website item exists for the given item code
func (r *GormWebsiteItemRepository) ExistsByItemCode(ctx context.Context, itemCode string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.WebsiteItem{}).
		Where("item_code = ?", itemCode).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindPublished returns all published website items
func (r *GormWebsiteItemRepository) FindPublished(ctx context.Context) ([]catalog.WebsiteItem, error) {
	var items []catalog.WebsiteItem
	if err := r.db.WithContext(ctx).
		Preload("Offers").
		Where("published = ?", true).
		Order("web_title ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a website item
func (r *GormWebsiteItemRepository) Save(ctx context.Context, item *catalog.WebsiteItem) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(item).Error
}

// SetConsumerDiscount mirrors the discount without touching the record's
// updated-at timestamp
func (r *GormWebsiteItemRepository) SetConsumerDiscount(ctx context.Context, itemCode string, discount decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&catalog.WebsiteItem{}).
		Where("item_code = ?", itemCode).
		UpdateColumn("consumer_discount", discount).Error
}

// Delete deletes a website item
func (r *GormWebsiteItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.WebsiteItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.WebsiteItemRepository = (*GormWebsiteItemRepository)(nil)

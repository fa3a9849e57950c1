package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.db.WithContext(ctx).
		Preload("Badges").
		First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByCode finds an item by its code
func (r *GormItemRepository) FindByCode(ctx context.Context, code string) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.db.WithContext(ctx).
		Preload("Badges").
		Where("code = ?", strings.TrimSpace(code)).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByCodes finds multiple items by their codes with badge rows preloaded
func (r *GormItemRepository) FindByCodes(ctx context.Context, codes []string) ([]catalog.Item, error) {
	if len(codes) == 0 {
		return []catalog.Item{}, nil
	}

	var items []catalog.Item
	if err := r.db.WithContext(ctx).
		Preload("Badges").
		Where("code IN ?", codes).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ExistsByCode checks if an item with the given code exists
func (r *GormItemRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Item{}).
		Where("code = ?", strings.TrimSpace(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindVariants loads the variants of a template item with attributes preloaded
func (r *GormItemRepository) FindVariants(ctx context.Context, templateCode string) ([]catalog.Item, error) {
	var items []catalog.Item
	if err := r.db.WithContext(ctx).
		Preload("Attributes").
		Where("variant_of = ?", templateCode).
		Order("code ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// VariantCodes returns the codes of all variants of a template item
func (r *GormItemRepository) VariantCodes(ctx context.Context, templateCode string) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&catalog.Item{}).
		Where("variant_of = ?", templateCode).
		Order("code ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(item).Error
}

// ReplaceBadges rewrites the full badge child table for an item
func (r *GormItemRepository) ReplaceBadges(ctx context.Context, itemCode string, badges []catalog.ItemBadge) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_code = ?", itemCode).Delete(&catalog.ItemBadge{}).Error; err != nil {
			return err
		}
		if len(badges) == 0 {
			return nil
		}
		return tx.Create(&badges).Error
	})
}

// Delete deletes an item
func (r *GormItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Item{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.ItemRepository = (*GormItemRepository)(nil)

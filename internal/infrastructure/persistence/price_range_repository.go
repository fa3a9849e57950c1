package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCatalogPriceRangeRepository implements CatalogPriceRangeRepository using GORM
type GormCatalogPriceRangeRepository struct {
	db *gorm.DB
}

// NewGormCatalogPriceRangeRepository creates a new GormCatalogPriceRangeRepository
func NewGormCatalogPriceRangeRepository(db *gorm.DB) *GormCatalogPriceRangeRepository {
	return &GormCatalogPriceRangeRepository{db: db}
}

// FindByID finds a price range by its ID
func (r *GormCatalogPriceRangeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.CatalogPriceRange, error) {
	var pr catalog.CatalogPriceRange
	if err := r.db.WithContext(ctx).First(&pr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &pr, nil
}

// FindEnabled returns enabled ranges ordered by sort order, then bounds, then label
func (r *GormCatalogPriceRangeRepository) FindEnabled(ctx context.Context) ([]catalog.CatalogPriceRange, error) {
	var ranges []catalog.CatalogPriceRange
	if err := r.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("sort_order ASC, from_amount ASC NULLS FIRST, to_amount ASC NULLS LAST, label ASC").
		Find(&ranges).Error; err != nil {
		return nil, err
	}
	return ranges, nil
}

// FindAll returns all price ranges
func (r *GormCatalogPriceRangeRepository) FindAll(ctx context.Context) ([]catalog.CatalogPriceRange, error) {
	var ranges []catalog.CatalogPriceRange
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC, label ASC").
		Find(&ranges).Error; err != nil {
		return nil, err
	}
	return ranges, nil
}

// Save creates or updates a price range
func (r *GormCatalogPriceRangeRepository) Save(ctx context.Context, pr *catalog.CatalogPriceRange) error {
	return r.db.WithContext(ctx).Save(pr).Error
}

// Delete deletes a price range
func (r *GormCatalogPriceRangeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.CatalogPriceRange{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.CatalogPriceRangeRepository = (*GormCatalogPriceRangeRepository)(nil)

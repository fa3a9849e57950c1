package persistence

import (
	"context"
	"errors"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/pricing"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSettingsRepository implements SettingsRepository using GORM.
// The storefront settings table holds a single row.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns the settings row, or shared.ErrNotFound when the site has not
// been bootstrapped yet
func (r *GormSettingsRepository) Get(ctx context.Context) (*pricing.StorefrontSettings, error) {
	var settings pricing.StorefrontSettings
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// Save creates or updates the settings row
func (r *GormSettingsRepository) Save(ctx context.Context, settings *pricing.StorefrontSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

var _ pricing.SettingsRepository = (*GormSettingsRepository)(nil)

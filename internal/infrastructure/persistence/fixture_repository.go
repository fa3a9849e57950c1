package persistence

import (
	"context"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/setup"
	"gorm.io/gorm"
)

// GormFixtureRepository implements setup.FixtureRepository using GORM
type GormFixtureRepository struct {
	db *gorm.DB
}

// NewGormFixtureRepository creates a new GormFixtureRepository
func NewGormFixtureRepository(db *gorm.DB) *GormFixtureRepository {
	return &GormFixtureRepository{db: db}
}

// Exists reports whether a fixture record of the doctype and name exists
func (r *GormFixtureRepository) Exists(ctx context.Context, doctype, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&setup.FixtureRecord{}).
		Where("doctype = ? AND name = ?", doctype, name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists a fixture record
func (r *GormFixtureRepository) Save(ctx context.Context, record *setup.FixtureRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// FindByDoctype returns the fixture records of a doctype, name ascending
func (r *GormFixtureRepository) FindByDoctype(ctx context.Context, doctype string) ([]setup.FixtureRecord, error) {
	var records []setup.FixtureRecord
	err := r.db.WithContext(ctx).
		Where("doctype = ?", doctype).
		Order("name ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteByDoctype removes all records of a doctype
func (r *GormFixtureRepository) DeleteByDoctype(ctx context.Context, doctype string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("doctype = ?", doctype).
		Delete(&setup.FixtureRecord{})
	return result.RowsAffected, result.Error
}

var _ setup.FixtureRepository = (*GormFixtureRepository)(nil)

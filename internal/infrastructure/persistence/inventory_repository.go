package persistence

import (
	"context"
	"errors"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/inventory"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBinRepository implements BinRepository using GORM
type GormBinRepository struct {
	db *gorm.DB
}

// NewGormBinRepository creates a new GormBinRepository
func NewGormBinRepository(db *gorm.DB) *GormBinRepository {
	return &GormBinRepository{db: db}
}

// Qty returns the actual quantity for an item in a warehouse, zero when no
// bin exists
func (r *GormBinRepository) Qty(ctx context.Context, itemCode, warehouse string) (decimal.Decimal, error) {
	var bin inventory.Bin
	if err := r.db.WithContext(ctx).
		Where("item_code = ? AND warehouse = ?", itemCode, warehouse).
		First(&bin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return bin.ActualQty, nil
}

// TotalQtyByItem sums quantities across all warehouses per item
func (r *GormBinRepository) TotalQtyByItem(ctx context.Context, itemCodes []string) (map[string]decimal.Decimal, error) {
	result := make(map[string]decimal.Decimal, len(itemCodes))
	if len(itemCodes) == 0 {
		return result, nil
	}

	type row struct {
		ItemCode string
		Total    decimal.Decimal
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&inventory.Bin{}).
		Select("item_code, COALESCE(SUM(actual_qty), 0) AS total").
		Where("item_code IN ?", itemCodes).
		Group("item_code").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, rw := range rows {
		result[rw.ItemCode] = rw.Total
	}
	return result, nil
}

var _ inventory.BinRepository = (*GormBinRepository)(nil)

// GormStockReconciliationRepository implements StockReconciliationRepository using GORM
type GormStockReconciliationRepository struct {
	db *gorm.DB
}

// NewGormStockReconciliationRepository creates a new GormStockReconciliationRepository
func NewGormStockReconciliationRepository(db *gorm.DB) *GormStockReconciliationRepository {
	return &GormStockReconciliationRepository{db: db}
}

// SubmitAndApply saves the submitted document and rewrites the affected bins
// to the counted quantities in one transaction
func (r *GormStockReconciliationRepository) SubmitAndApply(ctx context.Context, rec *inventory.StockReconciliation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(rec).Error; err != nil {
			return err
		}

		for _, line := range rec.Items {
			bin := inventory.Bin{
				ItemCode:  line.ItemCode,
				Warehouse: line.Warehouse,
				ActualQty: line.Qty,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "item_code"}, {Name: "warehouse"}},
				DoUpdates: clause.Assignments(map[string]any{"actual_qty": line.Qty}),
			}).Create(&bin).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

var _ inventory.StockReconciliationRepository = (*GormStockReconciliationRepository)(nil)

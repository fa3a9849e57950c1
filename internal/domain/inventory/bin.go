package inventory

import (
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Bin is the per-warehouse stock level for an item.
type Bin struct {
	shared.BaseEntity
	ItemCode  string          `gorm:"type:varchar(140);not null;uniqueIndex:idx_bin_item_wh,priority:1"`
	Warehouse string          `gorm:"type:varchar(140);not null;uniqueIndex:idx_bin_item_wh,priority:2"`
	ActualQty decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Bin) TableName() string {
	return "bins"
}

package inventory

import (
	"context"

	"github.com/shopspring/decimal"
)

// BinRepository defines the persistence interface for stock levels
type BinRepository interface {
	// Qty returns the actual quantity for an item in a warehouse,
	// zero when no bin exists
	Qty(ctx context.Context, itemCode, warehouse string) (decimal.Decimal, error)
	// TotalQtyByItem sums quantities across all warehouses per item
	TotalQtyByItem(ctx context.Context, itemCodes []string) (map[string]decimal.Decimal, error)
}

// StockReconciliationRepository persists reconciliation documents
type StockReconciliationRepository interface {
	// SubmitAndApply saves the submitted document and rewrites the
	// affected bins to the counted quantities in one transaction
	SubmitAndApply(ctx context.Context, rec *StockReconciliation) error
}

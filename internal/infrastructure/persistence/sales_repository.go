package persistence

import (
	"context"
	"time"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/sales"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// QtySoldSince sums line quantities per item code across submitted invoices
// posted on or after the given date
func (r *GormInvoiceRepository) QtySoldSince(ctx context.Context, since time.Time) (map[string]decimal.Decimal, error) {
	type row struct {
		ItemCode string
		Total    decimal.Decimal
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&sales.InvoiceItem{}).
		Select("sales_invoice_items.item_code, COALESCE(SUM(sales_invoice_items.qty), 0) AS total").
		Joins("JOIN sales_invoices ON sales_invoices.id = sales_invoice_items.invoice_id").
		Where("sales_invoices.status = ? AND sales_invoices.posting_date >= ?", sales.InvoiceStatusSubmitted, since).
		Group("sales_invoice_items.item_code").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[string]decimal.Decimal, len(rows))
	for _, rw := range rows {
		result[rw.ItemCode] = rw.Total
	}
	return result, nil
}

var _ sales.InvoiceRepository = (*GormInvoiceRepository)(nil)

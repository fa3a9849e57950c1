package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRepository exposes the sales aggregates the storefront reads
type InvoiceRepository interface {
	// QtySoldSince sums line quantities per item code across submitted
	// invoices posted on or after the given date
	QtySoldSince(ctx context.Context, since time.Time) (map[string]decimal.Decimal, error)
}

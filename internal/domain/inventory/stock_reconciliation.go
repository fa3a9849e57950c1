package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ReconciliationStatus is the document status of a stock reconciliation
type ReconciliationStatus string

const (
	ReconciliationStatusDraft     ReconciliationStatus = "Draft"
	ReconciliationStatusSubmitted ReconciliationStatus = "Submitted"
)

// StockReconciliation is an absolute stock count document. On submit the
// counted quantities become the new bin quantities.
type StockReconciliation struct {
	shared.BaseAggregateRoot
	Company     string                    `gorm:"type:varchar(140);not null"`
	PostingDate time.Time                 `gorm:"type:date;not null"`
	Status      ReconciliationStatus      `gorm:"type:varchar(20);not null;default:'Draft'"`
	Remark      string                    `gorm:"type:varchar(255)"`
	Items       []StockReconciliationItem `gorm:"foreignKey:ReconciliationID"`
}

// TableName returns the table name for GORM
func (StockReconciliation) TableName() string {
	return "stock_reconciliations"
}

// StockReconciliationItem is a counted line on a stock reconciliation.
type StockReconciliationItem struct {
	shared.BaseEntity
	ReconciliationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemCode         string          `gorm:"type:varchar(140);not null;index"`
	Warehouse        string          `gorm:"type:varchar(140);not null"`
	Qty              decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (StockReconciliationItem) TableName() string {
	return "stock_reconciliation_items"
}

// NewStockReconciliation creates a draft reconciliation document
func NewStockReconciliation(company string, postingDate time.Time) (*StockReconciliation, error) {
	if company == "" {
		return nil, shared.NewDomainError("COMPANY_REQUIRED", "Company is required for a stock reconciliation")
	}

	return &StockReconciliation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Company:           company,
		PostingDate:       postingDate,
		Status:            ReconciliationStatusDraft,
	}, nil
}

// AddLine adds a counted quantity for an item in a warehouse
func (r *StockReconciliation) AddLine(itemCode, warehouse string, qty decimal.Decimal) error {
	if r.Status != ReconciliationStatusDraft {
		return shared.ErrInvalidState
	}
	if itemCode == "" || warehouse == "" {
		return shared.NewDomainError("INVALID_LINE", "Item code and warehouse are required")
	}
	if qty.IsNegative() {
		return shared.NewDomainError("INVALID_QTY", "Counted quantity cannot be negative")
	}

	r.Items = append(r.Items, StockReconciliationItem{
		BaseEntity:       shared.NewBaseEntity(),
		ReconciliationID: r.ID,
		ItemCode:         itemCode,
		Warehouse:        warehouse,
		Qty:              qty,
	})
	return nil
}

// Submit finalizes the document. A submitted reconciliation is immutable;
// the repository applies its lines to the bins in the same transaction.
func (r *StockReconciliation) Submit() error {
	if r.Status != ReconciliationStatusDraft {
		return shared.ErrInvalidState
	}
	if len(r.Items) == 0 {
		return shared.NewDomainError("EMPTY_RECONCILIATION", "Cannot submit a reconciliation without lines")
	}

	r.Status = ReconciliationStatusSubmitted
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

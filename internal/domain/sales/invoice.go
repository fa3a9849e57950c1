package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the document status of a sales invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "Draft"
	InvoiceStatusSubmitted InvoiceStatus = "Submitted"
	InvoiceStatusCancelled InvoiceStatus = "Cancelled"
)

// Invoice is a minimal sales invoice record. The storefront only reads
// these to rank items by quantity sold; invoicing itself happens upstream.
type Invoice struct {
	shared.BaseAggregateRoot
	Customer    string        `gorm:"type:varchar(140);not null"`
	PostingDate time.Time     `gorm:"type:date;not null;index"`
	Status      InvoiceStatus `gorm:"type:varchar(20);not null;default:'Draft';index"`
	Items       []InvoiceItem `gorm:"foreignKey:InvoiceID"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "sales_invoices"
}

// InvoiceItem is a line on a sales invoice
type InvoiceItem struct {
	shared.BaseEntity
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemCode  string          `gorm:"type:varchar(140);not null;index"`
	Qty       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Rate      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (InvoiceItem) TableName() string {
	return "sales_invoice_items"
}

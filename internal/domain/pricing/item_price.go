package pricing

import (
	"time"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ItemPrice is a selling price row for an item in a named price list.
type ItemPrice struct {
	shared.BaseAggregateRoot
	ItemCode  string          `gorm:"type:varchar(140);not null;uniqueIndex:idx_item_price_list,priority:1"`
	PriceList string          `gorm:"type:varchar(140);not null;uniqueIndex:idx_item_price_list,priority:2"`
	Rate      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Currency  string          `gorm:"type:varchar(3);not null;default:'USD'"`
	Selling   bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ItemPrice) TableName() string {
	return "item_prices"
}

// NewItemPrice creates a new selling price row
func NewItemPrice(itemCode, priceList string, rate decimal.Decimal, currency string) (*ItemPrice, error) {
	if itemCode == "" {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item code cannot be empty")
	}
	if priceList == "" {
		return nil, shared.NewDomainError("INVALID_PRICE_LIST", "Price list cannot be empty")
	}
	if rate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Rate cannot be negative")
	}
	if currency == "" {
		currency = "USD"
	}

	return &ItemPrice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ItemCode:          itemCode,
		PriceList:         priceList,
		Rate:              rate,
		Currency:          currency,
		Selling:           true,
	}, nil
}

// SetRate rewrites the rate. The row is always marked as a selling price so
// storefront queries that filter on selling prices can see it.
func (p *ItemPrice) SetRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Rate cannot be negative")
	}
	p.Rate = rate
	p.Selling = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

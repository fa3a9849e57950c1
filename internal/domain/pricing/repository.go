package pricing

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateRange is a min/max pair over selling rates
type RateRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// ItemPriceRepository defines the persistence interface for item prices
type ItemPriceRepository interface {
	// FindSelling returns the selling price row for an item in a price
	// list, or shared.ErrNotFound
	FindSelling(ctx context.Context, itemCode, priceList string) (*ItemPrice, error)
	// FindSellingForItems returns the selling rows for many items in one
	// price list
	FindSellingForItems(ctx context.Context, itemCodes []string, priceList string) ([]ItemPrice, error)
	Save(ctx context.Context, price *ItemPrice) error
}

// SettingsRepository loads and stores the storefront settings singleton
type SettingsRepository interface {
	// Get returns the settings row, or shared.ErrNotFound when the site
	// has not been bootstrapped yet
	Get(ctx context.Context) (*StorefrontSettings, error)
	Save(ctx context.Context, settings *StorefrontSettings) error
}

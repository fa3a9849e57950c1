package pricing

import "github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"

// DefaultPriceList is the last-resort selling price list name
const DefaultPriceList = "Standard Selling"

// StorefrontSettings is the singleton settings row for the storefront.
type StorefrontSettings struct {
	shared.BaseAggregateRoot
	PriceList        string `gorm:"type:varchar(140)"`
	SellingPriceList string `gorm:"type:varchar(140)"`
	DefaultCompany   string `gorm:"type:varchar(140)"`
	DefaultWarehouse string `gorm:"type:varchar(140)"`
	DefaultCurrency  string `gorm:"type:varchar(3);not null;default:'USD'"`
}

// TableName returns the table name for GORM
func (StorefrontSettings) TableName() string {
	return "storefront_settings"
}

// ResolvePriceList picks the active selling price list: the storefront's
// own price list first, then the selling default, then the standard one.
func (s *StorefrontSettings) ResolvePriceList() string {
	if s == nil {
		return DefaultPriceList
	}
	if s.PriceList != "" {
		return s.PriceList
	}
	if s.SellingPriceList != "" {
		return s.SellingPriceList
	}
	return DefaultPriceList
}

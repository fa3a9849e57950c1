package catalog

import (
	"time"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CatalogPriceRange is a site-configurable price bucket for the storefront
// filter sidebar. Either bound may be open.
type CatalogPriceRange struct {
	shared.BaseAggregateRoot
	Label      string           `gorm:"type:varchar(140);not null"`
	FromAmount *decimal.Decimal `gorm:"type:decimal(18,4)"`
	ToAmount   *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Enabled    bool             `gorm:"not null;default:true;index"`
	SortOrder  int              `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (CatalogPriceRange) TableName() string {
	return "catalog_price_ranges"
}

// NewCatalogPriceRange creates a new price range bucket
func NewCatalogPriceRange(label string, from, to *decimal.Decimal, sortOrder int) (*CatalogPriceRange, error) {
	if label == "" {
		return nil, shared.NewDomainError("INVALID_LABEL", "Price range label cannot be empty")
	}
	if err := validateBounds(from, to); err != nil {
		return nil, err
	}

	return &CatalogPriceRange{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Label:             label,
		FromAmount:        from,
		ToAmount:          to,
		Enabled:           true,
		SortOrder:         sortOrder,
	}, nil
}

// SetBounds updates the range bounds
func (r *CatalogPriceRange) SetBounds(from, to *decimal.Decimal) error {
	if err := validateBounds(from, to); err != nil {
		return err
	}
	r.FromAmount = from
	r.ToAmount = to
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// Enable makes the range visible in the facet sidebar
func (r *CatalogPriceRange) Enable() {
	r.Enabled = true
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// Disable hides the range from the facet sidebar
func (r *CatalogPriceRange) Disable() {
	r.Enabled = false
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// Contains reports whether a rate falls in the half-open bucket
// [FromAmount, ToAmount).
func (r *CatalogPriceRange) Contains(rate decimal.Decimal) bool {
	if r.FromAmount != nil && rate.LessThan(*r.FromAmount) {
		return false
	}
	if r.ToAmount != nil && rate.GreaterThanOrEqual(*r.ToAmount) {
		return false
	}
	return true
}

func validateBounds(from, to *decimal.Decimal) error {
	if from != nil && to != nil && from.GreaterThan(*to) {
		return shared.NewDomainError("INVALID_RANGE", "From Amount cannot be greater than To Amount")
	}
	return nil
}

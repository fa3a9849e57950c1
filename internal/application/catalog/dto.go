package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateItemRequest is the payload for creating an item
type CreateItemRequest struct {
	Code             string           `json:"code" binding:"required,max=140"`
	Name             string           `json:"name" binding:"required,max=200"`
	Description      string           `json:"description"`
	ItemGroup        string           `json:"item_group" binding:"max=140"`
	Brand            string           `json:"brand" binding:"max=140"`
	StockUnit        string           `json:"stock_unit" binding:"max=20"`
	IsStockItem      *bool            `json:"is_stock_item"`
	PublishInWebsite bool             `json:"publish_in_website"`
	ConsumerDiscount *decimal.Decimal `json:"consumer_discount"`
	StandardRate     *decimal.Decimal `json:"standard_rate"`
	VariantOf        string           `json:"variant_of" binding:"max=140"`
}

// UpdateItemRequest is the payload for updating an item
type UpdateItemRequest struct {
	Name             string           `json:"name" binding:"required,max=200"`
	Description      string           `json:"description"`
	PublishInWebsite *bool            `json:"publish_in_website"`
	ConsumerDiscount *decimal.Decimal `json:"consumer_discount"`
}

// ItemResponse is the item payload returned to admin clients
type ItemResponse struct {
	ID               uuid.UUID        `json:"id"`
	Code             string           `json:"code"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	ItemGroup        string           `json:"item_group"`
	Brand            string           `json:"brand"`
	StockUnit        string           `json:"stock_unit"`
	IsStockItem      bool             `json:"is_stock_item"`
	PublishInWebsite bool             `json:"publish_in_website"`
	ConsumerDiscount decimal.Decimal  `json:"consumer_discount"`
	StandardRate     decimal.Decimal  `json:"standard_rate"`
	VariantOf        string           `json:"variant_of"`
	Badges           []BadgeRow       `json:"badges"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// BadgeRow is a badge child row on the item response
type BadgeRow struct {
	BadgeType string     `json:"badge_type"`
	Source    string     `json:"source"`
	ValidFrom *time.Time `json:"valid_from,omitempty"`
	ValidUpto *time.Time `json:"valid_upto,omitempty"`
	Idx       int        `json:"idx"`
}

// ToItemResponse maps an item aggregate to its response payload
func ToItemResponse(item *catalog.Item) ItemResponse {
	badges := make([]BadgeRow, 0, len(item.Badges))
	for _, b := range item.Badges {
		badges = append(badges, BadgeRow{
			BadgeType: b.BadgeType,
			Source:    b.Source,
			ValidFrom: b.ValidFrom,
			ValidUpto: b.ValidUpto,
			Idx:       b.Idx,
		})
	}
	return ItemResponse{
		ID:               item.ID,
		Code:             item.Code,
		Name:             item.Name,
		Description:      item.Description,
		ItemGroup:        item.ItemGroup,
		Brand:            item.Brand,
		StockUnit:        item.StockUnit,
		IsStockItem:      item.IsStockItem,
		PublishInWebsite: item.PublishInWebsite,
		ConsumerDiscount: item.ConsumerDiscount,
		StandardRate:     item.StandardRate,
		VariantOf:        item.VariantOf,
		Badges:           badges,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}

// PriceRangeRequest is the payload for creating or updating a price range
type PriceRangeRequest struct {
	Label      string           `json:"label" binding:"required,max=140"`
	FromAmount *decimal.Decimal `json:"from_amount"`
	ToAmount   *decimal.Decimal `json:"to_amount"`
	Enabled    *bool            `json:"enabled"`
	SortOrder  int              `json:"sort_order"`
}

// PriceRangeResponse is the price range payload
type PriceRangeResponse struct {
	ID         uuid.UUID        `json:"id"`
	Label      string           `json:"label"`
	FromAmount *decimal.Decimal `json:"from_amount"`
	ToAmount   *decimal.Decimal `json:"to_amount"`
	Enabled    bool             `json:"enabled"`
	SortOrder  int              `json:"sort_order"`
}

// ToPriceRangeResponse maps a price range to its response payload
func ToPriceRangeResponse(r *catalog.CatalogPriceRange) PriceRangeResponse {
	return PriceRangeResponse{
		ID:         r.ID,
		Label:      r.Label,
		FromAmount: r.FromAmount,
		ToAmount:   r.ToAmount,
		Enabled:    r.Enabled,
		SortOrder:  r.SortOrder,
	}
}

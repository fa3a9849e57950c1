package storefront

import (
	"time"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// FacetsResponse is the full filter sidebar payload
type FacetsResponse struct {
	ItemGroups  []catalog.FacetCount `json:"item_groups"`
	Brands      []catalog.FacetCount `json:"brands"`
	PriceRanges []PriceRangeFacet    `json:"price_ranges"`
	Offers      []catalog.FacetCount `json:"offers"`
	Badges      []catalog.FacetCount `json:"badges"`
}

// PriceRangeFacet is a configured price bucket with its item count
type PriceRangeFacet struct {
	Label      string           `json:"label"`
	FromAmount *decimal.Decimal `json:"from_amount"`
	ToAmount   *decimal.Decimal `json:"to_amount"`
	Count      int64            `json:"count"`
}

// BadgeResponse is one active badge row on an item
type BadgeResponse struct {
	BadgeType string     `json:"badge_type"`
	Source    string     `json:"source"`
	ValidFrom *time.Time `json:"valid_from,omitempty"`
	ValidUpto *time.Time `json:"valid_upto,omitempty"`
}

// OfferResponse is one offer row on a website item
type OfferResponse struct {
	Name          string `json:"name"`
	OfferTitle    string `json:"offer_title"`
	OfferSubtitle string `json:"offer_subtitle"`
}

// RateRangeResponse is a min/max pair over rates or discounts
type RateRangeResponse struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// VariantResponse describes one variant of a template item
type VariantResponse struct {
	ItemCode         string            `json:"item_code"`
	ItemName         string            `json:"item_name"`
	Attributes       map[string]string `json:"attributes"`
	Price            *decimal.Decimal  `json:"price"`
	ConsumerDiscount *decimal.Decimal  `json:"consumer_discount"`
}

// ProductCard is one listing entry in the filter response
type ProductCard struct {
	ItemCode         string          `json:"item_code"`
	WebTitle         string          `json:"web_item_name"`
	Route            string          `json:"route"`
	ItemGroup        string          `json:"item_group"`
	Brand            string          `json:"brand"`
	WebsiteImage     string          `json:"website_image"`
	ConsumerDiscount decimal.Decimal `json:"consumer_discount"`
	Offers           []OfferResponse `json:"offers"`
}

// ProductFilterResponse is the filtered product listing
type ProductFilterResponse struct {
	Items      []ProductCard `json:"items"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
}

// RecomputeStats summarizes a badge recompute run
type RecomputeStats struct {
	ItemsScanned int `json:"items_scanned"`
	ItemsUpdated int `json:"items_updated"`
	Failures     int `json:"failures"`
}

func toBadgeResponses(badges []catalog.ItemBadge) []BadgeResponse {
	out := make([]BadgeResponse, 0, len(badges))
	for _, b := range badges {
		out = append(out, BadgeResponse{
			BadgeType: b.BadgeType,
			Source:    b.Source,
			ValidFrom: b.ValidFrom,
			ValidUpto: b.ValidUpto,
		})
	}
	return out
}

func toOfferResponses(offers []catalog.WebsiteOffer) []OfferResponse {
	out := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, OfferResponse{
			Name:          o.ID.String(),
			OfferTitle:    o.OfferTitle,
			OfferSubtitle: o.OfferSubtitle,
		})
	}
	return out
}

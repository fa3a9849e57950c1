package catalog

import (
	"strings"
	"time"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// WebsiteItem is the storefront-published representation of an Item.
// Catalog data lives on the Item; the website item carries what the shop
// front needs to render a product card (route, image, offers, discount).
type WebsiteItem struct {
	shared.BaseAggregateRoot
	ItemCode         string          `gorm:"type:varchar(140);not null;uniqueIndex"`
	WebTitle         string          `gorm:"type:varchar(200);not null"`
	Route            string          `gorm:"type:varchar(255);not null;index"`
	ItemGroup        string          `gorm:"type:varchar(140);index"`
	Brand            string          `gorm:"type:varchar(140);index"`
	Published        bool            `gorm:"not null;default:true;index"`
	WebsiteImage     string          `gorm:"type:varchar(500)"`
	ConsumerDiscount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Offers           []WebsiteOffer  `gorm:"foreignKey:WebsiteItemID"`
}

// TableName returns the table name for GORM
func (WebsiteItem) TableName() string {
	return "website_items"
}

// NewWebsiteItemFromItem publishes an Item to the storefront, mirroring the
// catalog fields the storefront renders.
func NewWebsiteItemFromItem(item *Item) (*WebsiteItem, error) {
	if item == nil || item.Code == "" {
		return nil, shared.NewDomainError("INVALID_ITEM", "Cannot publish an item without a code")
	}

	wi := &WebsiteItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ItemCode:          item.Code,
		WebTitle:          item.Name,
		Route:             itemRoute(item.Code),
		ItemGroup:         item.ItemGroup,
		Brand:             item.Brand,
		Published:         true,
		ConsumerDiscount:  item.ConsumerDiscount,
	}

	wi.AddDomainEvent(NewWebsiteItemPublishedEvent(wi))

	return wi, nil
}

// SetWebsiteImage sets the product image URL
func (w *WebsiteItem) SetWebsiteImage(url string) {
	w.WebsiteImage = url
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
}

// ClearWebsiteImage removes the product image URL
func (w *WebsiteItem) ClearWebsiteImage() {
	w.WebsiteImage = ""
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
}

// HasExternalImage reports whether the image is a fully-qualified HTTP(S)
// URL (e.g. CDN or object storage), which needs no local file record.
func (w *WebsiteItem) HasExternalImage() bool {
	return strings.HasPrefix(w.WebsiteImage, "http://") ||
		strings.HasPrefix(w.WebsiteImage, "https://")
}

// Unpublish hides the website item from the storefront
func (w *WebsiteItem) Unpublish() {
	w.Published = false
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
}

// itemRoute derives a stable storefront route from the item code
func itemRoute(code string) string {
	slug := strings.ToLower(strings.TrimSpace(code))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "/", "-")
	return "products/" + slug
}

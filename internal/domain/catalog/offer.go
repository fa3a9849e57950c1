package catalog

import (
	"github.com/google/uuid"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
)

// WebsiteOffer is an offer row on a WebsiteItem ("Available Offers" on the
// product card). Purely informational.
type WebsiteOffer struct {
	shared.BaseEntity
	WebsiteItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	OfferTitle    string    `gorm:"type:varchar(200);not null"`
	OfferSubtitle string    `gorm:"type:varchar(500)"`
	Idx           int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (WebsiteOffer) TableName() string {
	return "website_offers"
}

// NewWebsiteOffer creates a new offer row
func NewWebsiteOffer(websiteItemID uuid.UUID, title, subtitle string, idx int) (*WebsiteOffer, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_OFFER", "Offer title cannot be empty")
	}
	return &WebsiteOffer{
		BaseEntity:    shared.NewBaseEntity(),
		WebsiteItemID: websiteItemID,
		OfferTitle:    title,
		OfferSubtitle: subtitle,
		Idx:           idx,
	}, nil
}

package catalog

import (
	"strings"
	"time"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Item represents a product master record.
// It is the aggregate root for catalog-side operations; its storefront
// representation lives in WebsiteItem.
type Item struct {
	shared.BaseAggregateRoot
	Code             string          `gorm:"type:varchar(140);not null;uniqueIndex"`
	Name             string          `gorm:"type:varchar(200);not null"`
	Description      string          `gorm:"type:text"`
	ItemGroup        string          `gorm:"type:varchar(140);index"`
	Brand            string          `gorm:"type:varchar(140);index"`
	StockUnit        string          `gorm:"type:varchar(20);not null;default:'Nos'"`
	IsStockItem      bool            `gorm:"not null;default:true"`
	PublishInWebsite bool            `gorm:"not null;default:false"`
	ConsumerDiscount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	StandardRate     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DefaultWarehouse string          `gorm:"type:varchar(140)"`
	VariantOf        string          `gorm:"type:varchar(140);index"`
	Badges           []ItemBadge     `gorm:"foreignKey:ItemCode;references:Code"`
	Attributes       []ItemAttribute `gorm:"foreignKey:ItemCode;references:Code"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// ItemAttribute is a variant attribute row on an Item (e.g. Colour = Red).
type ItemAttribute struct {
	shared.BaseEntity
	ItemCode       string `gorm:"type:varchar(140);not null;index"`
	Attribute      string `gorm:"type:varchar(140);not null"`
	AttributeValue string `gorm:"type:varchar(140);not null"`
}

// TableName returns the table name for GORM
func (ItemAttribute) TableName() string {
	return "item_attributes"
}

// NewItem creates a new item
func NewItem(code, name string) (*Item, error) {
	if err := validateItemCode(code); err != nil {
		return nil, err
	}
	if err := validateItemName(name); err != nil {
		return nil, err
	}

	item := &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.TrimSpace(code),
		Name:              name,
		StockUnit:         "Nos",
		IsStockItem:       true,
		ConsumerDiscount:  decimal.Zero,
		StandardRate:      decimal.Zero,
	}

	item.AddDomainEvent(NewItemCreatedEvent(item))

	return item, nil
}

// Update updates the item's basic information
func (i *Item) Update(name, description string) error {
	if err := validateItemName(name); err != nil {
		return err
	}

	i.Name = name
	i.Description = description
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemUpdatedEvent(i))

	return nil
}

// SetPublishFlag sets the publish-in-website intent from an already parsed flag
func (i *Item) SetPublishFlag(published bool) {
	i.PublishInWebsite = published
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemUpdatedEvent(i))
}

// SetConsumerDiscount sets the informational consumer discount percent.
// The value is mirrored to linked website items by an event handler and
// never participates in pricing.
func (i *Item) SetConsumerDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Consumer discount cannot be negative")
	}

	i.ConsumerDiscount = discount
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemUpdatedEvent(i))

	return nil
}

// IsVariant returns true when the item is a variant of a template item
func (i *Item) IsVariant() bool {
	return i.VariantOf != ""
}

// ActiveBadges returns the badge rows whose validity window covers the given
// date, in child-row order.
func (i *Item) ActiveBadges(on time.Time) []ItemBadge {
	active := make([]ItemBadge, 0, len(i.Badges))
	for _, b := range i.Badges {
		if b.BadgeType == "" {
			continue
		}
		if !b.IsActiveOn(on) {
			continue
		}
		active = append(active, b)
	}
	return active
}

// UpsertAutoBadge ensures exactly one automatic badge row of the given type
// exists. Duplicate auto rows of the type are dropped; manual rows are never
// touched. Returns true when the badge set changed.
func (i *Item) UpsertAutoBadge(badgeType string) bool {
	remaining := make([]ItemBadge, 0, len(i.Badges)+1)
	changed := false
	exists := false
	for _, row := range i.Badges {
		if row.BadgeType == badgeType && row.Source == BadgeSourceAuto {
			if exists {
				changed = true
				continue // drop duplicate auto row
			}
			exists = true
		}
		remaining = append(remaining, row)
	}

	if !exists {
		remaining = append(remaining, NewAutoBadge(i.Code, badgeType, len(remaining)+1))
		changed = true
	}

	i.Badges = remaining
	if changed {
		i.UpdatedAt = time.Now()
		i.IncrementVersion()
	}
	return changed
}

// ClearAutoBadge removes automatic badge rows of the given type.
// Returns true when the badge set changed.
func (i *Item) ClearAutoBadge(badgeType string) bool {
	remaining := make([]ItemBadge, 0, len(i.Badges))
	for _, row := range i.Badges {
		if row.BadgeType == badgeType && row.Source == BadgeSourceAuto {
			continue
		}
		remaining = append(remaining, row)
	}

	if len(remaining) == len(i.Badges) {
		return false
	}

	i.Badges = remaining
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return true
}

// ParsePublishFlag normalizes the many shapes the publish flag arrives in
// from CSV imports: 1/0, "1"/"0", "Yes"/"No", "y", "true", booleans.
func ParsePublishFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "yes", "y", "true":
		return true
	}
	return false
}

// validateItemCode validates the item code
func validateItemCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Item code cannot be empty")
	}
	if len(code) > 140 {
		return shared.NewDomainError("INVALID_CODE", "Item code cannot exceed 140 characters")
	}
	return nil
}

// validateItemName validates the item name
func validateItemName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 200 characters")
	}
	return nil
}

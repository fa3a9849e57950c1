package catalog

import (
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event types for catalog aggregates
const (
	EventItemCreated          = "catalog.item.created"
	EventItemUpdated          = "catalog.item.updated"
	EventWebsiteItemPublished = "catalog.website_item.published"
)

// ItemCreatedEvent is published when a new item is created
type ItemCreatedEvent struct {
	shared.BaseDomainEvent
	ItemCode string `json:"item_code"`
	ItemName string `json:"item_name"`
}

// NewItemCreatedEvent creates a new ItemCreatedEvent
func NewItemCreatedEvent(item *Item) *ItemCreatedEvent {
	return &ItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventItemCreated, "Item", item.ID),
		ItemCode:        item.Code,
		ItemName:        item.Name,
	}
}

// ItemUpdatedEvent is published on every item save. It carries the fields
// the update hooks react to: the publish intent and the consumer discount.
type ItemUpdatedEvent struct {
	shared.BaseDomainEvent
	ItemCode         string          `json:"item_code"`
	PublishInWebsite bool            `json:"publish_in_website"`
	ConsumerDiscount decimal.Decimal `json:"consumer_discount"`
}

// NewItemUpdatedEvent creates a new ItemUpdatedEvent
func NewItemUpdatedEvent(item *Item) *ItemUpdatedEvent {
	return &ItemUpdatedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventItemUpdated, "Item", item.ID),
		ItemCode:         item.Code,
		PublishInWebsite: item.PublishInWebsite,
		ConsumerDiscount: item.ConsumerDiscount,
	}
}

// WebsiteItemPublishedEvent is published when an item gets a storefront
// representation
type WebsiteItemPublishedEvent struct {
	shared.BaseDomainEvent
	ItemCode string `json:"item_code"`
	Route    string `json:"route"`
}

// NewWebsiteItemPublishedEvent creates a new WebsiteItemPublishedEvent
func NewWebsiteItemPublishedEvent(wi *WebsiteItem) *WebsiteItemPublishedEvent {
	return &WebsiteItemPublishedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventWebsiteItemPublished, "WebsiteItem", wi.ID),
		ItemCode:        wi.ItemCode,
		Route:           wi.Route,
	}
}

package storefront

import (
	"context"
	"fmt"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"go.uber.org/zap"
)

// DiscountSyncHandler mirrors the item's consumer discount onto linked
// website items. The mirror write deliberately leaves the website item's
// updated-at timestamp untouched.
type DiscountSyncHandler struct {
	websiteItemRepo catalog.WebsiteItemRepository
	logger          *zap.Logger
}

// NewDiscountSyncHandler creates a new DiscountSyncHandler
func NewDiscountSyncHandler(websiteItemRepo catalog.WebsiteItemRepository, logger *zap.Logger) *DiscountSyncHandler {
	return &DiscountSyncHandler{
		websiteItemRepo: websiteItemRepo,
		logger:          logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *DiscountSyncHandler) EventTypes() []string {
	return []string{catalog.EventItemUpdated}
}

// Handle mirrors the consumer discount to the item's website items
func (h *DiscountSyncHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	updated, ok := event.(*catalog.ItemUpdatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			catalog.EventItemUpdated, event.EventType())
	}

	if err := h.websiteItemRepo.SetConsumerDiscount(ctx, updated.ItemCode, updated.ConsumerDiscount); err != nil {
		h.logger.Error("failed to mirror consumer discount",
			zap.String("item_code", updated.ItemCode),
			zap.Error(err),
		)
		return nil
	}

	return nil
}

var _ shared.EventHandler = (*DiscountSyncHandler)(nil)

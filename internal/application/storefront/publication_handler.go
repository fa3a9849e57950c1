package storefront

import (
	"context"
	"fmt"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"go.uber.org/zap"
)

// PublicationHandler reacts to item updates: when the publish flag is set
// and no website item exists for the item code yet, it creates one.
// Publication failures are logged and never propagate back to the item save.
type PublicationHandler struct {
	itemRepo        catalog.ItemRepository
	websiteItemRepo catalog.WebsiteItemRepository
	facets          *FacetService
	logger          *zap.Logger
}

// NewPublicationHandler creates a new PublicationHandler. The facet service
// may be nil when cache invalidation is not wanted.
func NewPublicationHandler(
	itemRepo catalog.ItemRepository,
	websiteItemRepo catalog.WebsiteItemRepository,
	facets *FacetService,
	logger *zap.Logger,
) *PublicationHandler {
	return &PublicationHandler{
		itemRepo:        itemRepo,
		websiteItemRepo: websiteItemRepo,
		facets:          facets,
		logger:          logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *PublicationHandler) EventTypes() []string {
	return []string{catalog.EventItemUpdated}
}

// Handle creates the website item for a newly published item
func (h *PublicationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	updated, ok := event.(*catalog.ItemUpdatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			catalog.EventItemUpdated, event.EventType())
	}

	if !updated.PublishInWebsite {
		return nil
	}

	exists, err := h.websiteItemRepo.ExistsByItemCode(ctx, updated.ItemCode)
	if err != nil {
		h.logger.Error("failed to check for existing website item",
			zap.String("item_code", updated.ItemCode),
			zap.Error(err),
		)
		return nil
	}
	if exists {
		return nil
	}

	item, err := h.itemRepo.FindByCode(ctx, updated.ItemCode)
	if err != nil {
		h.logger.Error("failed to load item for website publication",
			zap.String("item_code", updated.ItemCode),
			zap.Error(err),
		)
		return nil
	}

	websiteItem, err := catalog.NewWebsiteItemFromItem(item)
	if err != nil {
		h.logger.Error("failed to build website item",
			zap.String("item_code", updated.ItemCode),
			zap.Error(err),
		)
		return nil
	}

	if err := h.websiteItemRepo.Save(ctx, websiteItem); err != nil {
		h.logger.Error("failed to save website item",
			zap.String("item_code", updated.ItemCode),
			zap.Error(err),
		)
		return nil
	}

	h.logger.Info("website item created for published item",
		zap.String("item_code", updated.ItemCode),
		zap.String("route", websiteItem.Route),
	)

	if h.facets != nil {
		h.facets.InvalidateCache(ctx)
	}

	return nil
}

var _ shared.EventHandler = (*PublicationHandler)(nil)

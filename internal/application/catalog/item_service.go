package catalog

import (
	"context"
	"time"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"go.uber.org/zap"
)

// ItemService handles admin-side item operations. Saves publish the item's
// domain events so the website publication and discount mirror hooks run.
type ItemService struct {
	itemRepo catalog.ItemRepository
	events   shared.EventPublisher
	logger   *zap.Logger
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo catalog.ItemRepository, events shared.EventPublisher, logger *zap.Logger) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		events:   events,
		logger:   logger,
	}
}

// Create creates a new item
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	exists, err := s.itemRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Item with this code already exists")
	}

	item, err := catalog.NewItem(req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	item.Description = req.Description
	item.ItemGroup = req.ItemGroup
	item.Brand = req.Brand
	item.VariantOf = req.VariantOf
	if req.StockUnit != "" {
		item.StockUnit = req.StockUnit
	}
	if req.IsStockItem != nil {
		item.IsStockItem = *req.IsStockItem
	}
	if req.StandardRate != nil {
		item.StandardRate = *req.StandardRate
	}
	if req.ConsumerDiscount != nil {
		if err := item.SetConsumerDiscount(*req.ConsumerDiscount); err != nil {
			return nil, err
		}
	}
	if req.PublishInWebsite {
		item.SetPublishFlag(true)
	}

	if err := s.save(ctx, item); err != nil {
		return nil, err
	}

	resp := ToItemResponse(item)
	return &resp, nil
}

// Update updates an item's basic fields and hook-relevant flags
func (s *ItemService) Update(ctx context.Context, code string, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := item.Update(req.Name, req.Description); err != nil {
		return nil, err
	}
	if req.PublishInWebsite != nil {
		item.SetPublishFlag(*req.PublishInWebsite)
	}
	if req.ConsumerDiscount != nil {
		if err := item.SetConsumerDiscount(*req.ConsumerDiscount); err != nil {
			return nil, err
		}
	}

	if err := s.save(ctx, item); err != nil {
		return nil, err
	}

	resp := ToItemResponse(item)
	return &resp, nil
}

// GetByCode returns an item by its code
func (s *ItemService) GetByCode(ctx context.Context, code string) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	resp := ToItemResponse(item)
	return &resp, nil
}

// AddManualBadge attaches a user-managed badge row to an item
func (s *ItemService) AddManualBadge(ctx context.Context, code, badgeType string, validFrom, validUpto *time.Time) (*ItemResponse, error) {
	if badgeType == "" {
		return nil, shared.NewDomainError("INVALID_BADGE", "Badge type cannot be empty")
	}

	item, err := s.itemRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	item.Badges = append(item.Badges, catalog.NewManualBadge(item.Code, badgeType, validFrom, validUpto, len(item.Badges)+1))
	if err := s.itemRepo.ReplaceBadges(ctx, item.Code, item.Badges); err != nil {
		return nil, err
	}

	resp := ToItemResponse(item)
	return &resp, nil
}

// save persists the item and dispatches its pending domain events. Event
// handler failures never fail the save.
func (s *ItemService) save(ctx context.Context, item *catalog.Item) error {
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return err
	}

	events := item.GetDomainEvents()
	item.ClearDomainEvents()
	if len(events) == 0 {
		return nil
	}
	if err := s.events.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish item events",
			zap.String("item_code", item.Code),
			zap.Error(err),
		)
	}
	return nil
}

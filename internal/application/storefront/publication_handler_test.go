package storefront

import (
	"context"
	"errors"
	"testing"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func publishedItemEvent(t *testing.T, code string, published bool) (*catalog.Item, *catalog.ItemUpdatedEvent) {
	t.Helper()
	item, err := catalog.NewItem(code, "Widget")
	require.NoError(t, err)
	item.ClearDomainEvents()
	item.PublishInWebsite = published
	return item, catalog.NewItemUpdatedEvent(item)
}

func TestPublicationHandler_CreatesWebsiteItem(t *testing.T) {
	itemRepo := new(MockItemRepository)
	wiRepo := new(MockWebsiteItemRepository)

	item, event := publishedItemEvent(t, "SKU-001", true)

	wiRepo.On("ExistsByItemCode", mock.Anything, "SKU-001").Return(false, nil)
	itemRepo.On("FindByCode", mock.Anything, "SKU-001").Return(item, nil)
	wiRepo.On("Save", mock.Anything, mock.MatchedBy(func(wi *catalog.WebsiteItem) bool {
		return wi.ItemCode == "SKU-001" && wi.Published && wi.Route == "products/sku-001"
	})).Return(nil)

	h := NewPublicationHandler(itemRepo, wiRepo, nil, zap.NewNop())

	require.NoError(t, h.Handle(context.Background(), event))
	wiRepo.AssertExpectations(t)
}

func TestPublicationHandler_SkipsUnpublishedItems(t *testing.T) {
	wiRepo := new(MockWebsiteItemRepository)
	_, event := publishedItemEvent(t, "SKU-001", false)

	h := NewPublicationHandler(new(MockItemRepository), wiRepo, nil, zap.NewNop())

	require.NoError(t, h.Handle(context.Background(), event))
	wiRepo.AssertNotCalled(t, "ExistsByItemCode", mock.Anything, mock.Anything)
}

func TestPublicationHandler_SkipsExistingWebsiteItem(t *testing.T) {
	wiRepo := new(MockWebsiteItemRepository)
	_, event := publishedItemEvent(t, "SKU-001", true)

	wiRepo.On("ExistsByItemCode", mock.Anything, "SKU-001").Return(true, nil)

	h := NewPublicationHandler(new(MockItemRepository), wiRepo, nil, zap.NewNop())

	require.NoError(t, h.Handle(context.Background(), event))
	wiRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPublicationHandler_SaveFailureIsNotFatal(t *testing.T) {
	itemRepo := new(MockItemRepository)
	wiRepo := new(MockWebsiteItemRepository)
	item, event := publishedItemEvent(t, "SKU-001", true)

	wiRepo.On("ExistsByItemCode", mock.Anything, "SKU-001").Return(false, nil)
	itemRepo.On("FindByCode", mock.Anything, "SKU-001").Return(item, nil)
	wiRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down"))

	h := NewPublicationHandler(itemRepo, wiRepo, nil, zap.NewNop())

	assert.NoError(t, h.Handle(context.Background(), event),
		"publication failures never propagate to the item save")
}

func TestPublicationHandler_RejectsWrongEventType(t *testing.T) {
	h := NewPublicationHandler(new(MockItemRepository), new(MockWebsiteItemRepository), nil, zap.NewNop())

	item, err := catalog.NewItem("SKU-001", "Widget")
	require.NoError(t, err)

	assert.Error(t, h.Handle(context.Background(), catalog.NewItemCreatedEvent(item)))
}

package storefront

import (
	"context"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// DiscountService answers the storefront consumer discount query
type DiscountService struct {
	websiteItemRepo catalog.WebsiteItemRepository
}

// NewDiscountService creates a new DiscountService
func NewDiscountService(websiteItemRepo catalog.WebsiteItemRepository) *DiscountService {
	return &DiscountService{websiteItemRepo: websiteItemRepo}
}

// GetConsumerDiscounts returns the consumer discount per requested item code
// from the linked website items. Codes without a website item map to null.
func (s *DiscountService) GetConsumerDiscounts(ctx context.Context, itemCodes []string) (map[string]*decimal.Decimal, error) {
	result := make(map[string]*decimal.Decimal, len(itemCodes))
	for _, code := range itemCodes {
		result[code] = nil
	}
	if len(itemCodes) == 0 {
		return result, nil
	}

	websiteItems, err := s.websiteItemRepo.FindByItemCodes(ctx, itemCodes)
	if err != nil {
		return nil, err
	}

	for i := range websiteItems {
		discount := websiteItems[i].ConsumerDiscount
		result[websiteItems[i].ItemCode] = &discount
	}

	return result, nil
}

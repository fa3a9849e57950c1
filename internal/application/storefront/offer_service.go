package storefront

import (
	"context"
	"sort"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
)

// OfferService answers the storefront offers query
type OfferService struct {
	websiteItemRepo catalog.WebsiteItemRepository
}

// NewOfferService creates a new OfferService
func NewOfferService(websiteItemRepo catalog.WebsiteItemRepository) *OfferService {
	return &OfferService{websiteItemRepo: websiteItemRepo}
}

// GetItemOffers returns the offers per requested item code via the linked
// website item, in idx order. Codes without offers map to an empty list.
func (s *OfferService) GetItemOffers(ctx context.Context, itemCodes []string) (map[string][]OfferResponse, error) {
	result := make(map[string][]OfferResponse, len(itemCodes))
	for _, code := range itemCodes {
		result[code] = []OfferResponse{}
	}
	if len(itemCodes) == 0 {
		return result, nil
	}

	websiteItems, err := s.websiteItemRepo.FindByItemCodes(ctx, itemCodes)
	if err != nil {
		return nil, err
	}

	for i := range websiteItems {
		offers := websiteItems[i].Offers
		sort.SliceStable(offers, func(a, b int) bool { return offers[a].Idx < offers[b].Idx })
		result[websiteItems[i].ItemCode] = toOfferResponses(offers)
	}

	return result, nil
}

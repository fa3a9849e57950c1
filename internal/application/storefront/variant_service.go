package storefront

import (
	"context"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// VariantService computes template-level aggregates across an item's
// variants
type VariantService struct {
	itemRepo        catalog.ItemRepository
	websiteItemRepo catalog.WebsiteItemRepository
	priceRepo       pricing.ItemPriceRepository
	settingsRepo    pricing.SettingsRepository
}

// NewVariantService creates a new VariantService
func NewVariantService(
	itemRepo catalog.ItemRepository,
	websiteItemRepo catalog.WebsiteItemRepository,
	priceRepo pricing.ItemPriceRepository,
	settingsRepo pricing.SettingsRepository,
) *VariantService {
	return &VariantService{
		itemRepo:        itemRepo,
		websiteItemRepo: websiteItemRepo,
		priceRepo:       priceRepo,
		settingsRepo:    settingsRepo,
	}
}

// TemplatePriceRange returns the min/max selling rate across a template's
// variants in the active price list. {0,0} when there are no priced variants.
func (s *VariantService) TemplatePriceRange(ctx context.Context, templateCode string) (*RateRangeResponse, error) {
	codes, err := s.itemRepo.VariantCodes(ctx, templateCode)
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return &RateRangeResponse{Min: decimal.Zero, Max: decimal.Zero}, nil
	}

	priceList, err := resolveActivePriceList(ctx, s.settingsRepo)
	if err != nil {
		return nil, err
	}

	prices, err := s.priceRepo.FindSellingForItems(ctx, codes, priceList)
	if err != nil {
		return nil, err
	}

	rates := make([]decimal.Decimal, 0, len(prices))
	for _, p := range prices {
		rates = append(rates, p.Rate)
	}
	return rateRange(rates), nil
}

// TemplateDiscountRange returns the min/max consumer discount across the
// website items of a template's variants. {0,0} when there are none.
func (s *VariantService) TemplateDiscountRange(ctx context.Context, templateCode string) (*RateRangeResponse, error) {
	codes, err := s.itemRepo.VariantCodes(ctx, templateCode)
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return &RateRangeResponse{Min: decimal.Zero, Max: decimal.Zero}, nil
	}

	websiteItems, err := s.websiteItemRepo.FindByItemCodes(ctx, codes)
	if err != nil {
		return nil, err
	}

	discounts := make([]decimal.Decimal, 0, len(websiteItems))
	for _, wi := range websiteItems {
		discounts = append(discounts, wi.ConsumerDiscount)
	}
	return rateRange(discounts), nil
}

// TemplateVariants returns per-variant details: attributes, selling price
// and consumer discount (both nullable when absent).
func (s *VariantService) TemplateVariants(ctx context.Context, templateCode string) ([]VariantResponse, error) {
	variants, err := s.itemRepo.FindVariants(ctx, templateCode)
	if err != nil {
		return nil, err
	}
	if len(variants) == 0 {
		return []VariantResponse{}, nil
	}

	codes := make([]string, 0, len(variants))
	for _, v := range variants {
		codes = append(codes, v.Code)
	}

	priceList, err := resolveActivePriceList(ctx, s.settingsRepo)
	if err != nil {
		return nil, err
	}

	prices, err := s.priceRepo.FindSellingForItems(ctx, codes, priceList)
	if err != nil {
		return nil, err
	}
	priceByCode := make(map[string]decimal.Decimal, len(prices))
	for _, p := range prices {
		priceByCode[p.ItemCode] = p.Rate
	}

	websiteItems, err := s.websiteItemRepo.FindByItemCodes(ctx, codes)
	if err != nil {
		return nil, err
	}
	discountByCode := make(map[string]decimal.Decimal, len(websiteItems))
	for _, wi := range websiteItems {
		discountByCode[wi.ItemCode] = wi.ConsumerDiscount
	}

	result := make([]VariantResponse, 0, len(variants))
	for i := range variants {
		v := &variants[i]
		attrs := make(map[string]string, len(v.Attributes))
		for _, a := range v.Attributes {
			attrs[a.Attribute] = a.AttributeValue
		}

		entry := VariantResponse{
			ItemCode:   v.Code,
			ItemName:   v.Name,
			Attributes: attrs,
		}
		if rate, ok := priceByCode[v.Code]; ok {
			entry.Price = &rate
		}
		if discount, ok := discountByCode[v.Code]; ok {
			entry.ConsumerDiscount = &discount
		}
		result = append(result, entry)
	}

	return result, nil
}

// rateRange reduces a list of values to its min/max pair, {0,0} when empty
func rateRange(values []decimal.Decimal) *RateRangeResponse {
	if len(values) == 0 {
		return &RateRangeResponse{Min: decimal.Zero, Max: decimal.Zero}
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v.LessThan(min) {
			min = v
		}
		if v.GreaterThan(max) {
			max = v
		}
	}
	return &RateRangeResponse{Min: min, Max: max}
}

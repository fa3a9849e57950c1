package storefront

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/pricing"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Custom filter keys handled as post-filters, never passed to the core
// listing query
const (
	filterKeyPriceFrom  = "price_from"
	filterKeyPriceTo    = "price_to"
	filterKeyOfferTitle = "offers_title"
	filterKeyBadges     = "badges"
)

// ProductFilterRequest is the storefront listing request. Field filter
// values may arrive as a single string or a list of strings.
type ProductFilterRequest struct {
	Brand        string                 `json:"brand"`
	FieldFilters map[string]interface{} `json:"field_filters"`
	Search       string                 `json:"search"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"page_size"`
}

// FilterService runs the storefront product listing query with the custom
// filter extensions (price bounds, offer titles, badge types) applied as
// post-filters over the returned page.
type FilterService struct {
	queryRepo    catalog.StorefrontQueryRepository
	settingsRepo pricing.SettingsRepository
	logger       *zap.Logger
}

// NewFilterService creates a new FilterService
func NewFilterService(
	queryRepo catalog.StorefrontQueryRepository,
	settingsRepo pricing.SettingsRepository,
	logger *zap.Logger,
) *FilterService {
	return &FilterService{
		queryRepo:    queryRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// FilterProducts runs the listing query. A top-level brand is folded into
// the field filters; custom keys are stripped before the core query runs and
// applied afterwards. When a post-filter narrows a non-empty page,
// total_count is rewritten to the narrowed length; an empty page keeps the
// core count.
func (s *FilterService) FilterProducts(ctx context.Context, req ProductFilterRequest) (*ProductFilterResponse, error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	filter.Search = req.Search

	fields, custom, err := splitFieldFilters(req.FieldFilters)
	if err != nil {
		return nil, err
	}
	if req.Brand != "" {
		fields["brand"] = appendUnique(fields["brand"], req.Brand)
	}

	items, total, err := s.queryRepo.SearchPublished(ctx, catalog.ListingQuery{
		Filter:     filter,
		ItemGroups: fields["item_group"],
		Brands:     fields["brand"],
	})
	if err != nil {
		return nil, err
	}

	filtered, postFiltered, err := s.applyPostFilters(ctx, items, custom)
	if err != nil {
		return nil, err
	}
	if postFiltered {
		total = int64(len(filtered))
	}

	cards := make([]ProductCard, 0, len(filtered))
	for i := range filtered {
		wi := &filtered[i]
		offers := wi.Offers
		sort.SliceStable(offers, func(a, b int) bool { return offers[a].Idx < offers[b].Idx })
		cards = append(cards, ProductCard{
			ItemCode:         wi.ItemCode,
			WebTitle:         wi.WebTitle,
			Route:            wi.Route,
			ItemGroup:        wi.ItemGroup,
			Brand:            wi.Brand,
			WebsiteImage:     wi.WebsiteImage,
			ConsumerDiscount: wi.ConsumerDiscount,
			Offers:           toOfferResponses(offers),
		})
	}

	return &ProductFilterResponse{
		Items:      cards,
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

// customFilters are the parsed custom filter values
type customFilters struct {
	priceFrom   *decimal.Decimal
	priceTo     *decimal.Decimal
	offerTitles []string
	badgeTypes  []string
}

func (c customFilters) hasPriceFilter() bool {
	return c.priceFrom != nil || c.priceTo != nil
}

// applyPostFilters narrows the returned page by the custom filter values.
// The second return value reports whether any post-filter was applied.
func (s *FilterService) applyPostFilters(ctx context.Context, items []catalog.WebsiteItem, custom customFilters) ([]catalog.WebsiteItem, bool, error) {
	applied := false

	if custom.hasPriceFilter() && len(items) > 0 {
		applied = true
		priceList, err := resolveActivePriceList(ctx, s.settingsRepo)
		if err != nil {
			return nil, false, err
		}
		codes := itemCodesOf(items)
		// inclusive bounds here, unlike the half-open facet buckets
		matching, err := s.queryRepo.ItemCodesWithPriceBetween(ctx, priceList, codes, custom.priceFrom, custom.priceTo)
		if err != nil {
			return nil, false, err
		}
		items = filterByItemCode(items, matching)
	}

	if len(custom.offerTitles) > 0 && len(items) > 0 {
		applied = true
		ids := make([]uuid.UUID, 0, len(items))
		for i := range items {
			ids = append(ids, items[i].ID)
		}
		matching, err := s.queryRepo.WebsiteItemIDsWithOffers(ctx, ids, custom.offerTitles)
		if err != nil {
			return nil, false, err
		}
		keep := make(map[uuid.UUID]bool, len(matching))
		for _, id := range matching {
			keep[id] = true
		}
		filtered := items[:0:0]
		for i := range items {
			if keep[items[i].ID] {
				filtered = append(filtered, items[i])
			}
		}
		items = filtered
	}

	if len(custom.badgeTypes) > 0 && len(items) > 0 {
		applied = true
		matching, err := s.queryRepo.ItemCodesWithBadges(ctx, itemCodesOf(items), custom.badgeTypes)
		if err != nil {
			return nil, false, err
		}
		items = filterByItemCode(items, matching)
	}

	return items, applied, nil
}

// splitFieldFilters separates the core field filters from the custom keys
func splitFieldFilters(raw map[string]interface{}) (map[string][]string, customFilters, error) {
	fields := make(map[string][]string, len(raw))
	var custom customFilters

	for key, value := range raw {
		switch key {
		case filterKeyPriceFrom:
			bound, err := parsePriceBound(key, value)
			if err != nil {
				return nil, custom, err
			}
			custom.priceFrom = bound
		case filterKeyPriceTo:
			bound, err := parsePriceBound(key, value)
			if err != nil {
				return nil, custom, err
			}
			custom.priceTo = bound
		case filterKeyOfferTitle:
			custom.offerTitles = toStringList(value)
		case filterKeyBadges:
			custom.badgeTypes = toStringList(value)
		default:
			if values := toStringList(value); len(values) > 0 {
				fields[key] = values
			}
		}
	}

	return fields, custom, nil
}

// parsePriceBound parses a price bound that may arrive as a string or number
func parsePriceBound(key string, value interface{}) (*decimal.Decimal, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		bound, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return &bound, nil
	case float64:
		bound := decimal.NewFromFloat(v)
		return &bound, nil
	default:
		return nil, fmt.Errorf("invalid %s value of type %T", key, value)
	}
}

// toStringList normalizes a filter value that may be a string or a list
func toStringList(value interface{}) []string {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func appendUnique(values []string, value string) []string {
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}

func itemCodesOf(items []catalog.WebsiteItem) []string {
	codes := make([]string, 0, len(items))
	for i := range items {
		codes = append(codes, items[i].ItemCode)
	}
	return codes
}

func filterByItemCode(items []catalog.WebsiteItem, keepCodes []string) []catalog.WebsiteItem {
	keep := make(map[string]bool, len(keepCodes))
	for _, code := range keepCodes {
		keep[code] = true
	}
	filtered := items[:0:0]
	for i := range items {
		if keep[items[i].ItemCode] {
			filtered = append(filtered, items[i])
		}
	}
	return filtered
}

package storefront

import (
	"context"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"go.uber.org/zap"
)

// WebsiteItemService handles admin-side edits to website items. Image
// changes go through the image validator; SYNC import bypasses it.
type WebsiteItemService struct {
	websiteItemRepo catalog.WebsiteItemRepository
	validator       *ImageValidator
	facets          *FacetService
	logger          *zap.Logger
}

// NewWebsiteItemService creates a new WebsiteItemService. The facet service
// may be nil.
func NewWebsiteItemService(
	websiteItemRepo catalog.WebsiteItemRepository,
	validator *ImageValidator,
	facets *FacetService,
	logger *zap.Logger,
) *WebsiteItemService {
	return &WebsiteItemService{
		websiteItemRepo: websiteItemRepo,
		validator:       validator,
		facets:          facets,
		logger:          logger,
	}
}

// SetImage sets the website image on a website item. An image that does not
// resolve to a public stored file is cleared; the warning explains why.
func (s *WebsiteItemService) SetImage(ctx context.Context, itemCode, imageURL string) (string, error) {
	item, err := s.websiteItemRepo.FindByItemCode(ctx, itemCode)
	if err != nil {
		return "", err
	}

	item.SetWebsiteImage(imageURL)

	warning, err := s.validator.Validate(ctx, item, false)
	if err != nil {
		return "", err
	}

	if err := s.websiteItemRepo.Save(ctx, item); err != nil {
		return "", err
	}

	return warning, nil
}

// Unpublish hides a website item from the storefront
func (s *WebsiteItemService) Unpublish(ctx context.Context, itemCode string) error {
	item, err := s.websiteItemRepo.FindByItemCode(ctx, itemCode)
	if err != nil {
		return err
	}

	item.Unpublish()
	if err := s.websiteItemRepo.Save(ctx, item); err != nil {
		return err
	}

	if s.facets != nil {
		s.facets.InvalidateCache(ctx)
	}
	return nil
}

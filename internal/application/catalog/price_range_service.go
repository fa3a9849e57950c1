package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
)

// FacetInvalidator drops cached facet payloads after catalog writes
type FacetInvalidator interface {
	InvalidateCache(ctx context.Context)
}

// PriceRangeService handles admin CRUD for the storefront price buckets
type PriceRangeService struct {
	rangeRepo catalog.CatalogPriceRangeRepository
	facets    FacetInvalidator
}

// NewPriceRangeService creates a new PriceRangeService. The invalidator may
// be nil.
func NewPriceRangeService(rangeRepo catalog.CatalogPriceRangeRepository, facets FacetInvalidator) *PriceRangeService {
	return &PriceRangeService{
		rangeRepo: rangeRepo,
		facets:    facets,
	}
}

// Create creates a new price range bucket
func (s *PriceRangeService) Create(ctx context.Context, req PriceRangeRequest) (*PriceRangeResponse, error) {
	r, err := catalog.NewCatalogPriceRange(req.Label, req.FromAmount, req.ToAmount, req.SortOrder)
	if err != nil {
		return nil, err
	}
	if req.Enabled != nil && !*req.Enabled {
		r.Disable()
	}

	if err := s.rangeRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	resp := ToPriceRangeResponse(r)
	return &resp, nil
}

// Update rewrites a price range bucket
func (s *PriceRangeService) Update(ctx context.Context, id uuid.UUID, req PriceRangeRequest) (*PriceRangeResponse, error) {
	r, err := s.rangeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.SetBounds(req.FromAmount, req.ToAmount); err != nil {
		return nil, err
	}
	r.Label = req.Label
	r.SortOrder = req.SortOrder
	if req.Enabled != nil {
		if *req.Enabled {
			r.Enable()
		} else {
			r.Disable()
		}
	}

	if err := s.rangeRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	resp := ToPriceRangeResponse(r)
	return &resp, nil
}

// List returns all price range buckets
func (s *PriceRangeService) List(ctx context.Context) ([]PriceRangeResponse, error) {
	ranges, err := s.rangeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PriceRangeResponse, 0, len(ranges))
	for i := range ranges {
		out = append(out, ToPriceRangeResponse(&ranges[i]))
	}
	return out, nil
}

// Delete removes a price range bucket
func (s *PriceRangeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.rangeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *PriceRangeService) invalidate(ctx context.Context) {
	if s.facets != nil {
		s.facets.InvalidateCache(ctx)
	}
}

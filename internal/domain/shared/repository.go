package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base persistence interface embedded by the catalog
// aggregate repositories
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Filter carries the paging and search parameters of a listing query
type Filter struct {
	Page     int
	PageSize int
	Search   string
}

// DefaultFilter returns the first page with the default page size
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
	}
}

// Offset returns the row offset for the current page
func (f Filter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	size := f.PageSize
	if size < 1 {
		size = 20
	}
	return (page - 1) * size
}

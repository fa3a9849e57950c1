package storefront

import (
	"context"
	"errors"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/pricing"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
)

// resolveActivePriceList returns the active selling price list. A missing
// settings row falls through to the standard default.
func resolveActivePriceList(ctx context.Context, repo pricing.SettingsRepository) (string, error) {
	settings, err := repo.Get(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return pricing.DefaultPriceList, nil
		}
		return "", err
	}
	return settings.ResolvePriceList(), nil
}

// Package setup runs the one-time lightweight bootstrap: minimal seed
// fixtures plus default storefront settings, with a cleanup step for
// heavyweight leftovers.
package setup

import (
	"context"
	"errors"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/pricing"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/setup"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"go.uber.org/zap"
)

// Seed fixtures per doctype, the minimal reference data a lightweight
// catalog site needs.
var defaultFixtures = map[string][]string{
	"Item Group":     {"All Item Groups", "Products", "Services"},
	"Territory":      {"All Territories", "Rest Of The World"},
	"Customer Group": {"All Customer Groups", "Individual", "Commercial"},
	"Supplier Group": {"All Supplier Groups", "Local", "Distributor"},
	"Mode of Payment": {
		"Cash", "Credit Card", "Bank Draft", "Wire Transfer",
	},
	"UOM":            {"Nos", "Unit", "Box", "Kg", "Litre", "Meter"},
	"Warehouse Type": {"Transit"},
}

// Heavyweight doctypes the cleanup step drops: manufacturing-style leftovers
// a catalog-only site never uses.
var cleanupDoctypes = []string{
	"Workspace",
	"Onboarding Step",
	"BOM",
	"Work Order",
}

// BootstrapResult summarizes a bootstrap run
type BootstrapResult struct {
	FixturesCreated int   `json:"fixtures_created"`
	FixturesSkipped int   `json:"fixtures_skipped"`
	SettingsCreated bool  `json:"settings_created"`
	CleanupRemoved  int64 `json:"cleanup_removed"`
}

// BootstrapService seeds the minimal site data. Every step is idempotent:
// existing records are left alone.
type BootstrapService struct {
	fixtureRepo  setup.FixtureRepository
	settingsRepo pricing.SettingsRepository
	logger       *zap.Logger
}

// NewBootstrapService creates a new BootstrapService
func NewBootstrapService(
	fixtureRepo setup.FixtureRepository,
	settingsRepo pricing.SettingsRepository,
	logger *zap.Logger,
) *BootstrapService {
	return &BootstrapService{
		fixtureRepo:  fixtureRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Run seeds fixtures, ensures the settings singleton, and cleans up
// heavyweight leftovers
func (s *BootstrapService) Run(ctx context.Context) (*BootstrapResult, error) {
	result := &BootstrapResult{}

	if err := s.seedFixtures(ctx, result); err != nil {
		return nil, err
	}
	if err := s.ensureSettings(ctx, result); err != nil {
		return nil, err
	}
	if err := s.cleanup(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info("bootstrap finished",
		zap.Int("fixtures_created", result.FixturesCreated),
		zap.Int("fixtures_skipped", result.FixturesSkipped),
		zap.Bool("settings_created", result.SettingsCreated),
		zap.Int64("cleanup_removed", result.CleanupRemoved),
	)

	return result, nil
}

func (s *BootstrapService) seedFixtures(ctx context.Context, result *BootstrapResult) error {
	for doctype, names := range defaultFixtures {
		for _, name := range names {
			exists, err := s.fixtureRepo.Exists(ctx, doctype, name)
			if err != nil {
				return err
			}
			if exists {
				result.FixturesSkipped++
				continue
			}

			record, err := setup.NewFixtureRecord(doctype, name)
			if err != nil {
				return err
			}
			if err := s.fixtureRepo.Save(ctx, record); err != nil {
				return err
			}
			result.FixturesCreated++
		}
	}
	return nil
}

// ensureSettings creates the default storefront settings singleton when the
// site has none
func (s *BootstrapService) ensureSettings(ctx context.Context, result *BootstrapResult) error {
	_, err := s.settingsRepo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	settings := &pricing.StorefrontSettings{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PriceList:         pricing.DefaultPriceList,
		DefaultCurrency:   "USD",
	}
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return err
	}
	result.SettingsCreated = true
	return nil
}

func (s *BootstrapService) cleanup(ctx context.Context, result *BootstrapResult) error {
	for _, doctype := range cleanupDoctypes {
		removed, err := s.fixtureRepo.DeleteByDoctype(ctx, doctype)
		if err != nil {
			return err
		}
		result.CleanupRemoved += removed
	}
	return nil
}

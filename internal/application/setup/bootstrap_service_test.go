package setup

import (
	"context"
	"testing"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/pricing"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/setup"
	"github.com/sahilrajputt12/catalog-extensions/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockFixtureRepository is a mock implementation of setup.FixtureRepository
type MockFixtureRepository struct {
	mock.Mock
}

func (m *MockFixtureRepository) Exists(ctx context.Context, doctype, name string) (bool, error) {
	args := m.Called(ctx, doctype, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockFixtureRepository) Save(ctx context.Context, record *setup.FixtureRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockFixtureRepository) FindByDoctype(ctx context.Context, doctype string) ([]setup.FixtureRecord, error) {
	args := m.Called(ctx, doctype)
	return args.Get(0).([]setup.FixtureRecord), args.Error(1)
}

func (m *MockFixtureRepository) DeleteByDoctype(ctx context.Context, doctype string) (int64, error) {
	args := m.Called(ctx, doctype)
	return args.Get(0).(int64), args.Error(1)
}

// MockSettingsRepository is a mock implementation of pricing.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*pricing.StorefrontSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.StorefrontSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *pricing.StorefrontSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func totalDefaultFixtures() int {
	total := 0
	for _, names := range defaultFixtures {
		total += len(names)
	}
	return total
}

func TestBootstrapService_FreshSite(t *testing.T) {
	fixtures := new(MockFixtureRepository)
	settings := new(MockSettingsRepository)

	fixtures.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	fixtures.On("Save", mock.Anything, mock.Anything).Return(nil)
	fixtures.On("DeleteByDoctype", mock.Anything, mock.Anything).Return(int64(0), nil)
	settings.On("Get", mock.Anything).Return(nil, shared.ErrNotFound)
	settings.On("Save", mock.Anything, mock.MatchedBy(func(s *pricing.StorefrontSettings) bool {
		return s.PriceList == pricing.DefaultPriceList && s.DefaultCurrency == "USD"
	})).Return(nil)

	svc := NewBootstrapService(fixtures, settings, zap.NewNop())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, totalDefaultFixtures(), result.FixturesCreated)
	assert.Equal(t, 0, result.FixturesSkipped)
	assert.True(t, result.SettingsCreated)
	settings.AssertExpectations(t)
}

func TestBootstrapService_SecondRunIsIdempotent(t *testing.T) {
	fixtures := new(MockFixtureRepository)
	settings := new(MockSettingsRepository)

	fixtures.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	fixtures.On("DeleteByDoctype", mock.Anything, mock.Anything).Return(int64(0), nil)
	settings.On("Get", mock.Anything).Return(&pricing.StorefrontSettings{PriceList: "Retail"}, nil)

	svc := NewBootstrapService(fixtures, settings, zap.NewNop())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.FixturesCreated)
	assert.Equal(t, totalDefaultFixtures(), result.FixturesSkipped)
	assert.False(t, result.SettingsCreated)
	fixtures.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	settings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestBootstrapService_CleanupCountsRemovals(t *testing.T) {
	fixtures := new(MockFixtureRepository)
	settings := new(MockSettingsRepository)

	fixtures.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	settings.On("Get", mock.Anything).Return(&pricing.StorefrontSettings{}, nil)

	fixtures.On("DeleteByDoctype", mock.Anything, "Workspace").Return(int64(3), nil)
	fixtures.On("DeleteByDoctype", mock.Anything, "Onboarding Step").Return(int64(12), nil)
	fixtures.On("DeleteByDoctype", mock.Anything, "BOM").Return(int64(0), nil)
	fixtures.On("DeleteByDoctype", mock.Anything, "Work Order").Return(int64(1), nil)

	svc := NewBootstrapService(fixtures, settings, zap.NewNop())

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(16), result.CleanupRemoved)
	fixtures.AssertExpectations(t)
}

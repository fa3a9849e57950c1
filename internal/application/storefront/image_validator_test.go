package storefront

import (
	"context"
	"testing"

	"github.com/sahilrajputt12/catalog-extensions/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func websiteItemWithImage(t *testing.T, image string) *catalog.WebsiteItem {
	t.Helper()
	item, err := catalog.NewItem("SKU-001", "Widget")
	require.NoError(t, err)
	wi, err := catalog.NewWebsiteItemFromItem(item)
	require.NoError(t, err)
	wi.WebsiteImage = image
	return wi
}

func TestImageValidator_EmptyImageIsValid(t *testing.T) {
	v := NewImageValidator(&fakeFileStore{}, zap.NewNop())

	warning, err := v.Validate(context.Background(), websiteItemWithImage(t, ""), false)
	require.NoError(t, err)
	assert.Empty(t, warning)
}

func TestImageValidator_ExternalURLPassesAsIs(t *testing.T) {
	v := NewImageValidator(&fakeFileStore{}, zap.NewNop())
	wi := websiteItemWithImage(t, "https://cdn.example.com/widget.png")

	warning, err := v.Validate(context.Background(), wi, false)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, "https://cdn.example.com/widget.png", wi.WebsiteImage)
}

func TestImageValidator_StoredFileResolves(t *testing.T) {
	v := NewImageValidator(&fakeFileStore{files: map[string]bool{"widget.png": true}}, zap.NewNop())
	wi := websiteItemWithImage(t, "/files/widget.png")

	warning, err := v.Validate(context.Background(), wi, false)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, "/files/widget.png", wi.WebsiteImage)
}

func TestImageValidator_UnresolvableImageIsCleared(t *testing.T) {
	v := NewImageValidator(&fakeFileStore{}, zap.NewNop())
	wi := websiteItemWithImage(t, "/files/missing.png")

	warning, err := v.Validate(context.Background(), wi, false)
	require.NoError(t, err)
	assert.Contains(t, warning, "missing.png")
	assert.Empty(t, wi.WebsiteImage)
}

func TestImageValidator_SkippedDuringImport(t *testing.T) {
	v := NewImageValidator(&fakeFileStore{}, zap.NewNop())
	wi := websiteItemWithImage(t, "/files/missing.png")

	warning, err := v.Validate(context.Background(), wi, true)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, "/files/missing.png", wi.WebsiteImage)
}

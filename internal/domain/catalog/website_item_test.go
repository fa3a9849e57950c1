package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWebsiteItemFromItem(t *testing.T) {
	item, err := NewItem("SKU 001/A", "Widget")
	require.NoError(t, err)
	item.ItemGroup = "Products"
	item.Brand = "Acme"
	item.ConsumerDiscount = decimal.NewFromInt(10)

	wi, err := NewWebsiteItemFromItem(item)
	require.NoError(t, err)

	assert.Equal(t, "SKU 001/A", wi.ItemCode)
	assert.Equal(t, "Widget", wi.WebTitle)
	assert.Equal(t, "products/sku-001-a", wi.Route)
	assert.Equal(t, "Products", wi.ItemGroup)
	assert.Equal(t, "Acme", wi.Brand)
	assert.True(t, wi.Published)
	assert.True(t, wi.ConsumerDiscount.Equal(decimal.NewFromInt(10)))
	require.Len(t, wi.GetDomainEvents(), 1)
	assert.Equal(t, EventWebsiteItemPublished, wi.GetDomainEvents()[0].EventType())
}

func TestNewWebsiteItemFromItem_NilItem(t *testing.T) {
	_, err := NewWebsiteItemFromItem(nil)
	assert.Error(t, err)
}

func TestWebsiteItem_HasExternalImage(t *testing.T) {
	wi := &WebsiteItem{}

	wi.SetWebsiteImage("https://cdn.example.com/img.png")
	assert.True(t, wi.HasExternalImage())

	wi.SetWebsiteImage("http://cdn.example.com/img.png")
	assert.True(t, wi.HasExternalImage())

	wi.SetWebsiteImage("/files/img.png")
	assert.False(t, wi.HasExternalImage())

	wi.ClearWebsiteImage()
	assert.False(t, wi.HasExternalImage())
	assert.Empty(t, wi.WebsiteImage)
}

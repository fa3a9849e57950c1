package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorefrontSettings_ResolvePriceList(t *testing.T) {
	var nilSettings *StorefrontSettings
	assert.Equal(t, DefaultPriceList, nilSettings.ResolvePriceList())

	s := &StorefrontSettings{}
	assert.Equal(t, DefaultPriceList, s.ResolvePriceList())

	s.SellingPriceList = "Retail Selling"
	assert.Equal(t, "Retail Selling", s.ResolvePriceList())

	s.PriceList = "Web Selling"
	assert.Equal(t, "Web Selling", s.ResolvePriceList(), "storefront price list wins over selling default")
}

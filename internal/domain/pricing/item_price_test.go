package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemPrice(t *testing.T) {
	p, err := NewItemPrice("SKU-001", "Standard Selling", decimal.NewFromInt(100), "")
	require.NoError(t, err)
	assert.True(t, p.Selling)
	assert.Equal(t, "USD", p.Currency)

	_, err = NewItemPrice("", "Standard Selling", decimal.Zero, "USD")
	assert.Error(t, err)

	_, err = NewItemPrice("SKU-001", "", decimal.Zero, "USD")
	assert.Error(t, err)

	_, err = NewItemPrice("SKU-001", "Standard Selling", decimal.NewFromInt(-1), "USD")
	assert.Error(t, err)
}

func TestItemPrice_SetRate_MarksSelling(t *testing.T) {
	p, err := NewItemPrice("SKU-001", "Standard Selling", decimal.NewFromInt(100), "USD")
	require.NoError(t, err)
	p.Selling = false

	require.NoError(t, p.SetRate(decimal.NewFromInt(80)))
	assert.True(t, p.Selling, "rewriting a rate must re-mark the row as selling")
	assert.True(t, p.Rate.Equal(decimal.NewFromInt(80)))

	assert.Error(t, p.SetRate(decimal.NewFromInt(-5)))
}

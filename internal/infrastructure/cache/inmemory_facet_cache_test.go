package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryFacetCache_GetSet(t *testing.T) {
	c := NewInMemoryFacetCache()
	ctx := context.Background()

	_, found, err := c.Get(ctx, "facets")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "facets", []byte(`{"brands":[]}`), time.Minute))

	data, found, err := c.Get(ctx, "facets")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"brands":[]}`), data)
}

func TestInMemoryFacetCache_Expiry(t *testing.T) {
	c := NewInMemoryFacetCache()
	ctx := context.Background()

	now := time.Now()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "facets", []byte("x"), time.Minute))

	now = now.Add(2 * time.Minute)

	_, found, err := c.Get(ctx, "facets")
	require.NoError(t, err)
	assert.False(t, found, "expired entry must not be returned")
}

func TestInMemoryFacetCache_Invalidate(t *testing.T) {
	c := NewInMemoryFacetCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), 0))

	require.NoError(t, c.Invalidate(ctx))

	_, found, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)
}

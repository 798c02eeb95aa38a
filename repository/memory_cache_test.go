package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(0)

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v"))
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	cache := NewMemoryCache(time.Minute)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", "v"))

	now = now.Add(30 * time.Second)
	_, ok := cache.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	var cache CacheRepository = NoopCache{}

	require.NoError(t, cache.Set(ctx, "k", "v"))
	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCache_SetSweepsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	cache := NewMemoryCache(time.Hour)
	cache.now = func() time.Time { return now }

	for i := range 10_000 {
		require.NoError(t, cache.Set(ctx, fmt.Sprintf("k%d", i), "v"))
	}
	assert.Equal(t, 10_000, cache.Len())

	now = now.Add(48 * time.Hour)
	require.NoError(t, cache.Set(ctx, "fresh", "v"))

	assert.Equal(t, 1, cache.Len())
	val, ok := cache.Get(ctx, "fresh")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryCache_EntryCap(t *testing.T) {
	ctx := context.Background()

	cache := NewMemoryCache(0)
	cache.maxEntries = 3

	for i := range 10 {
		require.NoError(t, cache.Set(ctx, fmt.Sprintf("k%d", i), "v"))
	}
	assert.Equal(t, 3, cache.Len())

	_, ok := cache.Get(ctx, "k9")
	assert.True(t, ok, "the newest entry is always kept")

	// overwriting an existing key does not evict
	require.NoError(t, cache.Set(ctx, "k9", "w"))
	assert.Equal(t, 3, cache.Len())
}

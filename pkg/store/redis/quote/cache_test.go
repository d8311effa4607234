package quote

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkt-tools/quote-forge/pkg/models/domain"
)

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	cache, err := NewCache(client)
	require.NoError(t, err)
	return cache, srv
}

func TestCache_PutGet(t *testing.T) {
	cache, srv := setupCache(t)
	ctx := context.Background()

	rec := domain.QuoteRecord{
		ID: "q-1",
		Calculation: domain.QuoteCalculation{
			MonthlyManagement: 1894,
			PaybackPeriod:     "1-3 meses",
		},
	}

	require.NoError(t, cache.Put(ctx, rec, time.Hour))

	got, err := cache.Get(ctx, "q-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, 1894.0, got.Calculation.MonthlyManagement)

	// key expires with the quote's validity
	srv.FastForward(2 * time.Hour)
	got, err = cache.Get(ctx, "q-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_GetMiss(t *testing.T) {
	cache, _ := setupCache(t)

	got, err := cache.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_PutExpiredTTL(t *testing.T) {
	cache, srv := setupCache(t)

	err := cache.Put(context.Background(), domain.QuoteRecord{ID: "q-2"}, -time.Minute)
	require.NoError(t, err)
	assert.False(t, srv.Exists("quote:q-2"))
}

func TestNewCache_NilClient(t *testing.T) {
	_, err := NewCache(nil)
	assert.Error(t, err)
}

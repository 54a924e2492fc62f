package redis_a_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/alezcf/ProyectoGestion-sub000/internal/adapters/redis_adapter"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
	"github.com/alezcf/ProyectoGestion-sub000/test/helpers"
)

func newTestCache(t *testing.T) (ports.CacheRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger()), mr
}

func TestCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{
			name:  "stores_and_retrieves_string",
			key:   "test:string",
			value: "test value",
		},
		{
			name:  "stores_and_retrieves_slice",
			key:   "test:slice",
			value: []string{"item1", "item2", "item3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cache.Set(ctx, tt.key, tt.value)
			require.NoError(t, err)

			if s, ok := tt.value.(string); ok {
				var got string
				require.NoError(t, cache.Get(ctx, tt.key, &got))
				assert.Equal(t, s, got)
			} else {
				var got []string
				require.NoError(t, cache.Get(ctx, tt.key, &got))
				assert.Equal(t, tt.value, got)
			}
		})
	}
}

func TestCache_Get_MissReturnsCacheMiss(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	var dest string
	err := cache.Get(ctx, "does:not:exist", &dest)
	assert.ErrorIs(t, err, redis_a.ErrCacheMiss)
}

func TestCache_SetWithTTL(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	require.NoError(t, cache.SetWithTTL(ctx, "test:ttl", "value", time.Minute))

	ttl, err := cache.TTL(ctx, "test:ttl")
	require.NoError(t, err)
	assert.InDelta(t, time.Minute, ttl, float64(time.Second))

	// After the TTL passes the key is gone.
	mr.FastForward(2 * time.Minute)
	var dest string
	assert.ErrorIs(t, cache.Get(ctx, "test:ttl", &dest), redis_a.ErrCacheMiss)
}

func TestCache_Delete(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	require.NoError(t, cache.Set(ctx, "test:a", "1"))
	require.NoError(t, cache.Set(ctx, "test:b", "2"))

	require.NoError(t, cache.Delete(ctx, "test:a", "test:b"))

	exists, err := cache.Exists(ctx, "test:a")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting nothing is a no-op.
	require.NoError(t, cache.Delete(ctx))
}

func TestCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	require.NoError(t, cache.Set(ctx, "dashboard:stock", "summary"))
	require.NoError(t, cache.Set(ctx, "dashboard:other", "data"))
	require.NoError(t, cache.Set(ctx, "monitor:sweep:lock", "held"))

	require.NoError(t, cache.DeletePattern(ctx, "dashboard:*"))

	exists, err := cache.Exists(ctx, "dashboard:stock")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = cache.Exists(ctx, "monitor:sweep:lock")
	require.NoError(t, err)
	assert.True(t, exists, "non-matching keys must survive the pattern delete")
}

func TestCache_GetOrSet(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	fetchCalls := 0
	fetch := func() (interface{}, error) {
		fetchCalls++
		return map[string]int{"stock": 120}, nil
	}

	var first map[string]int
	require.NoError(t, cache.GetOrSet(ctx, "dashboard:stock", &first, fetch, time.Minute))
	assert.Equal(t, 120, first["stock"])
	assert.Equal(t, 1, fetchCalls)

	// Second call is served from cache.
	var second map[string]int
	require.NoError(t, cache.GetOrSet(ctx, "dashboard:stock", &second, fetch, time.Minute))
	assert.Equal(t, 120, second["stock"])
	assert.Equal(t, 1, fetchCalls)
}

func TestCache_GetOrSet_FetchErrorPropagates(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	var dest map[string]int
	err := cache.GetOrSet(ctx, "dashboard:stock", &dest, func() (interface{}, error) {
		return nil, errors.New("database connection failed")
	}, time.Minute)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database connection failed")
}

func TestCache_SetNX(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	acquired, err := cache.SetNX(ctx, "monitor:sweep:lock", time.Now().Unix(), time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	// Second acquisition fails while the lock is held.
	acquired, err = cache.SetNX(ctx, "monitor:sweep:lock", time.Now().Unix(), time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	// Lock expires and can be taken again.
	mr.FastForward(2 * time.Minute)
	acquired, err = cache.SetNX(ctx, "monitor:sweep:lock", time.Now().Unix(), time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestCache_Flush(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	require.NoError(t, cache.Set(ctx, "test:a", "1"))
	require.NoError(t, cache.Flush(ctx))

	exists, err := cache.Exists(ctx, "test:a")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCache_Ping(t *testing.T) {
	cache, mr := newTestCache(t)

	require.NoError(t, cache.Ping(context.Background()))

	mr.Close()
	assert.Error(t, cache.Ping(context.Background()))
}

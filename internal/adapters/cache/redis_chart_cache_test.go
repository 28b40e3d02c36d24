package cache

import (
	"context"
	"jyotish-service/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*RedisChartCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisChartCache(client, ttl), mr
}

func TestRedisChartCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, time.Hour)

	ch := sampleChart(5)
	key := ch.Birth.Key()
	require.NoError(t, c.PutMany(ctx, map[string]*domain.Chart{key: ch}))

	got, err := c.GetMany(ctx, []string{key, "missing"})
	require.NoError(t, err)
	if diff := cmp.Diff(map[string]*domain.Chart{key: ch}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, mr.Exists(defaultRedisPrefix+key))
	assert.Equal(t, time.Hour, mr.TTL(defaultRedisPrefix+key))
}

func TestRedisChartCacheExpires(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, time.Minute)

	ch := sampleChart(6)
	key := ch.Birth.Key()
	require.NoError(t, c.PutMany(ctx, map[string]*domain.Chart{key: ch}))

	mr.FastForward(2 * time.Minute)

	got, err := c.GetMany(ctx, []string{key})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisChartCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, 0)

	require.NoError(t, mr.Set(defaultRedisPrefix+"bad", "{not json"))

	_, err := c.GetMany(ctx, []string{"bad"})
	assert.Error(t, err)
}

func TestRedisChartCacheUnavailable(t *testing.T) {
	ctx := context.Background()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer func() { _ = client.Close() }()
	c := NewRedisChartCache(client, 0)
	mr.Close()

	_, err = c.GetMany(ctx, []string{"k"})
	assert.Error(t, err)
	assert.Error(t, c.PutMany(ctx, map[string]*domain.Chart{"k": sampleChart(0)}))
}

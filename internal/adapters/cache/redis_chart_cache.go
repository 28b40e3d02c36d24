package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"jyotish-service/internal/domain"
	"jyotish-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "jyotish:chart:"

// RedisChartCache keeps charts as JSON strings with a TTL.
type RedisChartCache struct {
	Client *redis.Client
	TTL    time.Duration
	Prefix string
}

// NewRedisChartCache returns a cache on client; ttl 0 keeps entries forever.
func NewRedisChartCache(client *redis.Client, ttl time.Duration) *RedisChartCache {
	return &RedisChartCache{Client: client, TTL: ttl, Prefix: defaultRedisPrefix}
}

func (r *RedisChartCache) key(k string) string { return r.Prefix + k }

// Fetch cached charts with a single MGET.
func (r *RedisChartCache) GetMany(
	ctx context.Context,
	keys []string,
) (_ map[string]*domain.Chart, err error) {
	defer obs.Time(ctx, "chart.redis.GetMany")(&err)

	if r.Client == nil {
		return nil, errors.New("chart cache: redis client is nil")
	}

	uniq := uniqueKeys(keys)
	if len(uniq) == 0 {
		return map[string]*domain.Chart{}, nil
	}

	full := make([]string, len(uniq))
	for i, k := range uniq {
		full[i] = r.key(k)
	}

	vals, err := r.Client.MGet(ctx, full...).Result()
	if err != nil {
		return nil, fmt.Errorf("get chart cache: redis mget: %w", err)
	}

	out := make(map[string]*domain.Chart, len(uniq))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}

		var c domain.Chart
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return nil, fmt.Errorf("get chart cache: decode key=%q: %w", uniq[i], err)
		}
		out[uniq[i]] = &c
	}

	return out, nil
}

// Store charts in one pipelined round trip.
func (r *RedisChartCache) PutMany(ctx context.Context, charts map[string]*domain.Chart) (err error) {
	defer obs.Time(ctx, "chart.redis.PutMany")(&err)

	if r.Client == nil {
		return errors.New("chart cache: redis client is nil")
	}

	if len(charts) == 0 {
		return nil
	}

	pipe := r.Client.Pipeline()
	for key, c := range charts {
		if strings.TrimSpace(key) == "" {
			return errors.New("insert chart cache: empty birth key")
		}
		if c == nil {
			return fmt.Errorf("insert chart cache key=%q: nil chart", key)
		}

		payload, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("insert chart cache key=%q: encode: %w", key, err)
		}
		pipe.Set(ctx, r.key(key), payload, r.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert chart cache: redis pipeline: %w", err)
	}

	return nil
}

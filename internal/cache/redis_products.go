package cache

import (
	"context"
	"encoding/json"
	"time"

	"storefront-api/internal/domain"
	"storefront-api/internal/service"

	"github.com/redis/go-redis/v9"
)

const top5Key = "products:top5"

// RedisProductCache keeps the popular-products ranking warm. Every failure
// path degrades to a cache miss; the store remains the source of truth.
type RedisProductCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisProductCache(rdb *redis.Client, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{rdb: rdb, ttl: ttl}
}

func (c *RedisProductCache) GetTop5(ctx context.Context) ([]domain.PopularProduct, bool) {
	raw, err := c.rdb.Get(ctx, top5Key).Bytes()
	if err != nil {
		return nil, false
	}
	var rows []domain.PopularProduct
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (c *RedisProductCache) SetTop5(ctx context.Context, rows []domain.PopularProduct) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, top5Key, raw, c.ttl).Err()
}

func (c *RedisProductCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, top5Key).Err()
}

var _ service.ProductCache = (*RedisProductCache)(nil)

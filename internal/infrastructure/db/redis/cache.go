package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/eshop-platform/eshop-api/internal/api/metrics"
	"github.com/eshop-platform/eshop-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// ProductCache is a read-through JSON cache for product-by-id lookups.
// Cache failures are logged and treated as misses; the store stays the
// source of truth.
type ProductCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client, log zerolog.Logger) *ProductCache {
	return &ProductCache{client: client, log: log}
}

func (c *ProductCache) Get(ctx context.Context, id string) (*domain.Product, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("product_id", id).Msg("cache get failed")
		}
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		c.log.Warn().Err(err).Str("product_id", id).Msg("cache entry corrupt, dropping")
		_ = c.client.Del(ctx, c.key(id)).Err()
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return &p, true
}

func (c *ProductCache) Set(ctx context.Context, p *domain.Product) {
	raw, err := json.Marshal(p)
	if err != nil {
		c.log.Warn().Err(err).Str("product_id", p.ID).Msg("cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, c.key(p.ID), raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("product_id", p.ID).Msg("cache set failed")
	}
}

func (c *ProductCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn().Err(err).Str("product_id", id).Msg("cache invalidate failed")
	}
}

func (c *ProductCache) key(id string) string {
	return "product:" + id
}

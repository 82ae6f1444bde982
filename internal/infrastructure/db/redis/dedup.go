package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// AlertDedup provides idempotency checks for low-stock alerts backed by
// Redis. Key format: alert:<product_id>:<sku>:<stock>
type AlertDedup struct {
	client *redis.Client
}

// NewAlertDedup creates an AlertDedup wrapping the given Redis client.
func NewAlertDedup(client *redis.Client) *AlertDedup {
	return &AlertDedup{client: client}
}

// IsDuplicate reports whether this exact alert has already been recorded.
func (d *AlertDedup) IsDuplicate(ctx context.Context, productID, sku string, stock int) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(productID, sku, stock)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this alert has been processed (expires after dedupTTL).
func (d *AlertDedup) Mark(ctx context.Context, productID, sku string, stock int) error {
	return d.client.Set(ctx, d.key(productID, sku, stock), "1", dedupTTL).Err()
}

func (d *AlertDedup) key(productID, sku string, stock int) string {
	return fmt.Sprintf("alert:%s:%s:%d", productID, sku, stock)
}

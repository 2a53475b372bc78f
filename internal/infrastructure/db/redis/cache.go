package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parceltrack/carrier-gateway/internal/core/domain"
)

// ResultCache caches carrier tracking results in Redis.
// Key format: tracking:<carrier>:<tracking_number>
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a ResultCache wrapping the given Redis client.
// Entries expire after ttl.
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{client: client, ttl: ttl}
}

// Get returns the cached result for the shipment and true on a hit.
func (c *ResultCache) Get(ctx context.Context, carrier, trackingNumber string) (*domain.TrackingResult, bool, error) {
	raw, err := c.client.Get(ctx, c.key(carrier, trackingNumber)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var result domain.TrackingResult
	if err := json.Unmarshal(raw, &result); err != nil {
		// Stale or corrupt entry: treat as a miss, the caller re-fetches.
		return nil, false, nil
	}
	return &result, true, nil
}

// Set stores the result under its carrier and tracking number.
func (c *ResultCache) Set(ctx context.Context, result *domain.TrackingResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(result.Carrier, result.TrackingNumber), raw, c.ttl).Err()
}

func (c *ResultCache) key(carrier, trackingNumber string) string {
	return fmt.Sprintf("tracking:%s:%s", carrier, trackingNumber)
}

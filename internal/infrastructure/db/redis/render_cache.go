package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRenderTTL = 24 * time.Hour

// RenderCache stores rendered timeline markup in Redis.
// Keys are supplied by the caller (timeline:<itinerary_id>:<content_hash>).
type RenderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRenderCache creates a RenderCache; ttl <= 0 selects defaultRenderTTL.
func NewRenderCache(client *redis.Client, ttl time.Duration) *RenderCache {
	if ttl <= 0 {
		ttl = defaultRenderTTL
	}
	return &RenderCache{client: client, ttl: ttl}
}

// Get returns the cached markup for key, reporting whether it was present.
func (c *RenderCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("render cache get: %w", err)
	}
	return v, true, nil
}

// Set stores markup under key (expires after the configured ttl).
func (c *RenderCache) Set(ctx context.Context, key, markup string) error {
	if err := c.client.Set(ctx, key, markup, c.ttl).Err(); err != nil {
		return fmt.Errorf("render cache set: %w", err)
	}
	return nil
}

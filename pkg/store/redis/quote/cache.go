// Package quote caches generated quotes in Redis for the validity window
// of the quote, keeping repeat lookups off PostgreSQL.
package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mkt-tools/quote-forge/pkg/models/domain"
)

const keyPrefix = "quote:"

type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) (*Cache, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}
	return &Cache{client: client}, nil
}

func (c *Cache) Put(ctx context.Context, rec domain.QuoteRecord, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal quote: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+rec.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("cache quote: %w", err)
	}
	return nil
}

// Get returns (nil, nil) on a cache miss.
func (c *Cache) Get(ctx context.Context, id string) (*domain.QuoteRecord, error) {
	payload, err := c.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cached quote: %w", err)
	}

	var rec domain.QuoteRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal cached quote: %w", err)
	}
	return &rec, nil
}

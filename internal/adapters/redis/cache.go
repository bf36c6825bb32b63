package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rafaelleal24/orderplacement/internal/core/logger"
	"github.com/rafaelleal24/orderplacement/internal/core/port"
)

// Cache stores values of T as JSON under "<prefix>:<key>". A miss, and an
// entry that no longer decodes into T, both read as (nil, nil).
type Cache[T any] struct {
	client *Client
	prefix string
}

func NewCache[T any](client *Client, prefix string) port.CachePort[T] {
	return &Cache[T]{client: client, prefix: prefix}
}

func (c *Cache[T]) key(key string) string {
	return fmt.Sprintf("%s:%s", c.prefix, key)
}

func (c *Cache[T]) Get(ctx context.Context, key string) (*T, error) {
	data, err := c.client.Get(ctx, c.key(key))
	if errors.Is(err, ErrMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		logger.Warn(ctx, "cache: discarding undecodable entry", map[string]any{
			"key":   c.key(key),
			"error": err.Error(),
		})
		return nil, nil
	}
	return &value, nil
}

func (c *Cache[T]) Set(ctx context.Context, key string, value *T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	return c.client.Set(ctx, c.key(key), data, ttl)
}

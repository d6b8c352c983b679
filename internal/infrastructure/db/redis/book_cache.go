package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bookstore/catalog-api/internal/core/domain"
)

const DefaultBookTTL = 5 * time.Minute

// BookCache is a read-through cache for single books backed by Redis.
// Key format: book:<id>
type BookCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBookCache wraps the given client. A non-positive ttl falls back to
// DefaultBookTTL.
func NewBookCache(client *redis.Client, ttl time.Duration) *BookCache {
	if ttl <= 0 {
		ttl = DefaultBookTTL
	}
	return &BookCache{client: client, ttl: ttl}
}

// Get returns the cached book, or nil without error on a miss.
func (c *BookCache) Get(ctx context.Context, id string) (*domain.Book, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			cacheLookups.WithLabelValues("miss").Inc()
			return nil, nil
		}
		cacheLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("book cache get: %w", err)
	}

	var b domain.Book
	if err := json.Unmarshal(raw, &b); err != nil {
		// Drop undecodable entries so the next read repopulates them.
		_ = c.client.Del(ctx, c.key(id)).Err()
		cacheLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("book cache decode: %w", err)
	}
	cacheLookups.WithLabelValues("hit").Inc()
	return &b, nil
}

func (c *BookCache) Set(ctx context.Context, b *domain.Book) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("book cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(b.ID), raw, c.ttl).Err()
}

func (c *BookCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *BookCache) key(id string) string {
	return "book:" + id
}

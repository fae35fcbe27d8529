// README: Ephemeral response cache keyed by prompt hash (Redis or in-memory).
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// ResponseCache stores raw model responses so identical planning requests can
// skip the provider call. Entries expire; nothing here is user-data
// persistence.
type ResponseCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// PromptKey derives a stable cache key from the outbound prompt.
func PromptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "wander:plan:" + hex.EncodeToString(sum[:])
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects a cache to the Redis instance at addr.
func NewRedisCache(addr string, ttl time.Duration) ResponseCache {
	return &redisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		// Treat miss and transport errors alike; the caller regenerates.
		return "", false
	}
	return val, true
}

func (c *redisCache) Set(ctx context.Context, key, value string) {
	c.client.Set(ctx, key, value, c.ttl)
}

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache builds an in-process cache for deployments without Redis.
func NewMemoryCache(ttl time.Duration) ResponseCache {
	return &memoryCache{store: gocache.New(ttl, 2*ttl)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (c *memoryCache) Set(_ context.Context, key, value string) {
	c.store.SetDefault(key, value)
}

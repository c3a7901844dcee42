package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const defaultCacheTTL = 5 * time.Minute

// ContentCache caches rendered public content list responses.
// Key format: content:<collection>
//
// The cache is strictly best-effort: every redis failure degrades to a
// miss and the caller reads the store. Mutations invalidate the key so
// the public site never serves stale content longer than one TTL.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewContentCache creates a ContentCache wrapping the given client.
// A non-positive ttl falls back to the default.
func NewContentCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *ContentCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ContentCache{client: client, ttl: ttl, log: log}
}

func (c *ContentCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return nil, false
	}
	return payload, true
}

func (c *ContentCache) Set(ctx context.Context, key string, payload []byte) {
	if err := c.client.Set(ctx, c.key(key), payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (c *ContentCache) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
	}
}

func (c *ContentCache) key(key string) string {
	return "content:" + key
}

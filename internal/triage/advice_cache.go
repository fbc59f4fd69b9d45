package triage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/healthbridge/telemed-triage/pkg/logging"
)

const adviceCacheKeyPrefix = "triage:advice:"

// RedisAdviceCache caches live advice responses in Redis. Backend
// failures are logged and treated as misses so the pipeline's fallback
// chain is never disturbed by the cache.
type RedisAdviceCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

// NewRedisAdviceCache creates a Redis-backed advice cache.
func NewRedisAdviceCache(client *redis.Client, ttl time.Duration, logger *logging.Logger) *RedisAdviceCache {
	if client == nil {
		panic("triage: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &RedisAdviceCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached advice for the query, if any.
func (c *RedisAdviceCache) Get(ctx context.Context, query string) (string, bool) {
	val, err := c.client.Get(ctx, adviceCacheKey(query)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("advice cache read failed", "error", err)
		}
		return "", false
	}
	return val, true
}

// Set stores the advice for the query with the configured TTL.
func (c *RedisAdviceCache) Set(ctx context.Context, query, message string) {
	if err := c.client.Set(ctx, adviceCacheKey(query), message, c.ttl).Err(); err != nil {
		c.logger.Warn("advice cache write failed", "error", err)
	}
}

// adviceCacheKey normalizes the query so trivially different phrasings
// of the same text share an entry.
func adviceCacheKey(query string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return adviceCacheKeyPrefix + hex.EncodeToString(sum[:])
}

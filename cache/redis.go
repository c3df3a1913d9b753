package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// =============================================================================
// REDIS CACHE - Shared across server instances
// =============================================================================

// Redis backs the cache with a Redis instance so multiple server
// replicas share computed analyses.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to the given address. A zero TTL stores entries
// without expiry.
func NewRedis(addr string, ttl time.Duration) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// Ping verifies connectivity at startup.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		// Misses and transport errors alike fall back to recomputation.
		return nil, false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

// Close releases the client connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}

var _ Cache = (*Redis)(nil)

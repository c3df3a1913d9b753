/*
Package cache memoizes computed analyses for the serving layer.

PURPOSE:
  The engine is a pure function, so identical scenarios always produce
  identical results - a byte-for-byte cache keyed by the scenario payload
  is safe. The serving layer consults it before invoking the engine.
  Nothing here persists scenarios themselves; entries are derived results
  with a bounded lifetime.

IMPLEMENTATIONS:
  - Memory: in-process map, the default
  - Redis:  shared cache for multi-instance deployments

USAGE:
  key := cache.Key(scenarioJSON)
  if data, ok := c.Get(ctx, key); ok { ... }
  _ = c.Set(ctx, key, rendered)
*/
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Cache is the result-cache contract. Implementations must be safe for
// concurrent use; a miss is (nil, false), and Set errors are advisory -
// the caller already has the computed result.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

// Key derives a stable cache key from a scenario payload.
func Key(payload []byte) string {
	sum := sha256.Sum256(payload)
	return "analysis:" + hex.EncodeToString(sum[:16])
}

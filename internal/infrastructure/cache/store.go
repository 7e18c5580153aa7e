package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with per-key expiration. The search path uses it
// to avoid re-embedding the same query text; a cache miss is never an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

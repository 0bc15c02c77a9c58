package outbound

import (
	"context"
	"time"
)

// RateLimiterPort defines rate limiting operations.
type RateLimiterPort interface {
	// Allow checks if a request is allowed within rate limits.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)

	// GetRemaining returns remaining requests in window.
	GetRemaining(ctx context.Context, key string, limit int, window time.Duration) (int, error)
}

// IdempotencyStorePort stores replayable responses keyed by idempotency key.
type IdempotencyStorePort interface {
	// Get returns the stored response, or ok=false when none exists.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Lock marks a key as in progress. It reports false if already held.
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Unlock releases an in-progress marker.
	Unlock(ctx context.Context, key string) error

	// Put stores a response for ttl.
	Put(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

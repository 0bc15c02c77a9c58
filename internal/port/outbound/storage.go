package outbound

import (
	"context"
	"time"
)

// ImageURLPort resolves stored image references into URLs clients can fetch.
type ImageURLPort interface {
	// PresignGet returns a time-limited download URL for a stored object key.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

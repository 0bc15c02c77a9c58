package memory

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/civicteams/server/internal/port/outbound"
)

// RateLimiter implements outbound.RateLimiterPort in process with one token
// bucket per key. The bucket holds limit tokens and refills the whole amount
// over one window. It is used when no Redis server is configured.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimiter creates an in-process rate limiter.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{limiters: make(map[string]*rate.Limiter)}
}

func (r *RateLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	return r.limiter(key, limit, window).Allow(), nil
}

func (r *RateLimiter) GetRemaining(_ context.Context, key string, limit int, window time.Duration) (int, error) {
	tokens := r.limiter(key, limit, window).Tokens()
	return max(int(tokens), 0), nil
}

func (r *RateLimiter) limiter(key string, limit int, window time.Duration) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.limiters[key]
	if !ok {
		every := rate.Every(window / time.Duration(max(limit, 1)))
		l = rate.NewLimiter(every, limit)
		r.limiters[key] = l
	}
	return l
}

var _ outbound.RateLimiterPort = (*RateLimiter)(nil)

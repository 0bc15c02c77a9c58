package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/civicteams/server/internal/port/outbound"
)

const rateLimitKeyPrefix = "civic:ratelimit:"

// RateLimiter implements outbound.RateLimiterPort with a sliding window kept
// in a sorted set per key. Each admitted request is one member scored by its
// arrival time in nanoseconds.
type RateLimiter struct {
	client redis.Cmdable
}

// NewRateLimiter creates a new rate limiter adapter.
func NewRateLimiter(client redis.Cmdable) *RateLimiter {
	return &RateLimiter{client: client}
}

// Allow records the request and reports whether it fits in the window.
// Rejected requests are not recorded.
func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	fullKey := rateLimitKeyPrefix + key
	now := time.Now()

	count, err := r.trim(ctx, fullKey, now, window)
	if err != nil {
		return false, err
	}
	if count >= int64(limit) {
		return false, nil
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, fullKey, redis.Z{
			Score:  float64(now.UnixNano()),
			Member: uuid.NewString(),
		})
		pipe.Expire(ctx, fullKey, window)
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetRemaining returns how many more requests the window admits.
func (r *RateLimiter) GetRemaining(ctx context.Context, key string, limit int, window time.Duration) (int, error) {
	count, err := r.trim(ctx, rateLimitKeyPrefix+key, time.Now(), window)
	if err != nil {
		return 0, err
	}
	return max(limit-int(count), 0), nil
}

// trim drops entries older than the window and returns how many remain.
func (r *RateLimiter) trim(ctx context.Context, key string, now time.Time, window time.Duration) (int64, error) {
	windowStart := strconv.FormatInt(now.Add(-window).UnixNano(), 10)

	var card *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, "0", windowStart)
		card = pipe.ZCard(ctx, key)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return card.Val(), nil
}

// Compile-time check
var _ outbound.RateLimiterPort = (*RateLimiter)(nil)

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/port/outbound"
	apperrors "github.com/civicteams/server/internal/utils/errors"
)

const (
	// RateLimitRemaining is the header for remaining requests.
	RateLimitRemaining = "X-RateLimit-Remaining"
	// RateLimitLimit is the header for the limit.
	RateLimitLimit = "X-RateLimit-Limit"
	// RateLimitReset is the header for reset time.
	RateLimitReset = "X-RateLimit-Reset"
	// RetryAfter is the header for retry time.
	RetryAfter = "Retry-After"
)

// RateLimitConfig holds rate limit configuration.
type RateLimitConfig struct {
	// Limit is the maximum number of requests.
	Limit int
	// Window is the time window.
	Window time.Duration
	// KeyFunc generates the rate limit key from request.
	// Default uses the authenticated user, falling back to client IP.
	KeyFunc func(*gin.Context) string
	// SkipFunc determines if the request should skip rate limiting.
	SkipFunc func(*gin.Context) bool
	// OnLimited is called for every rejected request.
	OnLimited func(*gin.Context)
	// Logger receives limiter backend errors.
	Logger *zap.Logger
}

// DefaultRateLimitConfig returns the default rate limit configuration.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:   100,
		Window:  time.Minute,
		KeyFunc: UserOrIPKey,
	}
}

// UserOrIPKey keys authenticated requests by user and anonymous ones by IP.
func UserOrIPKey(c *gin.Context) string {
	if userID := GetUserID(c); userID != uuid.Nil {
		return "user:" + userID.String()
	}
	return "ip:" + c.ClientIP()
}

// RateLimit returns a middleware that limits requests using the given limiter.
// Limiter failures let the request through.
func RateLimit(limiter outbound.RateLimiterPort, cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = UserOrIPKey
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		if limiter == nil || (cfg.SkipFunc != nil && cfg.SkipFunc(c)) {
			c.Next()
			return
		}

		key := cfg.KeyFunc(c)
		ctx := c.Request.Context()

		allowed, err := limiter.Allow(ctx, key, cfg.Limit, cfg.Window)
		if err != nil {
			cfg.Logger.Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		remaining, _ := limiter.GetRemaining(ctx, key, cfg.Limit, cfg.Window)

		c.Header(RateLimitLimit, strconv.Itoa(cfg.Limit))
		c.Header(RateLimitRemaining, strconv.Itoa(remaining))
		c.Header(RateLimitReset, strconv.FormatInt(time.Now().Add(cfg.Window).Unix(), 10))

		if !allowed {
			if cfg.OnLimited != nil {
				cfg.OnLimited(c)
			}
			c.Header(RetryAfter, strconv.Itoa(int(cfg.Window.Seconds())))
			abort(c, &apperrors.AppError{
				Code:       "rate_limit_exceeded",
				Message:    "too many requests, please try again later",
				StatusCode: http.StatusTooManyRequests,
				Err:        apperrors.ErrRateLimited,
			})
			return
		}

		c.Next()
	}
}

package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicteams/server/internal/port/outbound"
	"github.com/civicteams/server/internal/shared/logger"
	"github.com/civicteams/server/internal/utils/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	t.Run("generates new request ID when not provided", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, GetRequestID(c))
		})

		w := serve(router, httptest.NewRequest("GET", "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		headerID := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, headerID)
		assert.Equal(t, headerID, w.Body.String())
	})

	t.Run("uses existing request ID from header", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, GetRequestID(c))
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, "existing-request-id-123")
		w := serve(router, req)

		assert.Equal(t, "existing-request-id-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "existing-request-id-123", w.Body.String())
	})
}

func TestLogging(t *testing.T) {
	t.Run("logs successful requests", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(&logger.Config{Level: "info", Format: "json", Output: buf})

		router := gin.New()
		router.Use(RequestID(), Logging(log))
		router.GET("/test", func(c *gin.Context) {
			assert.NotNil(t, logger.FromContext(c.Request.Context()))
			c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest("GET", "/test?status=Reported", nil)
		req.Header.Set("User-Agent", "TestAgent/1.0")
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		out := buf.String()
		assert.Contains(t, out, "HTTP Request")
		assert.Contains(t, out, `"path":"/test"`)
		assert.Contains(t, out, `"status":200`)
		assert.Contains(t, out, "status=Reported")
		assert.Contains(t, out, "TestAgent/1.0")
		assert.Contains(t, out, "request_id")
	})

	t.Run("logs 4xx requests as warnings", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(&logger.Config{Level: "warn", Format: "json", Output: buf})

		router := gin.New()
		router.Use(Logging(log))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusNotFound, "not found")
		})

		serve(router, httptest.NewRequest("GET", "/test", nil))

		assert.Contains(t, buf.String(), `"level":"warn"`)
		assert.Contains(t, buf.String(), `"status":404`)
	})

	t.Run("logs 5xx requests as errors", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(&logger.Config{Level: "error", Format: "json", Output: buf})

		router := gin.New()
		router.Use(Logging(log))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusInternalServerError, "error")
		})

		serve(router, httptest.NewRequest("GET", "/test", nil))

		assert.Contains(t, buf.String(), `"level":"error"`)
	})
}

func TestRecovery(t *testing.T) {
	t.Run("recovers from panic", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(&logger.Config{Level: "error", Format: "json", Output: buf})

		router := gin.New()
		router.Use(Recovery(log))
		router.GET("/panic", func(c *gin.Context) {
			panic("test panic")
		})

		var w *httptest.ResponseRecorder
		require.NotPanics(t, func() {
			w = serve(router, httptest.NewRequest("GET", "/panic", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal_error")
		assert.Contains(t, buf.String(), "Panic recovered")
		assert.Contains(t, buf.String(), "test panic")
	})

	t.Run("works without logger", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery(nil))
		router.GET("/panic", func(c *gin.Context) {
			panic("test panic")
		})

		w := serve(router, httptest.NewRequest("GET", "/panic", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDefaultCORSConfig(t *testing.T) {
	cfg := DefaultCORSConfig()

	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Contains(t, cfg.AllowMethods, "POST")
	assert.Contains(t, cfg.AllowMethods, "DELETE")
	assert.Contains(t, cfg.AllowMethods, "PATCH")
	assert.Contains(t, cfg.AllowHeaders, "Authorization")
	assert.Contains(t, cfg.AllowHeaders, IdempotencyKeyHeader)
	assert.Contains(t, cfg.ExposeHeaders, "Idempotent-Replayed")
	assert.False(t, cfg.AllowCredentials)
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS(CORSConfig{
		AllowOrigins: []string{"http://allowed.example"},
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Content-Type"},
	}))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Origin", "http://allowed.example")
	w := serve(router, req)

	assert.Equal(t, "http://allowed.example", w.Header().Get("Access-Control-Allow-Origin"))
}

type stubValidator struct {
	userID uuid.UUID
}

func (v stubValidator) ValidateToken(token string) (*outbound.JWTClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return &outbound.JWTClaims{UserID: v.userID, Email: "u@example.com"}, nil
}

func TestAuth(t *testing.T) {
	userID := uuid.New()
	validator := stubValidator{userID: userID}

	newRouter := func(mw gin.HandlerFunc) *gin.Engine {
		router := gin.New()
		router.Use(mw)
		router.GET("/me", func(c *gin.Context) {
			if !IsAuthenticated(c) {
				c.String(http.StatusOK, "anonymous")
				return
			}
			c.String(http.StatusOK, GetUserID(c).String()+" "+GetEmail(c))
		})
		return router
	}

	tests := []struct {
		name   string
		mw     gin.HandlerFunc
		header string
		code   int
		body   string
	}{
		{"required_valid", RequireAuth(validator), "Bearer good", http.StatusOK, userID.String() + " u@example.com"},
		{"required_missing", RequireAuth(validator), "", http.StatusUnauthorized, "unauthorized"},
		{"required_invalid", RequireAuth(validator), "Bearer bad", http.StatusUnauthorized, "invalid_token"},
		{"required_wrong_scheme", RequireAuth(validator), "Basic good", http.StatusUnauthorized, "unauthorized"},
		{"optional_missing", OptionalAuth(validator), "", http.StatusOK, "anonymous"},
		{"optional_valid", OptionalAuth(validator), "Bearer good", http.StatusOK, userID.String() + " u@example.com"},
		{"optional_invalid", OptionalAuth(validator), "Bearer bad", http.StatusUnauthorized, "invalid_token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set(AuthorizationHeader, tt.header)
			}
			w := serve(newRouter(tt.mw), req)

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

type countingLimiter struct {
	mu    sync.Mutex
	seen  map[string]int
	limit int
	err   error
}

func (l *countingLimiter) Allow(_ context.Context, key string, limit int, _ time.Duration) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.seen == nil {
		l.seen = map[string]int{}
	}
	l.seen[key]++
	return l.seen[key] <= limit, nil
}

func (l *countingLimiter) GetRemaining(_ context.Context, key string, limit int, _ time.Duration) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return max(limit-l.seen[key], 0), nil
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects after limit", func(t *testing.T) {
		limiter := &countingLimiter{}
		limited := 0

		router := gin.New()
		router.Use(RateLimit(limiter, RateLimitConfig{
			Limit:     2,
			Window:    time.Minute,
			OnLimited: func(*gin.Context) { limited++ },
		}))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 2; i++ {
			w := serve(router, httptest.NewRequest("GET", "/test", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}

		w := serve(router, httptest.NewRequest("GET", "/test", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "0", w.Header().Get(RateLimitRemaining))
		assert.Equal(t, "60", w.Header().Get(RetryAfter))
		assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
		assert.Equal(t, 1, limited)
	})

	t.Run("fails open on limiter error", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimit(&countingLimiter{err: errors.New("redis down")}, DefaultRateLimitConfig()))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(router, httptest.NewRequest("GET", "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("keys by user when authenticated", func(t *testing.T) {
		userID := uuid.New()
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		assert.Contains(t, UserOrIPKey(c), "ip:")

		c.Set(UserIDKey, userID)
		assert.Equal(t, "user:"+userID.String(), UserOrIPKey(c))
	})
}

func TestMetrics(t *testing.T) {
	m := metrics.New("mw_test", prometheus.NewRegistry())

	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/issues/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(router, httptest.NewRequest("GET", "/issues/abc", nil))
	serve(router, httptest.NewRequest("GET", "/nowhere", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/issues/:id", "2xx")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "4xx")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.HTTPRequestsInFlight))
}

func TestRequireUser(t *testing.T) {
	router := gin.New()
	router.Use(OptionalAuth(stubValidator{userID: uuid.New()}), RequireUser())
	router.GET("/me", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := serve(router, httptest.NewRequest("GET", "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(AuthorizationHeader, "Bearer good")
	w = serve(router, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

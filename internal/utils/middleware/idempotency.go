package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/port/outbound"
)

const (
	// IdempotencyKeyHeader is the header for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// defaultIdempotencyTTL is the default TTL for idempotency keys.
	defaultIdempotencyTTL = 24 * time.Hour
	idempotencyLockTTL    = 30 * time.Second
)

// IdempotencyConfig holds idempotency middleware configuration.
type IdempotencyConfig struct {
	// TTL is the time to live for stored responses.
	TTL time.Duration
	// Methods are the HTTP methods to apply idempotency check.
	// Default: POST, PUT, PATCH
	Methods []string
	Logger  *zap.Logger
}

// DefaultIdempotencyConfig returns the default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		TTL:     defaultIdempotencyTTL,
		Methods: []string{http.MethodPost, http.MethodPut, http.MethodPatch},
	}
}

// idempotencyResponse stores the cached response.
type idempotencyResponse struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// idempotencyResponseWriter wraps gin.ResponseWriter to capture the response.
type idempotencyResponseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *idempotencyResponseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a client retries a request
// with the same Idempotency-Key. Keys are scoped to the caller and route.
// Server errors are not stored so the client can retry them.
func Idempotency(store outbound.IdempotencyStorePort, cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.TTL == 0 {
		cfg.TTL = defaultIdempotencyTTL
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = DefaultIdempotencyConfig().Methods
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if store == nil || idempotencyKey == "" || !slices.Contains(cfg.Methods, c.Request.Method) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := idempotencyCacheKey(c, idempotencyKey)

		if data, ok, err := store.Get(ctx, key); err == nil && ok {
			var cached idempotencyResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				c.Header("Idempotent-Replayed", "true")
				c.Data(cached.StatusCode, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
		}

		locked, err := store.Lock(ctx, key, idempotencyLockTTL)
		if err != nil {
			cfg.Logger.Warn("idempotency store unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !locked {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": gin.H{
					"code":    "request_in_progress",
					"message": "a request with this idempotency key is already being processed",
				},
			})
			return
		}
		defer func() { _ = store.Unlock(ctx, key) }()

		writer := &idempotencyResponseWriter{ResponseWriter: c.Writer, body: bytes.NewBuffer(nil)}
		c.Writer = writer

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 500 {
			return
		}
		data, err := json.Marshal(idempotencyResponse{
			StatusCode:  status,
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		})
		if err != nil {
			return
		}
		if err := store.Put(ctx, key, data, cfg.TTL); err != nil {
			cfg.Logger.Warn("failed to store idempotent response", zap.Error(err))
		}
	}
}

func idempotencyCacheKey(c *gin.Context, idempotencyKey string) string {
	caller := "ip:" + c.ClientIP()
	if IsAuthenticated(c) {
		caller = "user:" + GetUserID(c).String()
	}
	hash := sha256.Sum256([]byte(caller + ":" + c.Request.Method + ":" + c.FullPath() + ":" + idempotencyKey))
	return hex.EncodeToString(hash[:])
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/civicteams/server/internal/port/outbound"
	apperrors "github.com/civicteams/server/internal/utils/errors"
)

const (
	// AuthorizationHeader is the header key for authorization.
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens.
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for user ID.
	UserIDKey = "user_id"
	// EmailKey is the context key for email.
	EmailKey = "email"
)

// Auth returns a middleware that validates bearer tokens.
// If the token is valid, it sets user_id and email in the context.
// If optional is true, the middleware lets anonymous requests through but
// still rejects a token that is present and invalid.
func Auth(validator outbound.TokenValidatorPort, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			if !optional {
				abort(c, apperrors.Unauthorized("authorization header required"))
				return
			}
			c.Next()
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			abort(c, &apperrors.AppError{
				Code:       "invalid_token",
				Message:    "invalid or expired token",
				StatusCode: http.StatusUnauthorized,
				Err:        err,
			})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Email)

		c.Next()
	}
}

// RequireAuth returns a middleware that requires a valid token.
func RequireAuth(validator outbound.TokenValidatorPort) gin.HandlerFunc {
	return Auth(validator, false)
}

// OptionalAuth returns a middleware that accepts anonymous requests.
func OptionalAuth(validator outbound.TokenValidatorPort) gin.HandlerFunc {
	return Auth(validator, true)
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader(AuthorizationHeader)
	if !strings.HasPrefix(authHeader, BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
}

// GetUserID returns the user ID from context.
// Returns uuid.Nil if not found.
func GetUserID(c *gin.Context) uuid.UUID {
	if val, exists := c.Get(UserIDKey); exists {
		if userID, ok := val.(uuid.UUID); ok {
			return userID
		}
	}
	return uuid.Nil
}

// GetEmail returns the email from context.
func GetEmail(c *gin.Context) string {
	return c.GetString(EmailKey)
}

// IsAuthenticated returns true if the user is authenticated.
func IsAuthenticated(c *gin.Context) bool {
	return GetUserID(c) != uuid.Nil
}

func abort(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.StatusCode, err.ToResponse())
}

// RequireUser rejects requests that an earlier OptionalAuth left anonymous.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAuthenticated(c) {
			abort(c, apperrors.Unauthorized(""))
			return
		}
		c.Next()
	}
}

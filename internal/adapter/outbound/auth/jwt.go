// Package auth validates bearer tokens issued by the identity provider.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/civicteams/server/internal/port/outbound"
)

// ErrInvalidToken is returned for any token that fails validation.
var ErrInvalidToken = errors.New("invalid token")

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	Secret string
	Issuer string // checked when set
}

type claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTValidator implements outbound.TokenValidatorPort for HMAC-signed tokens.
// The subject claim carries the user ID.
type JWTValidator struct {
	secret []byte
	parser *jwt.Parser
	issuer string
}

// NewJWTValidator creates a new validator.
func NewJWTValidator(cfg *JWTConfig) *JWTValidator {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	return &JWTValidator{
		secret: []byte(cfg.Secret),
		parser: jwt.NewParser(opts...),
		issuer: cfg.Issuer,
	}
}

// ValidateToken validates a token and returns its claims.
func (v *JWTValidator) ValidateToken(tokenString string) (*outbound.JWTClaims, error) {
	var c claims
	_, err := v.parser.ParseWithClaims(tokenString, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}

	return &outbound.JWTClaims{
		UserID: userID,
		Email:  c.Email,
	}, nil
}

// IssueToken signs a token for a user. The service itself never issues
// tokens to clients; this backs the development token command and tests.
func (v *JWTValidator) IssueToken(userID uuid.UUID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Compile-time check
var _ outbound.TokenValidatorPort = (*JWTValidator)(nil)

package outbound

import "github.com/google/uuid"

// JWTClaims represents the claims the service relies on.
type JWTClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenValidatorPort validates bearer tokens issued by the identity provider.
type TokenValidatorPort interface {
	ValidateToken(token string) (*JWTClaims, error)
}

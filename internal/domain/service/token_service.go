package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the identity provider.
// GenerateAccessToken exists for tooling and tests; token issuance is not exposed over HTTP.
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	ValidateToken(tokenString string) (*Claims, error)

	GetAccessTokenDuration() time.Duration
}

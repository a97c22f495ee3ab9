package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims of an access token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the identity provider.
// IssueAccessToken exists for local development and tests.
type TokenService interface {
	IssueAccessToken(userID uuid.UUID, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

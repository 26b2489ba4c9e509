package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	// Issue signs a token for username that expires after the configured lifetime.
	Issue(username string) (token string, expiresAt time.Time, err error)

	// Validate returns domainerrors.ErrTokenExpired or domainerrors.ErrTokenInvalid on failure.
	Validate(token string) (*Claims, error)
}

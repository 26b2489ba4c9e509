// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// LoginInput carries admin credentials.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginOutput is returned after a successful login.
type LoginOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
}

// Identity is the authenticated admin behind a session token.
type Identity struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthUsecase defines admin authentication and credential provisioning.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Verify checks a session token and returns its identity.
	Verify(ctx context.Context, token string) (*Identity, error)

	// EnsureAdmin creates the configured seed admin when no credential with that username exists.
	EnsureAdmin(ctx context.Context) error

	CreateAdmin(ctx context.Context, username, email, password string) error

	// ResetPassword replaces the password and clears any lockout.
	ResetPassword(ctx context.Context, username, password string) error
}

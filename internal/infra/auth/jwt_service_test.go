package auth

import (
	"testing"
	"time"

	domainerrors "folio/internal/domain/errors"
	"folio/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newJWTService(testSecret, 24*time.Hour, time.Now)

	token, expiresAt, err := svc.Issue("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	issuedAt := time.Now().Add(-25 * time.Hour)
	issuer := newJWTService(testSecret, 24*time.Hour, func() time.Time { return issuedAt })

	token, _, err := issuer.Issue("admin")
	require.NoError(t, err)

	verifier := newJWTService(testSecret, 24*time.Hour, time.Now)
	claims, err := verifier.Validate(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_ExpiresExactlyAfterTTL(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	svc := newJWTService(testSecret, 24*time.Hour, func() time.Time { return clock })

	token, _, err := svc.Issue("admin")
	require.NoError(t, err)

	clock = issuedAt.Add(24*time.Hour - time.Second)
	_, err = svc.Validate(token)
	assert.NoError(t, err)

	clock = issuedAt.Add(24*time.Hour + time.Second)
	_, err = svc.Validate(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, _, err := newJWTService("another-secret", time.Hour, time.Now).Issue("admin")
	require.NoError(t, err)

	_, err = newJWTService(testSecret, time.Hour, time.Now).Validate(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newJWTService(testSecret, time.Hour, time.Now)

	claims, err := svc.Validate("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	claims := jwt.MapClaims{
		"username": "admin",
		"iss":      tokenIssuer,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newJWTService(testSecret, time.Hour, time.Now).Validate(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novablog/config"
	domainerrors "novablog/internal/domain/errors"
)

func newTestTokenService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.JWT = "test_jwt_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t)

	userID := uuid.New()
	email := "reader@example.com"

	token, err := svc.Issue(userID, email)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, email, claims.Email)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue(uuid.New(), "reader@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	claims, err := svc.Verify(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestTokenService(t)

	claims, err := svc.Verify("clearly-not-a-jwt-token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.signedToken(uuid.New(), "reader@example.com", time.Now().Add(-8*24*time.Hour), tokenTTL)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

// An expired token and a tampered token must be indistinguishable to callers.
func TestJWTService_FailureKindsCollapse(t *testing.T) {
	svc := newTestTokenService(t)

	good, err := svc.Issue(uuid.New(), "reader@example.com")
	require.NoError(t, err)
	tampered := good[:len(good)-2] + "xx"

	expired, err := svc.signedToken(uuid.New(), "reader@example.com", time.Now().Add(-8*24*time.Hour), tokenTTL)
	require.NoError(t, err)

	_, tamperedErr := svc.Verify(tampered)
	_, expiredErr := svc.Verify(expired)

	assert.Equal(t, tamperedErr, expiredErr)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.JWT = "a_completely_different_secret_key"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.Issue(uuid.New(), "reader@example.com")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_MissingClaims(t *testing.T) {
	svc := newTestTokenService(t)

	// Token signed with the right secret but without the identity claims.
	token, err := svc.signedToken(uuid.Nil, "", time.Now(), tokenTTL)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

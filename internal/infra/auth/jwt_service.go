// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"novablog/config"
	domainerrors "novablog/internal/domain/errors"
	"novablog/internal/domain/service"
)

// tokenTTL is the fixed session lifetime. It is a property of the scheme, not
// a per-call option; rotating the secret invalidates every outstanding token.
const tokenTTL = 7 * 24 * time.Hour

// sessionClaims is the wire shape of the token payload: {id, email, iat, exp}.
type sessionClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
}

// NewJWTService is the constructor for jwtService.
// It refuses to start without a signing secret: defaulting to a guessable
// placeholder would silently void the whole scheme.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{secret: []byte(cfg.SecretKey.JWT)}, nil
}

// Issue signs a token asserting the given identity, valid for 7 days.
func (s *jwtService) Issue(userID uuid.UUID, email string) (string, error) {
	return s.signedToken(userID, email, time.Now(), tokenTTL)
}

// Verify checks signature validity and expiry and decodes the claims.
// Every failure collapses into ErrInvalidToken so callers cannot distinguish
// a bad signature from a malformed payload or an expired token.
func (s *jwtService) Verify(tokenString string) (*service.TokenClaims, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	// Fail closed on any unexpected claim shape.
	userID, err := uuid.Parse(claims.UserID)
	if err != nil || claims.Email == "" || claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return nil, domainerrors.ErrInvalidToken
	}

	return &service.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *jwtService) signedToken(userID uuid.UUID, email string, now time.Time, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims is the decoded, verified content of a bearer token.
// The shape is fixed: decoding fails closed on any missing or malformed field.
type TokenClaims struct {
	UserID    uuid.UUID // The account the token asserts.
	Email     string    // Email captured at issuance; may be stale if the account changed since.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and verifying signed,
// time-bounded bearer tokens. Tokens are stateless: there is no server-side
// revocation list, invalidation is purely by expiry.
type TokenService interface {
	// Issue signs a token asserting the given identity. The lifetime is a
	// fixed property of the service, not configurable per call.
	Issue(userID uuid.UUID, email string) (string, error)

	// Verify checks signature and expiry and returns the decoded claims.
	// Every failure mode (bad signature, malformed structure, expiry,
	// unexpected claim shape) yields the same single error kind so callers
	// cannot distinguish the cause.
	Verify(token string) (*TokenClaims, error)
}

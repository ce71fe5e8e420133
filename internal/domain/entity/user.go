// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
// The email is the unique, case-normalized identifier used to sign in.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the account.
	Email        string    `json:"email"`      // Unique, lowercased email used as the sign-in identifier.
	Name         string    `json:"name"`       // Optional display name; empty when the user never set one.
	PasswordHash string    `json:"-"`          // bcrypt hash of the password. Never serialized into a response.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when the account was created.
}

// DisplayName returns the name to show next to user-generated content,
// falling back to the email when the user has no display name.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}

	return u.Email
}

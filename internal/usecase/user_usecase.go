// Package usecase defines the application's business logic interfaces and
// their input/output DTOs. Handlers depend on these interfaces, never on the
// implementations.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SignUpInput carries the sign-up request payload.
type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
}

// SignInInput carries the sign-in request payload. Only presence is validated
// here: a malformed email is handled by the lookup failing, which yields the
// same generic credentials error as a wrong password.
type SignInInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PublicUser is the public projection of an account. It never carries the
// password hash.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// SignInOutput is the successful sign-in response: a bearer token plus the
// public projection of the account.
type SignInOutput struct {
	Token string      `json:"token"`
	User  *PublicUser `json:"user"`
}

// UserUsecase defines account-related operations.
type UserUsecase interface {
	// SignUp validates and registers a new account. Duplicate emails fail
	// with the same conflict error whether caught by the lookup or by the
	// store's unique index.
	SignUp(ctx context.Context, input *SignUpInput) error

	// SignIn verifies credentials and issues a session token. An unknown
	// email and a wrong password fail identically.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// Profile returns the public projection of the given account.
	Profile(ctx context.Context, userID uuid.UUID) (*PublicUser, error)
}

// Package handler contains the HTTP handlers for the application.
package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"novablog/internal/delivery/http/middleware"
	domainerrors "novablog/internal/domain/errors"
)

// callerID returns the authenticated identity planted by the auth gate.
// Handlers behind the gate can rely on it being present; anything else is a
// routing mistake and surfaces as a token error rather than a panic.
func callerID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return id, nil
}

// pathID parses the named path parameter as a UUID. Malformed IDs cannot
// address any resource, so they read as not found.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound
	}

	return id, nil
}

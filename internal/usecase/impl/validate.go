// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	domainerrors "novablog/internal/domain/errors"
)

// validate is the shared validator instance for usecase inputs. validator/v10
// instances cache struct metadata and are safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// errMissingBody rejects requests whose JSON body was absent. echo's binder
// leaves the bound input nil when the request carries no body at all, so the
// services guard before the first dereference.
var errMissingBody = domainerrors.ErrValidationFailed.WithDetails("request body is required")

// validateInput runs struct validation and maps failures to the application
// validation error. Details are reduced to terse "field: rule" pairs; raw
// validator output never reaches the client.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed
	}

	details := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		details[i] = strings.ToLower(fe.Field()) + ": " + fe.Tag()
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, ", "))
}

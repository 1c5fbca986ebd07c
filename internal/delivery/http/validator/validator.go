// Package validator adapts go-playground/validator to echo's Validator
// interface so request DTOs can carry validate tags.
package validator

import (
	domainErrors "raktapulse/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance for echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New builds the validator used by the HTTP server.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the shared
// validation error with the raw validator output attached as details.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainErrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"

	domainerrors "autolot/internal/domain/errors"
)

// EchoValidator wraps a validator instance for Echo.
type EchoValidator struct {
	validate *validatorlib.Validate
}

// New creates the Echo request validator.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validatorlib.New(validatorlib.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request payload against its struct tags.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

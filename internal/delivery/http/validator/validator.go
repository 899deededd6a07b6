// Package validator wires go-playground/validator into echo's Validator slot.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator used by the HTTP server. Struct tags on
// the usecase input DTOs drive the rules.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(err, "request validation failed")
	}

	return nil
}

// Package validation wires go-playground/validator into echo so request
// structs are checked against their validate tags before reaching services.
package validation

import (
	"creditapi/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Validation failures come back as 400s.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperrors.BadRequest("Validation failed: " + err.Error())
	}
	return nil
}

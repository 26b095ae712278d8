package handlers

import (
	"gastai/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface on top of the shared
// validation rules.
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface. Validation failures are
// returned raw so the central error handler can turn them into a 422 with
// field details.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.GetValidate().Struct(i)
}

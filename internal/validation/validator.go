package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"gastai/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("hex_color", validateHexColor)

	// Report field names as their JSON keys so validation errors match the
	// request body the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateTransactionType accepts the two ledger entry types
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(strings.ToLower(fl.Field().String()))
}

// validateHexColor accepts six-digit hex colors like #ef4444
func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

// FormatFieldErrors flattens validator errors into a field -> message map for
// 422 responses.
func FormatFieldErrors(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		fields[fieldErr.Field()] = FormatFieldError(fieldErr)
	}
	return fields
}

// FormatFieldError renders a single validation failure as a client-facing message
func FormatFieldError(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("Must not exceed %s characters", fieldErr.Param())
	case "eqfield":
		return "Confirmation does not match"
	case "required_with":
		return "This field is required when changing the password"
	case "datetime":
		return "Must be a date in YYYY-MM-DD format"
	case "transaction_type":
		return "Must be either income or expense"
	case "hex_color":
		return "Must be a hex color like #ef4444"
	default:
		return fmt.Sprintf("Failed %s validation", fieldErr.Tag())
	}
}

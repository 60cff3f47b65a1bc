// Package validate wraps go-playground/validator for request payload checks.
package validate

import (
	"github.com/go-playground/validator/v10"
)

// Validator provides struct validation backed by the underlying validator library.
type Validator struct {
	cli *validator.Validate
}

// FieldError describes a single field that failed validation.
type FieldError struct {
	Field   string
	Message string
}

// New initializes and returns a new Validator instance.
func New() *Validator {
	return &Validator{
		cli: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Struct validates the provided struct against its validate tags and
// returns one FieldError per failing field, or nil when the struct is valid.
func (v *Validator) Struct(s any) []FieldError {
	err := v.cli.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs := make([]FieldError, 0)
	for _, fe := range err.(validator.ValidationErrors) {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   fe.StructField(),
			Message: fe.Error(),
		})
	}

	return fieldErrs
}

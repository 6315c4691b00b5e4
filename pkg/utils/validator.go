package utils

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse carries all validation violations for a request body.
type ErrorResponse struct {
	Errors []CError `json:"errors"`
}

// CError is a single validation violation.
type CError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// First returns the first violation message, the one surfaced to clients.
func (e *ErrorResponse) First() string {
	if e == nil || len(e.Errors) == 0 {
		return "Validation failed"
	}
	return e.Errors[0].Msg
}

// Validator wraps the go-playground validator instance.
type Validator struct {
	validator *validator.Validate
}

// NewValidator builds a Validator with the custom rules registered.
func NewValidator() *Validator {
	v := validator.New()

	CustomValidation(v)

	// Report field names from json tags, not Go identifiers.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validator: v}
}

// Validate validates the input struct and returns the violations, or nil.
func (v *Validator) Validate(str interface{}) *ErrorResponse {
	err := v.validator.Struct(str)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ErrorResponse{Errors: []CError{{Msg: err.Error()}}}
	}
	response := ErrorResponse{Errors: make([]CError, 0, len(validationErrors))}
	for _, ve := range validationErrors {
		field := ve.Field()
		message := getErrorMessage(field, ve.Tag(), ve.Param())
		response.Errors = append(response.Errors, CError{Field: field, Msg: message})
	}
	return &response
}

// getErrorMessage maps a violated tag to a human-readable message.
func getErrorMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of the following values: %s", field, param)
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color like #FF9500", field)
	case "plausible_year":
		return fmt.Sprintf("%s must be a plausible calendar year", field)
	default:
		return fmt.Sprintf("%s failed validation on %s", field, tag)
	}
}

// CustomValidation registers domain-specific rules. Color fields use the
// built-in hexcolor tag.
func CustomValidation(v *validator.Validate) {
	// Coin years run from antiquity up to next year's issues.
	v.RegisterValidation("plausible_year", func(fl validator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= 1 && year <= int64(time.Now().Year())+1
	})
}

// Package utils provides shared helpers for the NumisVault server.
package utils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error taxonomy for the API. Handlers translate every failure from the
// data layer into the nearest of these.
var (
	ErrValidation          = NewError(fiber.StatusBadRequest, "Invalid request")
	ErrUnauthorized        = NewError(fiber.StatusUnauthorized, "Invalid credentials")
	ErrNotFound            = NewError(fiber.StatusNotFound, "Resource not found")
	ErrInternalServerError = NewError(fiber.StatusInternalServerError, "Internal server error")
)

// CustomError is a structured error carrying the HTTP status it maps to.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewError creates a CustomError with a status code, message, and optional details.
func NewError(code int, message string, details ...string) *CustomError {
	e := &CustomError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Message)
}

// WithCause attaches underlying details to the error.
func (e *CustomError) WithCause(err error) *CustomError {
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

// WrapError wraps an existing error with a custom status and message.
func WrapError(err error, code int, message string) *CustomError {
	return NewError(code, message, err.Error())
}

// ValidationError builds a 400 carrying the first violation message.
func ValidationError(message string) *CustomError {
	return NewError(fiber.StatusBadRequest, message)
}

// NotFoundError builds a 404 for the named entity.
func NotFoundError(entity string) *CustomError {
	return NewError(fiber.StatusNotFound, entity+" not found")
}

// StorageError wraps a persistence failure as a 500. The underlying detail
// stays on the error for logging; responses never include it.
func StorageError(err error) *CustomError {
	return NewError(fiber.StatusInternalServerError, "Internal server error", err.Error())
}

// As unwraps err into a *CustomError if it is one.
func As(err error, target **CustomError) bool {
	if err == nil {
		return false
	}
	if e, ok := err.(*CustomError); ok {
		*target = e
		return true
	}
	return false
}

package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")

	ErrValidation = errors.New("validation failed")

	ErrInternalServer = errors.New("internal server error")

	ErrModelUnavailable = errors.New("model unavailable")

	ErrSchemaMismatch = errors.New("model schema mismatch")

	ErrInference = errors.New("model inference failed")
)

type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func NewValidationError(field, message string) error {
	return fmt.Errorf("%w: %w", ErrValidation, &ValidationError{Field: field, Message: message})
}

type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WrapModelError tags a classifier failure so handlers can tell it apart from
// bad input. The sentinel is kept reachable through errors.Is.
func WrapModelError(cause error, message string) error {
	return &AppError{
		Code:    "MODEL_ERROR",
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrInference, cause),
	}
}

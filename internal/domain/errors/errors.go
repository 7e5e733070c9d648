package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Domain errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrAlreadyExists     = errors.New("resource already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrStateMismatch     = errors.New("oauth state mismatch")
	ErrNetwork           = errors.New("network error")
	ErrProvider          = errors.New("provider error")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotConfigured     = errors.New("integration not configured")
)

// AppError represents application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func BadGateway(message string, err error) *AppError {
	return NewAppError(http.StatusBadGateway, message, err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// ValidationError reports the exact fields missing or invalid on a
// wizard step, so the caller can highlight what is incomplete.
type ValidationError struct {
	Step   string   `json:"step"`
	Fields []string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %s: missing or invalid fields: %s", e.Step, strings.Join(e.Fields, ", "))
}

// NewValidationError creates a validation error for a wizard step
func NewValidationError(step string, fields ...string) *ValidationError {
	return &ValidationError{Step: step, Fields: fields}
}

// AgeIneligibleError is reported separately from missing-field errors:
// the date of birth is present but the applicant is under the minimum age.
type AgeIneligibleError struct {
	Age     int `json:"age"`
	Minimum int `json:"minimum"`
}

func (e *AgeIneligibleError) Error() string {
	return fmt.Sprintf("applicant age %d is below the minimum of %d", e.Age, e.Minimum)
}

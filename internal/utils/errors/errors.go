package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Every domain sentinel wraps exactly one of these so callers
// can classify failures with errors.Is without knowing the owning package.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("resource conflict")
	ErrInvalidState        = errors.New("invalid state transition")
	ErrTerminalState       = errors.New("terminal state")
	ErrInvalidOperation    = errors.New("invalid operation")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternal            = errors.New("internal error")
)

var kinds = []error{
	ErrValidation,
	ErrNotFound,
	ErrUnauthorized,
	ErrForbidden,
	ErrConflict,
	ErrInvalidState,
	ErrTerminalState,
	ErrInvalidOperation,
	ErrUpstreamUnavailable,
	ErrRateLimited,
}

// DomainError is a named failure raised by a domain package.
type DomainError struct {
	Kind    error
	Code    string
	Message string
}

// Define declares a domain sentinel of the given kind.
func Define(kind error, code, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap returns the error kind.
func (e *DomainError) Unwrap() error {
	return e.Kind
}

// IsDomain reports whether err belongs to the error taxonomy, as opposed to
// an infrastructure failure such as a dropped connection.
func IsDomain(err error) bool {
	if err == nil {
		return false
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// AppError represents an application error with HTTP status and error code.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	StatusCode int            `json:"-"`
	Err        error          `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrorResponse represents the JSON error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToResponse converts an AppError to ErrorResponse.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    e.Code,
			Message: e.Message,
		},
	}
}

// Unauthorized creates an unauthorized error.
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return &AppError{
		Code:       "unauthorized",
		Message:    message,
		StatusCode: http.StatusUnauthorized,
		Err:        ErrUnauthorized,
	}
}

// BadRequest creates a request binding error.
func BadRequest(message string) *AppError {
	return &AppError{
		Code:       "bad_request",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Err:        ErrValidation,
	}
}

// Internal creates an internal error.
func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       "internal_error",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// FromError converts any error into an AppError suitable for a response.
// Infrastructure failures are reported as internal errors without leaking
// their message.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return &AppError{
			Code:       domainErr.Code,
			Message:    domainErr.Message,
			StatusCode: GetStatusCode(err),
			Err:        err,
		}
	}

	status := GetStatusCode(err)
	if status == http.StatusInternalServerError {
		return Internal("internal server error", err)
	}
	return &AppError{
		Code:       http.StatusText(status),
		Message:    err.Error(),
		StatusCode: status,
		Err:        err,
	}
}

// GetStatusCode returns the appropriate HTTP status code for an error.
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict),
		errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrTerminalState):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidOperation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

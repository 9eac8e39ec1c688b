package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the requested change conflicts with the current state of the resource.
var ErrConflict = errors.New("resource conflict")

// ErrStoreUnavailable indicates a transient failure of the ledger store.
var ErrStoreUnavailable = errors.New("ledger store unavailable")

// ErrGatewayUnavailable indicates a transient failure of an external gateway.
var ErrGatewayUnavailable = errors.New("gateway unavailable")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-style status code alongside the underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the code-mapped sentinel and the underlying cause, so
// errors.Is matches the taxonomy even when a driver error is wrapped.
func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.sentinel(), e.Err}
	}
	return []error{e.sentinel()}
}

// sentinel maps the status code back to its taxonomy error.
func (e *AppError) sentinel() error {
	switch e.Code {
	case 400:
		return ErrValidation
	case 404:
		return ErrNotFound
	case 409:
		return ErrConflict
	case 503:
		return ErrStoreUnavailable
	default:
		return ErrInternal
	}
}

// NewAppError wraps an underlying error with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// Package errors defines the application error taxonomy. Every outcome a
// client may observe is a predefined typed value; everything else surfaces
// as a generic internal error.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// ErrMissingFields is returned when a request omits or blanks any of the
	// identifier, password, or role fields.
	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Identifier, password, and user role are required.",
		"",
	)

	// ErrIdentifierTaken maps the store's uniqueness violation on the
	// identifier column to a user-facing conflict.
	ErrIdentifierTaken = NewBaseError(
		http.StatusConflict,
		"IDENTIFIER_TAKEN",
		"This identifier is already registered.",
		"",
	)

	// ErrInvalidCredentials is the single 401 value shared by every login
	// failure mode: unknown identifier, role mismatch, and wrong password all
	// return this exact error so the response bytes are indistinguishable.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect identifier, password, or user role.",
		"",
	)

	// ErrPasswordHashFailed is returned when bcrypt itself fails.
	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Internal server error.",
		"",
	)

	// ErrInternalError is the catch-all for anything the taxonomy does not name.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface. The wrapped driver error is for logs only and
// never reaches the client.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for server-side inspection.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

package errors

import (
	"net/http"

	"nutriledger/internal/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors sharing the same business code, so values derived through
// WithDetails still satisfy errors.Is against the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Store-related errors
	ErrStoreUnconfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNCONFIGURED",
		"The backing store is not configured",
		"",
	)

	ErrStoreUnreachable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNREACHABLE",
		"The backing store could not be reached, please retry shortly",
		"",
	)

	ErrIOFailure = NewBaseError(
		http.StatusServiceUnavailable,
		"IO_FAILURE",
		"Your entry was valid but could not be saved, please retry",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This username is already taken",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	ErrAccountNotApproved = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_NOT_APPROVED",
		"This account is waiting for approval",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Estimator-related errors
	ErrEstimatorUnavailable = NewBaseError(
		http.StatusBadGateway,
		"ESTIMATOR_UNAVAILABLE",
		"The nutrition estimator is unavailable",
		"",
	)

	ErrMalformedResponse = NewBaseError(
		http.StatusUnprocessableEntity,
		"MALFORMED_RESPONSE",
		"The nutrition estimate could not be read",
		"",
	)

	ErrIncompleteResponse = NewBaseError(
		http.StatusUnprocessableEntity,
		"INCOMPLETE_RESPONSE",
		"The nutrition estimate is missing a field",
		"",
	)

	ErrInvalidNutrientValue = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_NUTRIENT_VALUE",
		"The nutrition estimate contains an invalid value",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
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

// Unwrap returns the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return ErrStoreUnreachable.ErrorCode()
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return ErrStoreUnreachable.Message()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Is lets database failures match ErrStoreUnreachable.
func (e *DatabaseExecuteError) Is(target error) bool {
	return target == ErrStoreUnreachable
}

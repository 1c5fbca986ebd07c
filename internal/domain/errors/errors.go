package errors

import (
	"net/http"

	"raktapulse/internal/errors"
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

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"username or email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid username or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid or expired access token",
		"",
	)

	// Donor-related errors
	ErrDonorNotFound = NewBaseError(
		http.StatusNotFound,
		"DONOR_NOT_FOUND",
		"donor not found",
		"",
	)

	ErrAlreadyDonor = NewBaseError(
		http.StatusConflict,
		"ALREADY_DONOR",
		"a donor record already exists for this account",
		"",
	)

	ErrNotDonor = NewBaseError(
		http.StatusForbidden,
		"NOT_DONOR",
		"a donor profile is required for this action",
		"",
	)

	ErrInvalidBloodGroup = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BLOOD_GROUP",
		"unknown blood group",
		"",
	)

	// Request-related errors
	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"blood request not found",
		"",
	)

	ErrInvalidUrgency = NewBaseError(
		http.StatusBadRequest,
		"INVALID_URGENCY",
		"unknown urgency level",
		"",
	)

	ErrInvalidRequestStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST_STATUS",
		"unknown request status",
		"",
	)

	ErrNotRequestOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_REQUEST_OWNER",
		"only the requester can update this request",
		"",
	)

	// Matching-related errors
	ErrSelfVolunteer = NewBaseError(
		http.StatusConflict,
		"SELF_VOLUNTEER",
		"you cannot volunteer for your own request",
		"",
	)

	ErrDuplicateVolunteer = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_VOLUNTEER",
		"you have already volunteered for this request",
		"",
	)

	ErrDonationNotFound = NewBaseError(
		http.StatusNotFound,
		"DONATION_NOT_FOUND",
		"donation event not found",
		"",
	)

	ErrCompletionNotAllowed = NewBaseError(
		http.StatusForbidden,
		"COMPLETION_NOT_ALLOWED",
		"only the volunteering donor or the requester can complete a donation",
		"",
	)

	// Catalog-related errors
	ErrBankNotFound = NewBaseError(
		http.StatusNotFound,
		"BANK_NOT_FOUND",
		"blood bank not found",
		"",
	)

	// Emergency-related errors
	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"too many emergency pings, please wait before retrying",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

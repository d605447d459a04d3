package errors

import (
	"net/http"

	"authsvc/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
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

// Predefined error types. Messages are part of the public API.
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"All fields are required!",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_EXISTS",
		"Email already exists!",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_FOUND",
		"User not found!",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Wrong Password!",
	)

	ErrRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRATION_FAILED",
		"Server error",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOGIN_FAILED",
		"Login failed",
	)

	ErrNotificationFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_FAILED",
		"Email sending failed",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// TransportError reports an unavailable collaborator (database, mail server).
// It keeps the cause for logs and shows the public message of the failed operation.
type TransportError struct {
	err    error
	public *BaseError
}

// NewTransportError attaches cause to the public error of the failed operation.
func NewTransportError(err error, public *BaseError) AppError {
	return &TransportError{
		err:    err,
		public: public,
	}
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return errors.Wrap(e.err, e.public.Message()).Error()
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *TransportError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *TransportError) HTTPCode() int {
	return e.public.HTTPCode()
}

// ErrorCode returns the business error code
func (e *TransportError) ErrorCode() string {
	return e.public.ErrorCode()
}

// Message returns the user-friendly error message
func (e *TransportError) Message() string {
	return e.public.Message()
}

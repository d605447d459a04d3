// Package response writes the JSON bodies of the HTTP API.
package response

import (
	"net/http"

	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"

	"github.com/labstack/echo/v4"
)

// MessageResponse acknowledges a completed command.
type MessageResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// NamedLoginResponse is the login body when payments are enabled. Name is
// always present, empty for accounts registered without one.
type NamedLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Name    string `json:"name"`
}

// StatusResponse reports the outcome of a fire-and-forget action.
type StatusResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse is the error body of endpoints that also report success:false.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// JSON writes body with statusCode.
func JSON(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// Failure returns an error response flagged with success:false.
func Failure(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, FailureResponse{Success: false, Error: message})
}

// HandleAppFailure writes err as a Failure when it is an AppError and hands
// anything else back to the error handler.
func HandleAppFailure(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Failure(c, appErr.HTTPCode(), appErr.Message())
	}

	return errors.WithStack(err)
}

package errors

import (
	"net/http"
	"testing"

	"authsvc/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrEmailAlreadyExists.WrapMessage("email already exists")

	assert.True(t, errors.Is(err, ErrEmailAlreadyExists))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "Email already exists!", appErr.Message())
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError(cause, ErrLoginFailed)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "LOGIN_FAILED", err.ErrorCode())
	assert.Equal(t, "Login failed", err.Message())
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))

	wrapped := errors.Wrap(err, "login")
	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "Login failed", appErr.Message())
}

func TestPublicMessages(t *testing.T) {
	tests := []struct {
		err     *BaseError
		code    int
		message string
	}{
		{ErrValidationFailed, http.StatusBadRequest, "All fields are required!"},
		{ErrEmailAlreadyExists, http.StatusBadRequest, "Email already exists!"},
		{ErrUserNotFound, http.StatusBadRequest, "User not found!"},
		{ErrInvalidCredentials, http.StatusBadRequest, "Wrong Password!"},
		{ErrRegistrationFailed, http.StatusInternalServerError, "Server error"},
		{ErrLoginFailed, http.StatusInternalServerError, "Login failed"},
		{ErrNotificationFailed, http.StatusInternalServerError, "Email sending failed"},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode())
			assert.Equal(t, tt.message, tt.err.Message())
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

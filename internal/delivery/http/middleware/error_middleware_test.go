package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
		wantLog  bool
	}{
		{
			name:     "client error",
			err:      errors.WithStack(domainerrors.ErrInvalidCredentials.WrapMessage("login failed")),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Wrong Password!"}`,
		},
		{
			name:     "transport error hides cause",
			err:      domainerrors.NewTransportError(errors.New("dial tcp 10.0.0.7:27017"), domainerrors.ErrRegistrationFailed),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Server error"}`,
			wantLog:  true,
		},
		{
			name:     "echo error",
			err:      echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Not Found"}`,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error"}`,
			wantLog:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "10.0.0.7")
			if tt.wantLog {
				assert.NotEmpty(t, logs.String())
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}

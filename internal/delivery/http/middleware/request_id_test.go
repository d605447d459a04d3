package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "authsvc/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated", incoming: ""},
		{name: "propagated", incoming: "req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenID string
			err := m.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				seenID = deliverycontext.GetRequestIDFromContext(ctx)
				assert.NotNil(t, deliverycontext.GetLogger(ctx))

				return nil
			})(c)
			require.NoError(t, err)

			assert.NotEmpty(t, seenID)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, seenID)
			}
			assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seenID, deliverycontext.GetRequestID(c))
		})
	}
}

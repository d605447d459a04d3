package validator

import (
	"testing"

	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"

	"github.com/stretchr/testify/assert"
)

type credentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&credentials{Email: "a@x.io", Password: "pw1"}))

	err := v.Validate(&credentials{Email: "a@x.io"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "Password")
}

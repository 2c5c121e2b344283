package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatus(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{BadRequest("bad", nil), CodeBadRequest, http.StatusBadRequest},
		{Validation("invalid", nil), CodeValidation, http.StatusUnprocessableEntity},
		{NotFound("Route", nil), CodeNotFound, http.StatusNotFound},
		{Storage("down", nil), CodeStorage, http.StatusInternalServerError},
		{Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.Status)
		assert.True(t, Is(tc.err, tc.code))
	}
}

func TestStorageWrapsSentinel(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("Failed to store sprite", cause)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsStorage(err))

	wrapped := fmt.Errorf("upload: %w", err)
	assert.True(t, IsStorage(wrapped))
	assert.True(t, Is(wrapped, CodeStorage))
}

func TestIsStorageOnRawSentinel(t *testing.T) {
	err := fmt.Errorf("%w: timeout", ErrStorage)
	assert.True(t, IsStorage(err))
	assert.False(t, IsStorage(BadRequest("nope", nil)))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST: File type not supported", BadRequest("File type not supported", nil).Error())
	assert.Contains(t, Internal("boom", errors.New("nil map")).Error(), "nil map")
}

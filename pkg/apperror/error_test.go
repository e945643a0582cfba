package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnprocessable(t *testing.T) {
	cause := errors.New("bad field")
	err := Unprocessable("validation failed", []string{"Email: is required"}, cause)

	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	assert.Equal(t, "validation failed", err.Error())
	assert.Equal(t, []string{"Email: is required"}, err.Details)
	assert.ErrorIs(t, err, cause)
}

func TestAsAppError(t *testing.T) {
	var wrapped error = Internal(errors.New("write failed"))

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, BadRequest("nope").Code)
}

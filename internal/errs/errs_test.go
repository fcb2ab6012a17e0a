package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "UNPROCESSABLE_ENTITY", MakeUpperCaseWithUnderscores("Unprocessable Entity"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewUnprocessableEntityError(t *testing.T) {
	fields := []FieldError{{Field: "text", Error: "is required"}}
	err := NewUnprocessableEntityError("Invalid game name.", true, fields)

	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", err.Code)
	assert.Equal(t, "Invalid game name.", err.Error())
	assert.True(t, err.Override)
	assert.Equal(t, fields, err.Errors)
}

func TestNewBadRequestErrorCustomCode(t *testing.T) {
	code := "GAME_INVALID"
	err := NewBadRequestError("bad", false, &code, nil, nil)
	assert.Equal(t, "GAME_INVALID", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)

	err = NewBadRequestError("bad", false, nil, nil, nil)
	assert.Equal(t, "BAD_REQUEST", err.Code)
}

func TestInternalServerErrorWithMessage(t *testing.T) {
	base := NewInternalServerError()
	custom := base.WithMessage("Failed to load games.")

	assert.Equal(t, "Internal Server Error", base.Message)
	assert.Equal(t, "Failed to load games.", custom.Message)
	assert.Equal(t, http.StatusInternalServerError, custom.Status)
	assert.Equal(t, base.Code, custom.Code)
}

func TestHTTPErrorIsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("saving: %w", NewNotFoundError("missing", false, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("text is blank"))
	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.Equal(t, "Validation failed: text is blank", err.Message)
}

func TestWithCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalServerError().WithMessage("Failed to save game.").WithCause(cause)

	assert.Equal(t, "Failed to save game.", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Same(t, cause, err.Unwrap())

	// The cause survives further copies and is never serialized.
	copied := err.WithMessage("other")
	assert.ErrorIs(t, copied, cause)

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.NotContains(t, string(data), "connection reset")
}

package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := NewTimeoutError("Network timeout while searching for items")

	assert.Equal(t, ErrorTypeTimeout, err.Type)
	assert.Equal(t, "TIMEOUT: Network timeout while searching for items", err.Error())
	assert.Equal(t, http.StatusGatewayTimeout, err.HTTPStatus)
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewNetworkError("Network error while searching for items").WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAsAppError(t *testing.T) {
	inner := NewDecodeError("Failed to decode search results: unexpected EOF")
	wrapped := fmt.Errorf("search: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeDecode, appErr.Type)

	_, ok = AsAppError(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestIsType(t *testing.T) {
	err := NewValidationError("search term too short")

	assert.True(t, IsType(err, ErrorTypeValidation))
	assert.False(t, IsType(err, ErrorTypeTimeout))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeValidation))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Network error while searching for items",
		UserMessage(NewNetworkError("Network error while searching for items")))
	assert.Equal(t, "Internal error", UserMessage(fmt.Errorf("oops")))
}

func TestHTTPStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatusFor(NewNotFoundError("item")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFor(fmt.Errorf("plain")))
}

package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WrapKeepsIdentity(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := ErrDatabaseError.Wrap(cause)

	assert.True(t, Is(err, ErrDatabaseError))
	assert.False(t, Is(err, ErrDocumentStoreError))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAppError_CopiesDoNotMutateShared(t *testing.T) {
	detailed := ErrInvalidRequest.WithDetails(map[string]interface{}{"field": "page"})
	renamed := ErrInvalidRequest.WithMessage("bad page")

	assert.Nil(t, ErrInvalidRequest.Details)
	assert.Equal(t, "Invalid request parameters", ErrInvalidRequest.Message)
	assert.Equal(t, "page", detailed.Details["field"])
	assert.Equal(t, "bad page", renamed.Message)
	assert.Equal(t, http.StatusBadRequest, renamed.StatusCode)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrComplexNotFound)

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "COMPLEX_NOT_FOUND", appErr.Code)

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}

package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{NewValidationError("name required"), http.StatusUnprocessableEntity},
		{NewBadRequestError("bad date"), http.StatusBadRequest},
		{NewInvalidMealSlotError("brunch"), http.StatusBadRequest},
		{NewNotFoundError("meal plan"), http.StatusNotFound},
		{NewMealNotFoundError("abc"), http.StatusNotFound},
		{NewGroceryListNotFoundError("abc"), http.StatusNotFound},
		{NewInternalError(""), http.StatusInternalServerError},
		{NewDatabaseError("create meal", errors.New("disk full")), http.StatusInternalServerError},
		{NewSuggestionFailedError("no JSON", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.StatusCode(), string(tt.err.Code))
	}
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	appErr := NewBadRequestError("original")
	assert.Same(t, appErr, Wrap(appErr, "ignored"))

	wrapped := Wrap(errors.New("boom"), "request failed")
	assert.Equal(t, CodeInternal, wrapped.Code)
	assert.ErrorContains(t, wrapped.Unwrap(), "boom")
}

func TestToErrorResponse(t *testing.T) {
	appErr := NewMealNotFoundError("abc")
	resp := ToErrorResponse(appErr, "req-123")

	assert.Equal(t, CodeMealNotFound, resp.Error.Code)
	assert.Equal(t, "req-123", resp.Error.RequestID)
	assert.NotEmpty(t, resp.Error.Timestamp)
	assert.Equal(t, "abc", resp.Error.Metadata["meal_id"])
}

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnwards/sampledata/internal/api"
)

func TestCategoryFor(t *testing.T) {
	cases := map[int]string{
		http.StatusBadRequest:          api.CategoryValidationError,
		http.StatusUnauthorized:        api.CategoryUnauthorized,
		http.StatusNotFound:            api.CategoryObjectNotFound,
		http.StatusMethodNotAllowed:    api.CategoryObjectNotFound,
		http.StatusInternalServerError: api.CategoryInternalError,
		http.StatusTeapot:              api.CategoryInternalError,
	}
	for status, want := range cases {
		assert.Equal(t, want, api.CategoryFor(status), "status %d", status)
	}
}

func TestNewError(t *testing.T) {
	err := api.NewError(http.StatusBadRequest, "bad step", "abc-123",
		api.ErrorDetail{Message: "step must be an integer", Code: "INVALID_INTEGER", In: "step"})

	assert.Equal(t, "error", err.Status)
	assert.Equal(t, api.CategoryValidationError, err.Category)
	assert.Equal(t, "abc-123", err.CorrelationID)
	require.Len(t, err.Errors, 1)
	assert.Equal(t, "step", err.Errors[0].In)
	assert.EqualError(t, err, "VALIDATION_ERROR: bad step")
}

func TestFailUsesRequestCorrelationID(t *testing.T) {
	handler := api.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, r, http.StatusNotFound, "Article not found")
	}), api.RequestID())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content/articles/9", http.NoBody))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body api.Error
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, api.CategoryObjectNotFound, body.Category)
	assert.Equal(t, "Article not found", body.Message)
	assert.Equal(t, rec.Header().Get(api.HeaderCorrelationID), body.CorrelationID)
}

func TestInvalidParam(t *testing.T) {
	rec := httptest.NewRecorder()
	api.InvalidParam(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody), "catid", "INVALID_INTEGER", "catid must be an integer")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body api.Error
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Invalid catid", body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, api.ErrorDetail{Message: "catid must be an integer", Code: "INVALID_INTEGER", In: "catid"}, body.Errors[0])
}

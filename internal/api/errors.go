package api

import (
	"net/http"
)

// Error categories used in the error envelope.
const (
	CategoryValidationError = "VALIDATION_ERROR"
	CategoryObjectNotFound  = "OBJECT_NOT_FOUND"
	CategoryUnauthorized    = "UNAUTHORIZED"
	CategoryInternalError   = "INTERNAL_ERROR"
)

// Error is the JSON error envelope returned by every endpoint.
type Error struct {
	Status        string        `json:"status"`
	Message       string        `json:"message"`
	CorrelationID string        `json:"correlationId"`
	Category      string        `json:"category"`
	Errors        []ErrorDetail `json:"errors,omitempty"`
}

func (e *Error) Error() string { return e.Category + ": " + e.Message }

// ErrorDetail points at the request parameter that caused a validation error.
type ErrorDetail struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	In      string `json:"in,omitempty"`
}

// CategoryFor maps an HTTP status code onto an error category.
func CategoryFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CategoryValidationError
	case http.StatusUnauthorized:
		return CategoryUnauthorized
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return CategoryObjectNotFound
	default:
		return CategoryInternalError
	}
}

// NewError builds the envelope for status.
func NewError(status int, message, correlationID string, details ...ErrorDetail) *Error {
	return &Error{
		Status:        "error",
		Message:       message,
		CorrelationID: correlationID,
		Category:      CategoryFor(status),
		Errors:        details,
	}
}

// WriteError writes an Error as a JSON response with the given HTTP status code.
func WriteError(w http.ResponseWriter, statusCode int, apiErr *Error) {
	WriteJSON(w, statusCode, apiErr)
}

// Fail writes the envelope for status, tagged with r's correlation ID.
func Fail(w http.ResponseWriter, r *http.Request, status int, message string, details ...ErrorDetail) {
	WriteError(w, status, NewError(status, message, CorrelationID(r.Context()), details...))
}

// InvalidParam writes a 400 for a single bad request parameter.
func InvalidParam(w http.ResponseWriter, r *http.Request, param, code, message string) {
	Fail(w, r, http.StatusBadRequest, "Invalid "+param, ErrorDetail{Message: message, Code: code, In: param})
}

package errors

import (
	"encoding/json"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Write sends the error as a JSON response body with its status code.
func (e *HTTPError) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}

// Helpers for common errors
var (
	BadRequest          = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	Unauthorized        = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
	NotFound            = func(msg string) *HTTPError { return NewHTTPError(http.StatusNotFound, msg) }
	Conflict            = func(msg string) *HTTPError { return NewHTTPError(http.StatusConflict, msg) }
	UnprocessableEntity = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnprocessableEntity, msg) }
	BadGateway          = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadGateway, msg) }
)

package apierror

import (
	"errors"
	"net/http"
)

// APIError is a failure that maps directly onto an HTTP status.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []any
}

func (e *APIError) Error() string {
	return e.Message
}

func New(statusCode int, message string, details ...any) *APIError {
	if details == nil {
		details = []any{}
	}
	return &APIError{StatusCode: statusCode, Message: message, Errors: details}
}

func BadRequest(message string, details ...any) *APIError {
	return New(http.StatusBadRequest, message, details...)
}

func Unauthorized(message string) *APIError {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *APIError {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *APIError {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *APIError {
	return New(http.StatusConflict, message)
}

func Internal(message string) *APIError {
	return New(http.StatusInternalServerError, message)
}

func ServiceUnavailable(message string) *APIError {
	return New(http.StatusServiceUnavailable, message)
}

// As unwraps err into an *APIError when it is one.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// StatusOf returns the HTTP status of err, 500 for untyped errors.
func StatusOf(err error) int {
	if apiErr, ok := As(err); ok {
		return apiErr.StatusCode
	}
	return http.StatusInternalServerError
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows which status it maps to.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError builds an HTTPError whose error code equals the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// WithCode overrides the business error code while keeping the status.
func (e *HTTPError) WithCode(code int) *HTTPError {
	cp := *e
	cp.Code = code
	return &cp
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrBadGateway          = NewHTTPError(http.StatusBadGateway, "upstream catalog service unavailable")
)

// NewValidationError wraps a binding/validation failure as a 400.
func NewValidationError(err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
}

// AsHTTPError unwraps err into an *HTTPError if it carries one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

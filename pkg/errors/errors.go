package errors

import (
	"errors"
	"net/http"
)

// HTTPError carries the status code and client-facing message for a failed request.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// StatusCode extracts the HTTP status from err. Errors that are not HTTPErrors map to 400.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusBadRequest
}

package errors

import "net/http"

// HTTPError represents an HTTP error with an application code and status code.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError returns an HTTPError whose status code equals code when code
// is a valid HTTP status, and 400 otherwise.
func NewHTTPError(code int, message string) *HTTPError {
	status := code
	if http.StatusText(code) == "" {
		status = http.StatusBadRequest
	}
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

// NewUnauthorizedHTTPError returns a 401 Unauthorized error.
func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{
		Code:       StatusUnauthorized,
		Message:    MessageUnauthorized,
		StatusCode: StatusUnauthorized,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

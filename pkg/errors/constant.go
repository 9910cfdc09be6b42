package errors

import "net/http"

const (
	// StatusUnauthorized is the status code for predefined auth errors.
	StatusUnauthorized = http.StatusUnauthorized
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Unauthorized"
)

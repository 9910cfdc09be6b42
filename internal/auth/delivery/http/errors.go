package http

import (
	"net/http"

	"logistic-api/internal/auth"
	"logistic-api/pkg/errors"
)

var (
	errInvalidCredentials = errors.NewHTTPError(http.StatusUnauthorized, "Invalid username or password")
	errInactiveUser       = errors.NewHTTPError(http.StatusForbidden, "User is not active")
	errTooManyAttempts    = errors.NewHTTPError(http.StatusTooManyRequests, "Too many failed attempts, try again later")
)

func (h *Handler) mapError(err error) error {
	switch err {
	case auth.ErrInvalidCredentials:
		return errInvalidCredentials
	case auth.ErrInactiveUser:
		return errInactiveUser
	case auth.ErrTooManyAttempts:
		return errTooManyAttempts
	}
	return err
}

package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("user is not active")
	ErrTooManyAttempts    = errors.New("too many failed attempts")
)

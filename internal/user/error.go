package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrUpdateFailed = errors.New("failed to update")
	ErrEmptyUpdate  = errors.New("no fields to update")
)

var ErrInvalidID = errors.New("invalid id")

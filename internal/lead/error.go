package lead

import "errors"

var (
	ErrLeadNotFound = errors.New("lead not found")
	ErrUpdateFailed = errors.New("failed to update")
	ErrEmptyUpdate  = errors.New("no fields to update")
	ErrInvalidID    = errors.New("invalid id")
)

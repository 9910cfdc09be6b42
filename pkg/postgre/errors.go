package postgre

import "errors"

var ErrInvalidUUID = errors.New("invalid UUID format")

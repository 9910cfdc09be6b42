package postgre

import (
	"fmt"

	"github.com/google/uuid"
)

// IsUUID validates if the given string is a valid UUID.
func IsUUID(u string) error {
	if u == "" {
		return fmt.Errorf("%w: UUID cannot be empty", ErrInvalidUUID)
	}
	if _, err := uuid.Parse(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}
	return nil
}

// IsValidUUID reports whether u is a valid UUID.
func IsValidUUID(u string) bool {
	return IsUUID(u) == nil
}

// NewUUID generates a new random UUID string.
func NewUUID() string {
	return uuid.New().String()
}

package search

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is the root of every compile failure.
	ErrInvalidRequest = errors.New("invalid search request")
	// ErrUnsupportedOperator is reported for operators outside the operator table.
	ErrUnsupportedOperator = errors.New("unsupported operator")
	// ErrCoercion is reported when a value cannot be converted to what its operator needs.
	ErrCoercion = errors.New("value coercion failed")
)

// Error describes why a request was rejected. Index is the offending clause
// position, or -1 when the request itself is malformed.
type Error struct {
	Kind   error
	Index  int
	Field  string
	Reason string
}

func (e *Error) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%v: clause %d (%s): %s", e.Kind, e.Index, e.Field, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Is makes every compile error match ErrInvalidRequest.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidRequest
}

func requestError(format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidRequest, Index: -1, Reason: fmt.Sprintf(format, args...)}
}

func clauseError(kind error, index int, field string, format string, args ...any) *Error {
	return &Error{Kind: kind, Index: index, Field: field, Reason: fmt.Sprintf(format, args...)}
}

package http

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"logistic-api/internal/user"
	"logistic-api/pkg/errors"
	"logistic-api/pkg/search"
)

var (
	errUserNotFound = errors.NewHTTPError(http.StatusNotFound, "User not found")
	errUserExists   = errors.NewHTTPError(http.StatusConflict, "User with this email already exists")
	errUpdateFailed = errors.NewHTTPError(http.StatusBadRequest, "Failed to update")
	errEmptyUpdate  = errors.NewHTTPError(http.StatusBadRequest, "No fields to update")
	errInvalidID    = errors.NewHTTPError(http.StatusBadRequest, "Invalid id")
)

// mapError converts domain errors to HTTP errors. Anything it does not
// recognise is returned as is and reported as a 500.
func (h *Handler) mapError(err error) error {
	var se *search.Error
	if stderrors.As(err, &se) {
		return newSearchValidationError(se)
	}

	switch err {
	case user.ErrUserNotFound:
		return errUserNotFound
	case user.ErrUserExists:
		return errUserExists
	case user.ErrUpdateFailed:
		return errUpdateFailed
	case user.ErrEmptyUpdate:
		return errEmptyUpdate
	case user.ErrInvalidID:
		return errInvalidID
	}
	return err
}

func newSearchValidationError(se *search.Error) *errors.ValidationError {
	field := "request"
	if se.Index >= 0 {
		field = fmt.Sprintf("clauses[%d]", se.Index)
	}
	return errors.NewValidationError(http.StatusBadRequest, field, se.Error())
}

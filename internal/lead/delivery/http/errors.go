package http

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"logistic-api/internal/lead"
	"logistic-api/pkg/errors"
	"logistic-api/pkg/search"
)

var (
	errLeadNotFound = errors.NewHTTPError(http.StatusNotFound, "Lead not found")
	errUpdateFailed = errors.NewHTTPError(http.StatusBadRequest, "Failed to update")
	errEmptyUpdate  = errors.NewHTTPError(http.StatusBadRequest, "No fields to update")
	errInvalidID    = errors.NewHTTPError(http.StatusBadRequest, "Invalid id")
)

func (h *Handler) mapError(err error) error {
	var se *search.Error
	if stderrors.As(err, &se) {
		field := "request"
		if se.Index >= 0 {
			field = fmt.Sprintf("clauses[%d]", se.Index)
		}
		return errors.NewValidationError(http.StatusBadRequest, field, se.Error())
	}

	switch err {
	case lead.ErrLeadNotFound:
		return errLeadNotFound
	case lead.ErrUpdateFailed:
		return errUpdateFailed
	case lead.ErrEmptyUpdate:
		return errEmptyUpdate
	case lead.ErrInvalidID:
		return errInvalidID
	}
	return err
}

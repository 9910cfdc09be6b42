package http

import (
	"logistic-api/internal/lead"
	"logistic-api/pkg/log"
	"logistic-api/pkg/validator"
)

type Handler struct {
	uc lead.UseCase
	l  log.Logger
	v  *validator.Validator
}

func New(l log.Logger, uc lead.UseCase, v *validator.Validator) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
		v:  v,
	}
}

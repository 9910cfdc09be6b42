package http

import (
	"logistic-api/internal/auth"
	"logistic-api/pkg/log"
	"logistic-api/pkg/validator"
)

type Handler struct {
	uc auth.UseCase
	l  log.Logger
	v  *validator.Validator
}

func New(l log.Logger, uc auth.UseCase, v *validator.Validator) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
		v:  v,
	}
}

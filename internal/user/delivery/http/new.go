package http

import (
	"logistic-api/internal/user"
	"logistic-api/pkg/log"
	"logistic-api/pkg/validator"
)

type Handler struct {
	uc user.UseCase
	l  log.Logger
	v  *validator.Validator
}

func New(l log.Logger, uc user.UseCase, v *validator.Validator) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
		v:  v,
	}
}

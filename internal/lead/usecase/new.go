package usecase

import (
	"logistic-api/internal/lead"
	"logistic-api/internal/lead/repository"
	pkgLog "logistic-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) lead.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}

package usecase

import (
	"logistic-api/internal/user"
	"logistic-api/internal/user/repository"
	pkgLog "logistic-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) user.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}

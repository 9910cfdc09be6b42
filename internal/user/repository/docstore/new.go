package docstore

import (
	"logistic-api/internal/user/repository"
	pkgDocstore "logistic-api/pkg/docstore"
	pkgLog "logistic-api/pkg/log"
)

type implRepository struct {
	l     pkgLog.Logger
	store pkgDocstore.Store
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, store pkgDocstore.Store) repository.Repository {
	return &implRepository{
		l:     l,
		store: store,
	}
}

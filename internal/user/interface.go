package user

import (
	"context"

	"logistic-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Search(ctx context.Context, sc model.Scope, ip SearchInput) (SearchOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.User, error)
	GetOne(ctx context.Context, sc model.Scope, ip GetOneInput) (model.User, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.User, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) (model.User, error)
}

package repository

import (
	"context"
	"errors"

	"logistic-api/internal/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.User, error)
	Count(ctx context.Context, sc model.Scope, opts CountOptions) (int64, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.User, error)
	GetOne(ctx context.Context, sc model.Scope, opts GetOneOptions) (model.User, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.User, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (int64, error)
	Delete(ctx context.Context, sc model.Scope, id string) (model.User, error)
}

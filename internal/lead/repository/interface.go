package repository

import (
	"context"
	"errors"

	"logistic-api/internal/model"
)

var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Lead, error)
	Count(ctx context.Context, sc model.Scope, opts CountOptions) (int64, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Lead, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Lead, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (int64, error)
	Delete(ctx context.Context, sc model.Scope, id string) (model.Lead, error)
}

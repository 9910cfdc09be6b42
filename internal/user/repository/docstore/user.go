package docstore

import (
	"context"
	"errors"

	"logistic-api/internal/model"
	"logistic-api/internal/user/repository"
	pkgDocstore "logistic-api/pkg/docstore"
	"logistic-api/pkg/paginator"
	"logistic-api/pkg/search"
)

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.User, error) {
	recs, err := r.store.Find(ctx, model.UserCollection, opts.Predicate, opts.PaginateQuery)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.docstore.List.Find: %v", err)
		return nil, err
	}

	usrs := make([]model.User, 0, len(recs))
	for _, rec := range recs {
		u, err := model.NewUserFromRecord(rec)
		if err != nil {
			r.l.Errorf(ctx, "internal.user.repository.docstore.List.NewUserFromRecord: %v", err)
			return nil, err
		}
		usrs = append(usrs, u)
	}

	return usrs, nil
}

func (r *implRepository) Count(ctx context.Context, sc model.Scope, opts repository.CountOptions) (int64, error) {
	total, err := r.store.Count(ctx, model.UserCollection, opts.Predicate)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.docstore.Count: %v", err)
		return 0, err
	}
	return total, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	rec, err := r.store.Get(ctx, model.UserCollection, id)
	if err != nil {
		if errors.Is(err, pkgDocstore.ErrNotFound) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.docstore.Detail.Get: %v", err)
		return model.User{}, err
	}

	return model.NewUserFromRecord(rec)
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.User, error) {
	recs, err := r.store.Find(ctx, model.UserCollection,
		search.Eq("email", opts.Email),
		paginator.PaginateQuery{Page: 1, Limit: 1},
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.docstore.GetOne.Find: %v", err)
		return model.User{}, err
	}
	if len(recs) == 0 {
		return model.User{}, repository.ErrNotFound
	}

	return model.NewUserFromRecord(recs[0])
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.User, error) {
	doc, err := opts.User.ToDocument()
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.docstore.Create.ToDocument: %v", err)
		return model.User{}, err
	}

	rec, err := r.store.Insert(ctx, model.UserCollection, pkgDocstore.Record{
		ID:   opts.User.ID,
		Data: doc,
	})
	if err != nil {
		if errors.Is(err, pkgDocstore.ErrDuplicate) {
			return model.User{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.user.repository.docstore.Create.Insert: %v", err)
		return model.User{}, err
	}

	return model.NewUserFromRecord(rec)
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (int64, error) {
	n, err := r.store.Update(ctx, model.UserCollection, opts.ID, opts.Set)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.docstore.Update: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	rec, err := r.store.Delete(ctx, model.UserCollection, id)
	if err != nil {
		if errors.Is(err, pkgDocstore.ErrNotFound) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.docstore.Delete: %v", err)
		return model.User{}, err
	}

	return model.NewUserFromRecord(rec)
}

package usecase

import (
	"context"

	"logistic-api/internal/model"
	"logistic-api/internal/user"
	"logistic-api/internal/user/repository"
	"logistic-api/pkg/encrypter"
	"logistic-api/pkg/paginator"
	postgresPkg "logistic-api/pkg/postgre"
	"logistic-api/pkg/search"

	"golang.org/x/sync/errgroup"
)

func (uc *usecase) Search(ctx context.Context, sc model.Scope, ip user.SearchInput) (user.SearchOutput, error) {
	pred, err := search.Compile(ip.Request,
		search.WithDateFields(model.UserDateFields...),
		search.WithDeniedFields(model.UserDeniedFields...),
	)
	if err != nil {
		return user.SearchOutput{}, err
	}

	pq := ip.PaginateQuery
	pq.Adjust()

	var (
		usrs  []model.User
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		usrs, err = uc.repo.List(gctx, sc, repository.ListOptions{Predicate: pred, PaginateQuery: pq})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.repo.Count(gctx, sc, repository.CountOptions{Predicate: pred})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Search: %v", err)
		return user.SearchOutput{}, err
	}

	return user.SearchOutput{
		Users: usrs,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(usrs)),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		},
	}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	usr, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Detail: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (uc *usecase) GetOne(ctx context.Context, sc model.Scope, ip user.GetOneInput) (model.User, error) {
	usr, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Email: ip.Email})
	if err != nil {
		if err == repository.ErrNotFound {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.GetOne: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip user.CreateInput) (model.User, error) {
	_, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Email: ip.Email})
	if err == nil {
		return model.User{}, user.ErrUserExists
	}
	if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.user.usecase.Create.GetOne: %v", err)
		return model.User{}, err
	}

	hash, err := encrypter.HashPassword(ip.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Create.HashPassword: %v", err)
		return model.User{}, err
	}

	status := ip.Status
	if status == "" {
		status = model.UserStatusActive
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{User: model.User{
		ID:            postgresPkg.NewUUID(),
		Name:          ip.Name,
		Surname:       ip.Surname,
		Email:         ip.Email,
		Phone:         ip.Phone,
		Password:      hash,
		WhatsappPhone: ip.WhatsappPhone,
		Role:          ip.Role,
		Status:        status,
		Company:       ip.Company,
		Position:      ip.Position,
	}})
	if err != nil {
		if err == repository.ErrDuplicate {
			return model.User{}, user.ErrUserExists
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Create: %v", err)
		return model.User{}, err
	}

	return created, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip user.UpdateInput) (user.UpdateOutput, error) {
	set := search.Document{}
	putString(set, "name", ip.Name)
	putString(set, "surname", ip.Surname)
	putString(set, "email", ip.Email)
	putString(set, "phone", ip.Phone)
	putString(set, "whatsapp_phone", ip.WhatsappPhone)
	putString(set, "role", ip.Role)
	putString(set, "status", ip.Status)
	putString(set, "company", ip.Company)
	putString(set, "position", ip.Position)

	if ip.Password != nil {
		hash, err := encrypter.HashPassword(*ip.Password)
		if err != nil {
			uc.l.Errorf(ctx, "internal.user.usecase.Update.HashPassword: %v", err)
			return user.UpdateOutput{}, err
		}
		set["password"] = hash
	}

	if len(set) == 0 {
		return user.UpdateOutput{}, user.ErrEmptyUpdate
	}

	if ip.Email != nil {
		other, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Email: *ip.Email})
		if err == nil && other.ID != ip.ID {
			return user.UpdateOutput{}, user.ErrUserExists
		}
		if err != nil && err != repository.ErrNotFound {
			uc.l.Errorf(ctx, "internal.user.usecase.Update.GetOne: %v", err)
			return user.UpdateOutput{}, err
		}
	}

	n, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{ID: ip.ID, Set: set})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Update: %v", err)
		return user.UpdateOutput{}, err
	}
	if n == 0 {
		return user.UpdateOutput{}, user.ErrUpdateFailed
	}

	return user.UpdateOutput{ModifiedCount: n}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	usr, err := uc.repo.Delete(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Delete: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func putString(set search.Document, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}

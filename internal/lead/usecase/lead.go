package usecase

import (
	"context"
	"time"

	"logistic-api/internal/lead"
	"logistic-api/internal/lead/repository"
	"logistic-api/internal/model"
	"logistic-api/pkg/paginator"
	postgresPkg "logistic-api/pkg/postgre"
	"logistic-api/pkg/search"

	"golang.org/x/sync/errgroup"
)

func (uc *usecase) Search(ctx context.Context, sc model.Scope, ip lead.SearchInput) (lead.SearchOutput, error) {
	pred, err := search.Compile(ip.Request, search.WithDateFields(model.LeadDateFields...))
	if err != nil {
		return lead.SearchOutput{}, err
	}

	pq := ip.PaginateQuery
	pq.Adjust()

	var (
		leads []model.Lead
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leads, err = uc.repo.List(gctx, sc, repository.ListOptions{Predicate: pred, PaginateQuery: pq})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.repo.Count(gctx, sc, repository.CountOptions{Predicate: pred})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "internal.lead.usecase.Search: %v", err)
		return lead.SearchOutput{}, err
	}

	return lead.SearchOutput{
		Leads: leads,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(leads)),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		},
	}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.Lead, error) {
	ld, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Lead{}, lead.ErrLeadNotFound
		}
		uc.l.Errorf(ctx, "internal.lead.usecase.Detail: %v", err)
		return model.Lead{}, err
	}

	return ld, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip lead.CreateInput) (model.Lead, error) {
	sentTo := ip.SentTo
	if sentTo == nil {
		sentTo = []string{}
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Lead: model.Lead{
		ID:           postgresPkg.NewUUID(),
		TotalBedroom: ip.TotalBedroom,
		MoveDate:     ip.MoveDate,
		IsQualified:  ip.IsQualified,
		Category:     ip.Category,
		ContactInfo:  ip.ContactInfo,
		MovingFrom:   ip.MovingFrom,
		MovingTo:     ip.MovingTo,
		SentTo:       sentTo,
		CreatedBy:    sc.UserID,
	}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.lead.usecase.Create: %v", err)
		return model.Lead{}, err
	}

	return created, nil
}

// leadSet is the stored shape of an update; nil pointers are omitted.
type leadSet struct {
	TotalBedroom *int               `json:"total_bedroom,omitempty"`
	MoveDate     *time.Time         `json:"move_date,omitempty"`
	IsQualified  *bool              `json:"is_qualified,omitempty"`
	IsDeleted    *bool              `json:"is_deleted,omitempty"`
	Category     *string            `json:"category,omitempty"`
	ContactInfo  *model.ContactInfo `json:"contact_info,omitempty"`
	MovingFrom   *model.Address     `json:"moving_from,omitempty"`
	MovingTo     *model.Address     `json:"moving_to,omitempty"`
	SentTo       *[]string          `json:"sent_to,omitempty"`
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip lead.UpdateInput) (lead.UpdateOutput, error) {
	set, err := search.NewDocument(leadSet{
		TotalBedroom: ip.TotalBedroom,
		MoveDate:     ip.MoveDate,
		IsQualified:  ip.IsQualified,
		IsDeleted:    ip.IsDeleted,
		Category:     ip.Category,
		ContactInfo:  ip.ContactInfo,
		MovingFrom:   ip.MovingFrom,
		MovingTo:     ip.MovingTo,
		SentTo:       ip.SentTo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.lead.usecase.Update.NewDocument: %v", err)
		return lead.UpdateOutput{}, err
	}
	if len(set) == 0 {
		return lead.UpdateOutput{}, lead.ErrEmptyUpdate
	}

	n, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{ID: ip.ID, Set: set})
	if err != nil {
		uc.l.Errorf(ctx, "internal.lead.usecase.Update: %v", err)
		return lead.UpdateOutput{}, err
	}
	if n == 0 {
		return lead.UpdateOutput{}, lead.ErrUpdateFailed
	}

	return lead.UpdateOutput{ModifiedCount: n}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) (model.Lead, error) {
	ld, err := uc.repo.Delete(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Lead{}, lead.ErrLeadNotFound
		}
		uc.l.Errorf(ctx, "internal.lead.usecase.Delete: %v", err)
		return model.Lead{}, err
	}

	return ld, nil
}

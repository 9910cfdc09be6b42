package docstore

import (
	"context"
	"errors"

	"logistic-api/internal/lead/repository"
	"logistic-api/internal/model"
	pkgDocstore "logistic-api/pkg/docstore"
)

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Lead, error) {
	recs, err := r.store.Find(ctx, model.LeadCollection, opts.Predicate, opts.PaginateQuery)
	if err != nil {
		r.l.Errorf(ctx, "internal.lead.repository.docstore.List.Find: %v", err)
		return nil, err
	}

	leads := make([]model.Lead, 0, len(recs))
	for _, rec := range recs {
		ld, err := model.NewLeadFromRecord(rec)
		if err != nil {
			r.l.Errorf(ctx, "internal.lead.repository.docstore.List.NewLeadFromRecord: %v", err)
			return nil, err
		}
		leads = append(leads, ld)
	}

	return leads, nil
}

func (r *implRepository) Count(ctx context.Context, sc model.Scope, opts repository.CountOptions) (int64, error) {
	total, err := r.store.Count(ctx, model.LeadCollection, opts.Predicate)
	if err != nil {
		r.l.Errorf(ctx, "internal.lead.repository.docstore.Count: %v", err)
		return 0, err
	}
	return total, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Lead, error) {
	rec, err := r.store.Get(ctx, model.LeadCollection, id)
	if err != nil {
		if errors.Is(err, pkgDocstore.ErrNotFound) {
			return model.Lead{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.lead.repository.docstore.Detail.Get: %v", err)
		return model.Lead{}, err
	}

	return model.NewLeadFromRecord(rec)
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Lead, error) {
	doc, err := opts.Lead.ToDocument()
	if err != nil {
		r.l.Errorf(ctx, "internal.lead.repository.docstore.Create.ToDocument: %v", err)
		return model.Lead{}, err
	}

	rec, err := r.store.Insert(ctx, model.LeadCollection, pkgDocstore.Record{
		ID:   opts.Lead.ID,
		Data: doc,
	})
	if err != nil {
		r.l.Errorf(ctx, "internal.lead.repository.docstore.Create.Insert: %v", err)
		return model.Lead{}, err
	}

	return model.NewLeadFromRecord(rec)
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (int64, error) {
	n, err := r.store.Update(ctx, model.LeadCollection, opts.ID, opts.Set)
	if err != nil {
		r.l.Errorf(ctx, "internal.lead.repository.docstore.Update: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) (model.Lead, error) {
	rec, err := r.store.Delete(ctx, model.LeadCollection, id)
	if err != nil {
		if errors.Is(err, pkgDocstore.ErrNotFound) {
			return model.Lead{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.lead.repository.docstore.Delete: %v", err)
		return model.Lead{}, err
	}

	return model.NewLeadFromRecord(rec)
}

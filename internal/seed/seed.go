package seed

import (
	"context"
	"fmt"

	"logistic-api/internal/model"
	"logistic-api/pkg/docstore"
	"logistic-api/pkg/encrypter"
	"logistic-api/pkg/log"
)

// Result counts the upserted documents.
type Result struct {
	Users int
	Leads int
}

// Seed creates the user and lead collections and upserts the fixture.
// Running it again resets the fixture documents to their seeded state.
func Seed(ctx context.Context, l log.Logger, store docstore.Store) (Result, error) {
	for _, c := range []string{model.UserCollection, model.LeadCollection} {
		if err := store.EnsureCollection(ctx, c); err != nil {
			l.Errorf(ctx, "internal.seed.Seed.EnsureCollection(%s): %v", c, err)
			return Result{}, err
		}
	}

	var res Result
	for _, u := range Users() {
		if !encrypter.IsHashed(u.Password) {
			hash, err := encrypter.HashPassword(u.Password)
			if err != nil {
				return res, fmt.Errorf("hash password for %s: %w", u.Email, err)
			}
			u.Password = hash
		}
		doc, err := u.ToDocument()
		if err != nil {
			return res, err
		}
		if _, err := store.Upsert(ctx, model.UserCollection, docstore.Record{ID: u.ID, Data: doc}); err != nil {
			l.Errorf(ctx, "internal.seed.Seed.Upsert(user %s): %v", u.ID, err)
			return res, err
		}
		res.Users++
	}
	l.Infof(ctx, "Upserted %d documents into '%s'", res.Users, model.UserCollection)

	for _, ld := range Leads() {
		doc, err := ld.ToDocument()
		if err != nil {
			return res, err
		}
		if _, err := store.Upsert(ctx, model.LeadCollection, docstore.Record{ID: ld.ID, Data: doc}); err != nil {
			l.Errorf(ctx, "internal.seed.Seed.Upsert(lead %s): %v", ld.ID, err)
			return res, err
		}
		res.Leads++
	}
	l.Infof(ctx, "Upserted %d documents into '%s'", res.Leads, model.LeadCollection)

	return res, nil
}

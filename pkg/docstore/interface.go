package docstore

import (
	"context"
	"time"

	"logistic-api/pkg/paginator"
	"logistic-api/pkg/search"
)

// Record is one stored document. Data never carries the id; the timestamps
// are mirrored into Data under FieldCreatedAt and FieldUpdatedAt so they
// can be filtered like any other field.
type Record struct {
	ID        string
	Data      search.Document
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store executes compiled predicates against named collections.
//
//go:generate mockery --name Store
type Store interface {
	EnsureCollection(ctx context.Context, collection string) error
	Find(ctx context.Context, collection string, pred search.Predicate, pq paginator.PaginateQuery) ([]Record, error)
	Count(ctx context.Context, collection string, pred search.Predicate) (int64, error)
	Get(ctx context.Context, collection, id string) (Record, error)
	Insert(ctx context.Context, collection string, rec Record) (Record, error)
	Upsert(ctx context.Context, collection string, rec Record) (Record, error)
	// Update merges set into the top level of the document and returns the
	// number of documents modified.
	Update(ctx context.Context, collection, id string, set search.Document) (int64, error)
	Delete(ctx context.Context, collection, id string) (Record, error)
	Ping(ctx context.Context) error
}

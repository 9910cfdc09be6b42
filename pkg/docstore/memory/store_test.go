package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistic-api/pkg/docstore"
	"logistic-api/pkg/paginator"
	"logistic-api/pkg/search"
)

func tickingClock() func() time.Time {
	t := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func seeded(t *testing.T) *implStore {
	t.Helper()
	s := newStore(tickingClock())
	ctx := context.Background()
	for _, d := range []search.Document{
		{"name": "John", "status": "active", "company": "ExampleCorp"},
		{"name": "Jane", "status": "active", "company": "AnotherCorp"},
		{"name": "Alice", "status": "inactive", "company": "ExampleCorp"},
	} {
		if _, err := s.Insert(ctx, "user", docstore.Record{Data: d}); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}
	return s
}

func names(recs []docstore.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Data["name"].(string)
	}
	return out
}

func TestFindAndCount(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	active := search.Eq("status", "active")
	recs, err := s.Find(ctx, "user", active, paginator.PaginateQuery{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got := names(recs); len(got) != 2 || got[0] != "John" || got[1] != "Jane" {
		t.Errorf("Find() = %v, want [John Jane]", got)
	}
	n, err := s.Count(ctx, "user", active)
	if err != nil || n != 2 {
		t.Errorf("Count() = %d, %v, want 2", n, err)
	}

	recs, err = s.Find(ctx, "user", search.Predicate{Combinator: search.And}, paginator.PaginateQuery{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got := names(recs); len(got) != 1 || got[0] != "Alice" {
		t.Errorf("Find() page 2 = %v, want [Alice]", got)
	}
	n, _ = s.Count(ctx, "user", search.Predicate{Combinator: search.Or})
	if n != 3 {
		t.Errorf("Count() identity = %d, want 3", n)
	}
}

func TestTimestampsAreFilterable(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	p, err := search.Compile(search.Request{Combinator: "AND", Clauses: []search.Clause{
		{Field: "createdAt", Operator: "gt", Value: "2024-09-01T08:01:30Z"},
	}}, search.WithDateFields("createdAt"))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	n, err := s.Count(ctx, "user", p)
	if err != nil || n != 2 {
		t.Errorf("Count() = %d, %v, want 2", n, err)
	}
}

func TestUpdateGetDelete(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	recs, _ := s.Find(ctx, "user", search.Eq("name", "Alice"), paginator.PaginateQuery{})
	if len(recs) != 1 {
		t.Fatalf("Find() = %d records, want 1", len(recs))
	}
	id := recs[0].ID

	n, err := s.Update(ctx, "user", id, search.Document{"status": "active", "_id": "hijack"})
	if err != nil || n != 1 {
		t.Fatalf("Update() = %d, %v, want 1", n, err)
	}
	rec, err := s.Get(ctx, "user", id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if rec.Data["status"] != "active" || rec.Data["company"] != "ExampleCorp" {
		t.Errorf("Get() data = %v", rec.Data)
	}
	if _, ok := rec.Data["_id"]; ok {
		t.Errorf("Update() stored reserved key _id")
	}
	if !rec.UpdatedAt.After(rec.CreatedAt) {
		t.Errorf("UpdatedAt %v not after CreatedAt %v", rec.UpdatedAt, rec.CreatedAt)
	}

	if n, _ := s.Update(ctx, "user", "missing", search.Document{"status": "x"}); n != 0 {
		t.Errorf("Update() missing = %d, want 0", n)
	}

	deleted, err := s.Delete(ctx, "user", id)
	if err != nil || deleted.ID != id {
		t.Fatalf("Delete() = %v, %v", deleted.ID, err)
	}
	if _, err := s.Get(ctx, "user", id); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if _, err := s.Delete(ctx, "user", id); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}

func TestInsertDuplicateAndUpsert(t *testing.T) {
	s := newStore(tickingClock())
	ctx := context.Background()

	rec := docstore.Record{ID: "fixed", Data: search.Document{"name": "Laura"}}
	if _, err := s.Insert(ctx, "lead", rec); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if _, err := s.Insert(ctx, "lead", rec); !errors.Is(err, docstore.ErrDuplicate) {
		t.Errorf("Insert() duplicate error = %v, want ErrDuplicate", err)
	}

	rec.Data = search.Document{"name": "Laura Green"}
	if _, err := s.Upsert(ctx, "lead", rec); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	got, _ := s.Get(ctx, "lead", "fixed")
	if got.Data["name"] != "Laura Green" {
		t.Errorf("Upsert() data = %v", got.Data)
	}

	if _, err := s.Get(ctx, "Lead; DROP", "fixed"); !errors.Is(err, docstore.ErrInvalidCollection) {
		t.Errorf("Get() bad collection error = %v, want ErrInvalidCollection", err)
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	recs, _ := s.Find(ctx, "user", search.Eq("name", "John"), paginator.PaginateQuery{})
	recs[0].Data["status"] = "mutated"

	again, _ := s.Get(ctx, "user", recs[0].ID)
	if again.Data["status"] != "active" {
		t.Errorf("stored document mutated through returned record: %v", again.Data)
	}
}

package memory

import (
	"context"
	"sort"

	"logistic-api/pkg/docstore"
	"logistic-api/pkg/paginator"
	pkgPostgre "logistic-api/pkg/postgre"
	"logistic-api/pkg/search"
)

func (s *implStore) EnsureCollection(ctx context.Context, collection string) error {
	if err := docstore.ValidateCollection(collection); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection(collection)
	return nil
}

// collection must be called with the write lock held.
func (s *implStore) collection(name string) map[string]docstore.Record {
	c, ok := s.collections[name]
	if !ok {
		c = map[string]docstore.Record{}
		s.collections[name] = c
	}
	return c
}

func (s *implStore) matching(collection string, pred search.Predicate) []docstore.Record {
	var out []docstore.Record
	for _, rec := range s.collections[collection] {
		if pred.Match(rec.Data) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *implStore) Find(ctx context.Context, collection string, pred search.Predicate, pq paginator.PaginateQuery) ([]docstore.Record, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	page, _ := paginator.PaginateSlice(s.matching(collection, pred), pq)
	out := make([]docstore.Record, len(page))
	for i, rec := range page {
		out[i] = clone(rec)
	}
	return out, nil
}

func (s *implStore) Count(ctx context.Context, collection string, pred search.Predicate) (int64, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.matching(collection, pred))), nil
}

func (s *implStore) Get(ctx context.Context, collection, id string) (docstore.Record, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return docstore.Record{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.collections[collection][id]
	if !ok {
		return docstore.Record{}, docstore.ErrNotFound
	}
	return clone(rec), nil
}

func (s *implStore) Insert(ctx context.Context, collection string, rec docstore.Record) (docstore.Record, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return docstore.Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = pkgPostgre.NewUUID()
	}
	c := s.collection(collection)
	if _, exists := c[rec.ID]; exists {
		return docstore.Record{}, docstore.ErrDuplicate
	}

	now := s.clock().UTC()
	rec.CreatedAt, rec.UpdatedAt = now, now
	rec.Data = docstore.Stamp(rec.Data, now, now)
	c[rec.ID] = rec
	return clone(rec), nil
}

func (s *implStore) Upsert(ctx context.Context, collection string, rec docstore.Record) (docstore.Record, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return docstore.Record{}, err
	}
	if rec.ID == "" {
		return s.Insert(ctx, collection, rec)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = now
	rec.Data = docstore.Stamp(rec.Data, rec.CreatedAt, now)
	s.collection(collection)[rec.ID] = rec
	return clone(rec), nil
}

func (s *implStore) Update(ctx context.Context, collection, id string, set search.Document) (int64, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	rec, ok := c[id]
	if !ok {
		return 0, nil
	}

	data := rec.Data.Clone()
	for k, v := range set.Clone() {
		data[k] = v
	}
	rec.UpdatedAt = s.clock().UTC()
	rec.Data = docstore.Stamp(data, rec.CreatedAt, rec.UpdatedAt)
	c[id] = rec
	return 1, nil
}

func (s *implStore) Delete(ctx context.Context, collection, id string) (docstore.Record, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return docstore.Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(collection)
	rec, ok := c[id]
	if !ok {
		return docstore.Record{}, docstore.ErrNotFound
	}
	delete(c, id)
	return rec, nil
}

func (s *implStore) Ping(ctx context.Context) error {
	return nil
}

func clone(rec docstore.Record) docstore.Record {
	rec.Data = rec.Data.Clone()
	return rec
}

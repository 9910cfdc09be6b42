package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"logistic-api/pkg/docstore"
	pkgLog "logistic-api/pkg/log"
	"logistic-api/pkg/paginator"
	pkgRedis "logistic-api/pkg/redis"
	"logistic-api/pkg/search"
)

const (
	DefaultTTL = 5 * time.Minute
	keyPrefix  = "docstore"
)

type implStore struct {
	l     pkgLog.Logger
	next  docstore.Store
	redis pkgRedis.IRedis
	ttl   time.Duration
}

var _ docstore.Store = &implStore{}

// New wraps next with a Redis read-through cache for lookups by id. Writes
// to an id bump its version and evict its entry; a read only fills the cache
// if the version did not move while it was reading the store, so a write
// racing a miss cannot leave the old record cached. Cache failures are
// logged and never surface.
func New(l pkgLog.Logger, next docstore.Store, redis pkgRedis.IRedis, ttl time.Duration) docstore.Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implStore{l: l, next: next, redis: redis, ttl: ttl}
}

type entry struct {
	ID        string          `json:"id"`
	Data      search.Document `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func key(collection, id string) string {
	return fmt.Sprintf("%s:%s:id:%s", keyPrefix, collection, id)
}

func versionKey(collection, id string) string {
	return fmt.Sprintf("%s:%s:ver:%s", keyPrefix, collection, id)
}

func (s *implStore) Get(ctx context.Context, collection, id string) (docstore.Record, error) {
	k := key(collection, id)
	raw, err := s.redis.Get(ctx, k)
	switch {
	case err == nil:
		var e entry
		if jerr := json.Unmarshal([]byte(raw), &e); jerr == nil {
			return docstore.Record{ID: e.ID, Data: e.Data, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt}, nil
		}
		s.l.Warnf(ctx, "pkg.docstore.cache.Get.Unmarshal: dropping corrupt entry %s", k)
		s.evict(ctx, collection, id)
	case !pkgRedis.IsNil(err):
		s.l.Warnf(ctx, "pkg.docstore.cache.Get.redis: %v", err)
	}

	ver, verOK := s.version(ctx, collection, id)
	rec, err := s.next.Get(ctx, collection, id)
	if err != nil {
		return docstore.Record{}, err
	}
	if verOK {
		s.store(ctx, collection, rec, ver)
	}
	return rec, nil
}

// version reads the write counter of id. A missing counter is "".
func (s *implStore) version(ctx context.Context, collection, id string) (string, bool) {
	v, err := s.redis.Get(ctx, versionKey(collection, id))
	switch {
	case err == nil:
		return v, true
	case pkgRedis.IsNil(err):
		return "", true
	}
	s.l.Warnf(ctx, "pkg.docstore.cache.version.Get: %v", err)
	return "", false
}

func (s *implStore) store(ctx context.Context, collection string, rec docstore.Record, ver string) {
	data, err := json.Marshal(entry{ID: rec.ID, Data: rec.Data, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt})
	if err != nil {
		s.l.Warnf(ctx, "pkg.docstore.cache.store.Marshal: %v", err)
		return
	}
	ok, err := s.redis.SetIfUnchanged(ctx, versionKey(collection, rec.ID), ver, key(collection, rec.ID), data, s.ttl)
	if err != nil {
		s.l.Warnf(ctx, "pkg.docstore.cache.store.SetIfUnchanged: %v", err)
		return
	}
	if !ok {
		s.l.Debugf(ctx, "pkg.docstore.cache.store: %s changed while reading, not cached", rec.ID)
	}
}

// invalidate bumps the version before evicting so in-flight reads of the
// old record are refused by store.
func (s *implStore) invalidate(ctx context.Context, collection, id string) {
	if _, err := s.redis.Incr(ctx, versionKey(collection, id), s.ttl); err != nil {
		s.l.Warnf(ctx, "pkg.docstore.cache.invalidate.Incr: %v", err)
	}
	s.evict(ctx, collection, id)
}

func (s *implStore) evict(ctx context.Context, collection, id string) {
	if err := s.redis.Delete(ctx, key(collection, id)); err != nil {
		s.l.Warnf(ctx, "pkg.docstore.cache.evict.Delete: %v", err)
	}
}

func (s *implStore) EnsureCollection(ctx context.Context, collection string) error {
	return s.next.EnsureCollection(ctx, collection)
}

func (s *implStore) Find(ctx context.Context, collection string, pred search.Predicate, pag paginator.PaginateQuery) ([]docstore.Record, error) {
	return s.next.Find(ctx, collection, pred, pag)
}

func (s *implStore) Count(ctx context.Context, collection string, pred search.Predicate) (int64, error) {
	return s.next.Count(ctx, collection, pred)
}

func (s *implStore) Insert(ctx context.Context, collection string, rec docstore.Record) (docstore.Record, error) {
	return s.next.Insert(ctx, collection, rec)
}

func (s *implStore) Upsert(ctx context.Context, collection string, rec docstore.Record) (docstore.Record, error) {
	out, err := s.next.Upsert(ctx, collection, rec)
	if err != nil {
		return docstore.Record{}, err
	}
	s.invalidate(ctx, collection, out.ID)
	return out, nil
}

func (s *implStore) Update(ctx context.Context, collection, id string, set search.Document) (int64, error) {
	n, err := s.next.Update(ctx, collection, id, set)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, collection, id)
	return n, nil
}

func (s *implStore) Delete(ctx context.Context, collection, id string) (docstore.Record, error) {
	rec, err := s.next.Delete(ctx, collection, id)
	if err != nil {
		return docstore.Record{}, err
	}
	s.invalidate(ctx, collection, id)
	return rec, nil
}

func (s *implStore) Ping(ctx context.Context) error {
	if err := s.next.Ping(ctx); err != nil {
		return err
	}
	return s.redis.Ping(ctx)
}

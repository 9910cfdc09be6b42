package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"logistic-api/pkg/docstore"
	"logistic-api/pkg/paginator"
	pkgPostgre "logistic-api/pkg/postgre"
	"logistic-api/pkg/search"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

func (s *implStore) baseQuery(collection string, pred search.Predicate) (*queries.Query, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return nil, err
	}
	where, err := whereMods(pred)
	if err != nil {
		return nil, err
	}

	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	qm.Apply(q, qm.From(quoteIdent(collection)))
	qm.Apply(q, where...)
	return q, nil
}

func (s *implStore) Find(ctx context.Context, collection string, pred search.Predicate, pag paginator.PaginateQuery) ([]docstore.Record, error) {
	q, err := s.baseQuery(collection, pred)
	if err != nil {
		s.l.Errorf(ctx, "pkg.docstore.postgre.Find.baseQuery: %v", err)
		return nil, err
	}

	pag.Adjust()
	qm.Apply(q,
		qm.Select(columnID, columnData, columnCreatedAt, columnUpdatedAt),
		qm.OrderBy(columnCreatedAt+" ASC, "+columnID+" ASC"),
		qm.Limit(int(pag.Limit)),
		qm.Offset(int(pag.Offset())),
	)

	var rows []*row
	if err := q.Bind(ctx, s.db, &rows); err != nil {
		s.l.Errorf(ctx, "pkg.docstore.postgre.Find.Bind: %v", err)
		return nil, err
	}

	recs := make([]docstore.Record, 0, len(rows))
	for _, r := range rows {
		rec, err := r.toRecord()
		if err != nil {
			s.l.Errorf(ctx, "pkg.docstore.postgre.Find.toRecord: %v", err)
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (s *implStore) Count(ctx context.Context, collection string, pred search.Predicate) (int64, error) {
	q, err := s.baseQuery(collection, pred)
	if err != nil {
		s.l.Errorf(ctx, "pkg.docstore.postgre.Count.baseQuery: %v", err)
		return 0, err
	}
	queries.SetCount(q)

	var count int64
	if err := q.QueryRowContext(ctx, s.db).Scan(&count); err != nil {
		s.l.Errorf(ctx, "pkg.docstore.postgre.Count.Scan: %v", err)
		return 0, err
	}
	return count, nil
}

func (s *implStore) Get(ctx context.Context, collection, id string) (docstore.Record, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return docstore.Record{}, err
	}

	var r row
	err := queries.Raw(
		fmt.Sprintf("SELECT id, data, created_at, updated_at FROM %s WHERE id = $1", quoteIdent(collection)),
		id,
	).Bind(ctx, s.db, &r)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return docstore.Record{}, docstore.ErrNotFound
		}
		s.l.Errorf(ctx, "pkg.docstore.postgre.Get.Bind: %v", err)
		return docstore.Record{}, err
	}
	return r.toRecord()
}

func (s *implStore) Insert(ctx context.Context, collection string, rec docstore.Record) (docstore.Record, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return docstore.Record{}, err
	}
	if rec.ID == "" {
		rec.ID = pkgPostgre.NewUUID()
	}

	now := s.clock().UTC()
	rec.CreatedAt, rec.UpdatedAt = now, now
	rec.Data = docstore.Stamp(rec.Data, now, now)
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return docstore.Record{}, err
	}

	_, err = queries.Raw(
		fmt.Sprintf("INSERT INTO %s (id, data, created_at, updated_at) VALUES ($1, CAST($2 AS jsonb), $3, $4)", quoteIdent(collection)),
		rec.ID, string(data), rec.CreatedAt, rec.UpdatedAt,
	).ExecContext(ctx, s.db)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return docstore.Record{}, docstore.ErrDuplicate
		}
		s.l.Errorf(ctx, "pkg.docstore.postgre.Insert.ExecContext: %v", err)
		return docstore.Record{}, err
	}
	return rec, nil
}

func (s *implStore) Upsert(ctx context.Context, collection string, rec docstore.Record) (docstore.Record, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return docstore.Record{}, err
	}
	if rec.ID == "" {
		return s.Insert(ctx, collection, rec)
	}

	now := s.clock().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = now
	rec.Data = docstore.Stamp(rec.Data, rec.CreatedAt, now)
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return docstore.Record{}, err
	}

	_, err = queries.Raw(
		fmt.Sprintf(`INSERT INTO %s (id, data, created_at, updated_at) VALUES ($1, CAST($2 AS jsonb), $3, $4)
ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, created_at = EXCLUDED.created_at, updated_at = EXCLUDED.updated_at`,
			quoteIdent(collection)),
		rec.ID, string(data), rec.CreatedAt, rec.UpdatedAt,
	).ExecContext(ctx, s.db)
	if err != nil {
		s.l.Errorf(ctx, "pkg.docstore.postgre.Upsert.ExecContext: %v", err)
		return docstore.Record{}, err
	}
	return rec, nil
}

func (s *implStore) Update(ctx context.Context, collection, id string, set search.Document) (int64, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return 0, err
	}

	now := s.clock().UTC()
	patch := set.Clone()
	if patch == nil {
		patch = search.Document{}
	}
	docstore.StripReserved(patch)
	patch[docstore.FieldUpdatedAt] = docstore.FormatTime(now)
	data, err := json.Marshal(patch)
	if err != nil {
		return 0, err
	}

	res, err := queries.Raw(
		fmt.Sprintf("UPDATE %s SET data = data || CAST($2 AS jsonb), updated_at = $3 WHERE id = $1", quoteIdent(collection)),
		id, string(data), now,
	).ExecContext(ctx, s.db)
	if err != nil {
		s.l.Errorf(ctx, "pkg.docstore.postgre.Update.ExecContext: %v", err)
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		s.l.Errorf(ctx, "pkg.docstore.postgre.Update.RowsAffected: %v", err)
		return 0, err
	}
	return n, nil
}

func (s *implStore) Delete(ctx context.Context, collection, id string) (docstore.Record, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return docstore.Record{}, err
	}

	var r row
	err := queries.Raw(
		fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING id, data, created_at, updated_at", quoteIdent(collection)),
		id,
	).Bind(ctx, s.db, &r)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return docstore.Record{}, docstore.ErrNotFound
		}
		s.l.Errorf(ctx, "pkg.docstore.postgre.Delete.Bind: %v", err)
		return docstore.Record{}, err
	}
	return r.toRecord()
}

func (s *implStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

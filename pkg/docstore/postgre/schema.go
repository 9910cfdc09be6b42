package postgre

import (
	"context"
	"fmt"

	"logistic-api/pkg/docstore"

	"github.com/aarondl/sqlboiler/v4/queries"
)

const (
	columnID        = "id"
	columnData      = "data"
	columnCreatedAt = "created_at"
	columnUpdatedAt = "updated_at"
)

func quoteIdent(name string) string {
	return string(dialect.LQ) + name + string(dialect.RQ)
}

func (s *implStore) EnsureCollection(ctx context.Context, collection string) error {
	if err := docstore.ValidateCollection(collection); err != nil {
		return err
	}

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id text PRIMARY KEY,
	data jsonb NOT NULL DEFAULT '{}'::jsonb,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NULL
)`, quoteIdent(collection)),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s USING gin (data jsonb_path_ops)`,
			quoteIdent(collection+"_data_idx"), quoteIdent(collection)),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (created_at, id)`,
			quoteIdent(collection+"_created_idx"), quoteIdent(collection)),
	}
	for _, stmt := range stmts {
		if _, err := queries.Raw(stmt).ExecContext(ctx, s.db); err != nil {
			s.l.Errorf(ctx, "pkg.docstore.postgre.EnsureCollection.ExecContext: %v", err)
			return err
		}
	}
	return nil
}

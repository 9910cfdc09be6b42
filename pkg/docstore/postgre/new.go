package postgre

import (
	"database/sql"
	"time"

	"logistic-api/pkg/docstore"
	pkgLog "logistic-api/pkg/log"

	"github.com/aarondl/sqlboiler/v4/drivers"
)

// dialect matches what sqlboiler's psql driver generates.
var dialect = drivers.Dialect{
	LQ: '"',
	RQ: '"',

	UseIndexPlaceholders: true,
	UseDefaultKeyword:    true,
}

type implStore struct {
	l     pkgLog.Logger
	db    *sql.DB
	clock func() time.Time
}

var _ docstore.Store = &implStore{}

// New returns a Store keeping each collection in its own JSONB table.
func New(l pkgLog.Logger, db *sql.DB) docstore.Store {
	return &implStore{
		l:     l,
		db:    db,
		clock: time.Now,
	}
}

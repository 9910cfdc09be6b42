package docstore

import (
	"context"
	"database/sql"
	"fmt"

	"logistic-api/config"
	configPostgre "logistic-api/config/postgre"
	configRedis "logistic-api/config/redis"
	pkgDocstore "logistic-api/pkg/docstore"
	"logistic-api/pkg/docstore/cache"
	"logistic-api/pkg/docstore/memory"
	"logistic-api/pkg/docstore/postgre"
	"logistic-api/pkg/log"
	pkgRedis "logistic-api/pkg/redis"
)

// Store is the configured document store plus the connections it owns.
type Store struct {
	pkgDocstore.Store
	db    *sql.DB
	redis pkgRedis.IRedis
}

// Connect builds the store selected by STORAGE_DRIVER and wraps it with the
// Redis cache when REDIS_HOST is set.
func Connect(ctx context.Context, l log.Logger, cfg *config.Config) (*Store, error) {
	s := &Store{}

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		s.Store = memory.New()
		l.Info(ctx, "Using in-memory document store")
	case config.StorageDriverPostgres:
		db, err := configPostgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		s.db = db
		s.Store = postgre.New(l, db)
		l.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	redis, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		s.Close(ctx)
		return nil, err
	}
	if redis != nil {
		s.redis = redis
		s.Store = cache.New(l, s.Store, redis, cfg.Storage.CacheTTL)
		l.Infof(ctx, "Redis cache enabled at %s:%d (ttl %s)", cfg.Redis.Host, cfg.Redis.Port, cfg.Storage.CacheTTL)
	}

	return s, nil
}

// Close releases the connections opened by Connect.
func (s *Store) Close(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.db != nil {
		_ = configPostgre.Disconnect(ctx, s.db)
	}
}

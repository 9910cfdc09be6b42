package redis

import (
	"logistic-api/config"
	pkgRedis "logistic-api/pkg/redis"
)

// Connect returns a Redis client, or nil when no host is configured.
func Connect(cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	if cfg.Host == "" {
		return nil, nil
	}
	return pkgRedis.New(pkgRedis.RedisConfig{
		Host:         cfg.Host,
		Port:         cfg.Port,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})
}

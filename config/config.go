package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage Configuration
	Storage  StorageConfig
	Postgres PostgresConfig
	Redis    RedisConfig

	// Authentication & Security Configuration
	JWT JWTConfig
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"APP_PORT" envDefault:"8080"`
	Mode            string        `env:"API_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// StorageConfig selects the document store backend
type StorageConfig struct {
	Driver   string        `env:"STORAGE_DRIVER" envDefault:"postgres"`
	CacheTTL time.Duration `env:"STORAGE_CACHE_TTL" envDefault:"5m"`
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"logistic"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// RedisConfig is the configuration for Redis. The cache is disabled when Host is empty.
type RedisConfig struct {
	Host         string `env:"REDIS_HOST"`
	Port         int    `env:"REDIS_PORT" envDefault:"6379"`
	Password     string `env:"REDIS_PASSWORD"`
	DB           int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
}

// JWTConfig is the configuration for the JWT
type JWTConfig struct {
	SecretKey string        `env:"JWT_SECRET_KEY"`
	TTL       time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("config: JWT_SECRET_KEY is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("config: JWT_SECRET_KEY must be at least 32 characters")
	}

	switch cfg.Storage.Driver {
	case StorageDriverPostgres:
		if cfg.Postgres.Host == "" || cfg.Postgres.DBName == "" {
			return fmt.Errorf("config: POSTGRES_HOST and POSTGRES_DB are required for the postgres driver")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("config: APP_PORT %d is out of range", cfg.HTTPServer.Port)
	}
	return nil
}

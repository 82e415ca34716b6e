package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// ErrMissingTokenSecret aborts startup: without a signing secret every issued
// token would be unverifiable.
var ErrMissingTokenSecret = errors.New("ACCESS_TOKEN_SECRET is required")

type Config struct {
	Port     string `env:"PORT,     default=8000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	TokenSecret  string        `env:"ACCESS_TOKEN_SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL,     default=45m"`
	BcryptCost   int           `env:"BCRYPT_COST,   default=10"`
	AuditWorkers int           `env:"AUDIT_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=chairup"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing token secret is an error, never a silent fallback.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.TokenSecret == "" {
		return nil, ErrMissingTokenSecret
	}
	return &cfg, nil
}

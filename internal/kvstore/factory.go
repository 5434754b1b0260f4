package kvstore

import (
	"context"
	"fmt"
	"time"

	"github.com/limbo/habitlog/pkg/cleanup"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Backend    string
	SQLitePath string
	Postgres   PGCfg
	Redis      RedisCfg
	// Zero disables retrying
	RetryDelay time.Duration
}

// New opens the configured backend and wraps it with the retry policy
func New(ctx context.Context, cfg Config) (Store, error) {
	var (
		store Store
		err   error
	)
	switch cfg.Backend {
	case BackendMemory, "":
		store = NewMemoryStore()
	case BackendSQLite:
		var s *SQLiteStore
		s, err = NewSQLiteStore(ctx, cfg.SQLitePath)
		if err == nil {
			cleanup.Register(&cleanup.Job{
				Name: "closing sqlite database",
				F:    s.Close,
			})
			store = s
		}
	case BackendPostgres:
		store, err = NewPostgresStore(ctx, &cfg.Postgres)
	case BackendRedis:
		store, err = NewRedisStore(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	if cfg.RetryDelay > 0 {
		store = WithRetry(store, cfg.RetryDelay)
	}
	return store, nil
}

// Settings is satisfied by *config.Config
type Settings interface {
	GetString(key string) string
	GetInt(key string) int
	GetDuration(key string) time.Duration
}

// ConfigFrom reads STORAGE_* and backend specific keys
func ConfigFrom(s Settings) Config {
	return Config{
		Backend:    s.GetString("STORAGE_BACKEND"),
		SQLitePath: s.GetString("SQLITE_PATH"),
		Postgres: PGCfg{
			Address:  s.GetString("POSTGRES_DB_ADDRESS"),
			Username: s.GetString("POSTGRES_USER"),
			Password: s.GetString("POSTGRES_PASSWORD"),
			DB:       s.GetString("POSTGRES_DB"),
		},
		Redis: RedisCfg{
			Address:  s.GetString("REDIS_ADDRESS"),
			Password: s.GetString("REDIS_PASSWORD"),
			DB:       s.GetInt("REDIS_DB"),
		},
		RetryDelay: s.GetDuration("STORAGE_RETRY_DELAY"),
	}
}

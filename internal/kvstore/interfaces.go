package kvstore

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_store.go -package=mocks

type Store interface {
	// Returns value stored under key. Absent key gives errorvalues.ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)
	// Writes value under key, replacing the previous one wholesale
	Set(ctx context.Context, key, value string) error
	// Deletes key. Removing an absent key is not an error
	Remove(ctx context.Context, key string) error
}

type DBConfig interface {
	ConnString() string
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

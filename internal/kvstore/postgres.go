package kvstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/pkg/cleanup"
)

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps every key as one row of kv_store table (see migrations)
type PostgresStore struct {
	conn PgConnection
}

func NewPostgresStore(ctx context.Context, cfg DBConfig) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating connection for kv store error: " + err.Error())
	}
	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, errors.New("error while pinging connection for kv store: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &PostgresStore{
		conn: pool,
	}, nil
}

func NewPostgresStoreWithConn(conn PgConnection) *PostgresStore {
	return &PostgresStore{
		conn: conn,
	}
}

func (ps *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	row := ps.conn.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1;`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errorvalues.ErrKeyNotFound
		}
		return "", errors.New("getting value error: " + err.Error())
	}
	return value, nil
}

func (ps *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := ps.conn.Exec(
		ctx,
		`INSERT INTO kv_store (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`,
		key,
		value,
	)
	if err != nil {
		return errors.New("setting value error: " + err.Error())
	}
	return nil
}

func (ps *PostgresStore) Remove(ctx context.Context, key string) error {
	_, err := ps.conn.Exec(ctx, `DELETE FROM kv_store WHERE key = $1;`, key)
	if err != nil {
		return errors.New("removing value error: " + err.Error())
	}
	return nil
}

var _ Store = (*PostgresStore)(nil)

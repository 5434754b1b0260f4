package kvstore_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/kvstore"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPostgresGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	store := kvstore.NewPostgresStoreWithConn(mock)
	query := regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1;`)
	key := "habits:42"
	testCases := []struct {
		Desc         string
		Error        error
		Value        string
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			Value: `{"version":1}`,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(key).
					WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(`{"version":1}`))
			},
		},
		{
			Desc:  "key not found",
			Error: errorvalues.ErrKeyNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(key).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting value error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(key).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			value, err := store.Get(ctx, key)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Value, value)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	store := kvstore.NewPostgresStoreWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO kv_store (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`)
	key, value := "current_user", "5f0c"
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(key, value).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("setting value error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(key, value).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := store.Set(ctx, key, value)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostgresRemove(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	store := kvstore.NewPostgresStoreWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM kv_store WHERE key = $1;`)
	key := "current_user"
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(key).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			Desc:  "absent key is not an error",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(key).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("removing value error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(key).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := store.Remove(ctx, key)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostgresIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	cfg := setupKVTestDB(t)
	ctx := context.Background()
	store, err := kvstore.NewPostgresStore(ctx, cfg)
	require.NoError(t, err)
	t.Run("absent", func(t *testing.T) {
		_, err := store.Get(ctx, "habits:nobody")
		assert.ErrorIs(t, err, errorvalues.ErrKeyNotFound)
	})
	t.Run("set and overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", "v1"))
		require.NoError(t, store.Set(ctx, "k", "v2"))
		value, err := store.Get(ctx, "k")
		assert.NoError(t, err)
		assert.Equal(t, "v2", value)
	})
	t.Run("remove", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, "k"))
		_, err := store.Get(ctx, "k")
		assert.ErrorIs(t, err, errorvalues.ErrKeyNotFound)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupKVTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("habitlog"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}

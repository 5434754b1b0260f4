package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/observability"
)

// RetryStore retries a failed operation once after a constant delay.
// Missing keys and cancelled contexts fail immediately.
type RetryStore struct {
	next  Store
	delay time.Duration
}

func WithRetry(next Store, delay time.Duration) *RetryStore {
	return &RetryStore{
		next:  next,
		delay: delay,
	}
}

func (rs *RetryStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := rs.do(ctx, "get", key, func() error {
		var err error
		value, err = rs.next.Get(ctx, key)
		return err
	})
	return value, err
}

func (rs *RetryStore) Set(ctx context.Context, key, value string) error {
	return rs.do(ctx, "set", key, func() error {
		return rs.next.Set(ctx, key, value)
	})
}

func (rs *RetryStore) Remove(ctx context.Context, key string) error {
	return rs.do(ctx, "remove", key, func() error {
		return rs.next.Remove(ctx, key)
	})
}

func (rs *RetryStore) do(ctx context.Context, op, key string, f func() error) error {
	attempt := 0
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(rs.delay), 1), ctx)
	err := backoff.Retry(func() error {
		attempt++
		err := f()
		if err == nil {
			return nil
		}
		if isPermanent(err) {
			return backoff.Permanent(err)
		}
		if attempt == 1 {
			observability.RecordStorageRetry(op)
			slog.Warn("kv store operation failed, retrying",
				slog.String("op", op),
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return err
	}, policy)
	if err != nil && !errors.Is(err, errorvalues.ErrKeyNotFound) {
		observability.RecordStorageFailure(op)
	}
	return err
}

func isPermanent(err error) bool {
	return errors.Is(err, errorvalues.ErrKeyNotFound) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

var _ Store = (*RetryStore)(nil)

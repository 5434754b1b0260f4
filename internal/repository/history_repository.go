package repository

import (
	"context"
	"errors"

	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/kvstore"
	"github.com/limbo/habitlog/internal/observability"
	"github.com/limbo/habitlog/pkg/entity"
)

type HistoryRepository struct {
	store kvstore.Store
	key   string
}

func NewHistoryRepo(store kvstore.Store, session entity.Session) *HistoryRepository {
	return &HistoryRepository{
		store: store,
		key:   HistoryKey(session.UserID),
	}
}

// AppendEvent rewrites the whole log with event added to the end of date's bucket
func (hr *HistoryRepository) AppendEvent(ctx context.Context, date string, event entity.CompletionEvent) error {
	history, err := hr.LoadLog(ctx)
	if err != nil {
		return err
	}
	history[date] = append(history[date], event)
	raw, err := encodeHistory(history)
	if err != nil {
		return errors.New("encoding history error: " + err.Error())
	}
	if err := hr.store.Set(ctx, hr.key, raw); err != nil {
		return errors.New("saving history error: " + err.Error())
	}
	observability.RecordHistoryEvent(event.Completed)
	return nil
}

func (hr *HistoryRepository) LoadLog(ctx context.Context) (entity.History, error) {
	raw, err := hr.store.Get(ctx, hr.key)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKeyNotFound) {
			return entity.History{}, nil
		}
		return nil, errors.New("loading history error: " + err.Error())
	}
	return decodeHistory(raw)
}

func (hr *HistoryRepository) Drop(ctx context.Context) error {
	if err := hr.store.Remove(ctx, hr.key); err != nil {
		return errors.New("removing history error: " + err.Error())
	}
	return nil
}

var _ HistoryRepositoryI = (*HistoryRepository)(nil)

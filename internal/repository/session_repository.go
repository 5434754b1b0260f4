package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/kvstore"
)

type SessionRepository struct {
	store kvstore.Store
}

func NewSessionRepo(store kvstore.Store) *SessionRepository {
	return &SessionRepository{
		store: store,
	}
}

func (sr *SessionRepository) SetCurrent(ctx context.Context, uid uuid.UUID) error {
	if err := sr.store.Set(ctx, currentUserKey, uid.String()); err != nil {
		return errors.New("saving session error: " + err.Error())
	}
	return nil
}

func (sr *SessionRepository) Current(ctx context.Context) (uuid.UUID, error) {
	raw, err := sr.store.Get(ctx, currentUserKey)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKeyNotFound) {
			return uuid.Nil, errorvalues.ErrNoSession
		}
		return uuid.Nil, errors.New("loading session error: " + err.Error())
	}
	uid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: session holds %q", errorvalues.ErrCorruptedData, raw)
	}
	return uid, nil
}

func (sr *SessionRepository) Clear(ctx context.Context) error {
	if err := sr.store.Remove(ctx, currentUserKey); err != nil {
		return errors.New("removing session error: " + err.Error())
	}
	return nil
}

var _ SessionRepositoryI = (*SessionRepository)(nil)

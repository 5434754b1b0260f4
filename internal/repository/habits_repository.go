package repository

import (
	"context"
	"errors"
	"time"

	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/kvstore"
	"github.com/limbo/habitlog/internal/observability"
	"github.com/limbo/habitlog/internal/rollover"
	"github.com/limbo/habitlog/pkg/entity"
)

type HabitsRepository struct {
	store kvstore.Store
	key   string
	clock Clock
	loc   *time.Location
}

// NewHabitsRepo scopes the habit list to session's user. Nil clock means time.Now,
// nil loc means time.Local; loc decides where calendar days begin.
func NewHabitsRepo(store kvstore.Store, session entity.Session, clock Clock, loc *time.Location) *HabitsRepository {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &HabitsRepository{
		store: store,
		key:   HabitsKey(session.UserID),
		clock: clock,
		loc:   loc,
	}
}

func (hr *HabitsRepository) LoadHabits(ctx context.Context) ([]entity.Habit, error) {
	raw, err := hr.store.Get(ctx, hr.key)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKeyNotFound) {
			return []entity.Habit{}, nil
		}
		return nil, errors.New("loading habits error: " + err.Error())
	}
	list, err := decodeHabitList(raw)
	if err != nil {
		return nil, err
	}
	habits, changed := rollover.Reconcile(list.Habits, list.LastUpdated, hr.clock(), hr.loc)
	if changed {
		observability.RecordRollover()
		if err := hr.SaveHabits(ctx, habits); err != nil {
			return nil, err
		}
	}
	return habits, nil
}

func (hr *HabitsRepository) SaveHabits(ctx context.Context, habits []entity.Habit) error {
	raw, err := encodeHabitList(habits, hr.clock().In(hr.loc))
	if err != nil {
		return errors.New("encoding habits error: " + err.Error())
	}
	if err := hr.store.Set(ctx, hr.key, raw); err != nil {
		return errors.New("saving habits error: " + err.Error())
	}
	return nil
}

func (hr *HabitsRepository) Drop(ctx context.Context) error {
	if err := hr.store.Remove(ctx, hr.key); err != nil {
		return errors.New("removing habits error: " + err.Error())
	}
	return nil
}

var _ HabitsRepositoryI = (*HabitsRepository)(nil)

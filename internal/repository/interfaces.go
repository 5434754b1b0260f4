package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitlog/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user. Assigns ID when it is empty
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

// Habit list of one session user
type HabitsRepositoryI interface {
	// Returns habits as of today: completion flags are reset on a new calendar day
	// and the reset is persisted before returning. Absent list is an empty one
	LoadHabits(ctx context.Context) ([]entity.Habit, error)
	// Overwrites the whole list and stamps it with current time
	SaveHabits(ctx context.Context, habits []entity.Habit) error
	// Removes the list
	Drop(ctx context.Context) error
}

// Completion log of one session user
type HistoryRepositoryI interface {
	// Appends event to the bucket of date (YYYY-MM-DD)
	AppendEvent(ctx context.Context, date string, event entity.CompletionEvent) error
	// Returns the whole log. Absent log is an empty one
	LoadLog(ctx context.Context) (entity.History, error)
	// Removes the log
	Drop(ctx context.Context) error
}

// Local "logged in" marker used by the CLI
type SessionRepositoryI interface {
	SetCurrent(ctx context.Context, uid uuid.UUID) error
	// Returns ErrNoSession when nobody is logged in
	Current(ctx context.Context) (uuid.UUID, error)
	Clear(ctx context.Context) error
}

type Clock func() time.Time

package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/habitlog/pkg/entity"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// HabitRequest carries user-editable habit fields for create and update
type HabitRequest struct {
	Name      string           `json:"name" validate:"required,max=100"`
	Frequency int              `json:"frequency" validate:"required,min=1,max=24"`
	Duration  int              `json:"duration" validate:"min=0,max=1440"`
	Reminders []string         `json:"reminders" validate:"dive,time_of_day"`
	Goal      string           `json:"goal" validate:"max=200"`
	Days      []entity.Weekday `json:"days" validate:"required,min=1,max=7,unique,dive,weekday"`
	DueDate   string           `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

type UserServiceI interface {
	// Validates credentials, stores the user with hashed password. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Removes the user together with habits and history
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	AddHabit(ctx context.Context, uid uuid.UUID, req *HabitRequest) (*entity.Habit, error)
	// Changes descriptive fields only, streak and completion flag are kept
	UpdateHabit(ctx context.Context, uid uuid.UUID, habitID string, req *HabitRequest) (*entity.Habit, error)
	// History of the habit is kept
	DeleteHabit(ctx context.Context, uid uuid.UUID, habitID string) error
	// Marks habit done (streak+1) or clears the mark (streak kept). Logs a completed event either way
	ToggleComplete(ctx context.Context, uid uuid.UUID, habitID string) (*entity.Habit, error)
	// Clears the mark and zeroes the streak. Logs a skipped event
	SkipHabit(ctx context.Context, uid uuid.UUID, habitID string) (*entity.Habit, error)
	ListHabits(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error)
	// Not completed today and not due in the future
	PendingHabits(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error)
	// Scheduled for today's weekday
	TodayHabits(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error)
}

type AnalyticsServiceI interface {
	History(ctx context.Context, uid uuid.UUID) (entity.History, error)
	// One mark per logged date, ascending
	CalendarMarks(ctx context.Context, uid uuid.UUID) ([]entity.DayMark, error)
	DayLogs(ctx context.Context, uid uuid.UUID, date string) ([]entity.CompletionEvent, error)
	// Completed events per day over the trailing days, oldest first
	Heatmap(ctx context.Context, uid uuid.UUID, days int) ([]entity.HeatmapCell, error)
	// Completed events of the current week and three before it, index is the week offset
	WeeklyCounts(ctx context.Context, uid uuid.UUID) ([]int, error)
	Totals(ctx context.Context, uid uuid.UUID) (entity.Totals, error)
	// Completed events per calendar month, oldest first
	MonthlyTrends(ctx context.Context, uid uuid.UUID, months int) ([]entity.MonthCount, error)
	MostLogged(ctx context.Context, uid uuid.UUID, n int) ([]entity.NameCount, error)
	// Nil completed means names of habits the user has completed
	Recommend(ctx context.Context, uid uuid.UUID, completed []string) ([]string, error)
}

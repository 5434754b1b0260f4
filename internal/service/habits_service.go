package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/events"
	"github.com/limbo/habitlog/internal/kvstore"
	"github.com/limbo/habitlog/internal/observability"
	"github.com/limbo/habitlog/internal/repository"
	"github.com/limbo/habitlog/pkg/entity"
)

type HabitsService struct {
	store kvstore.Store
	opts  options
	locks *userLocks
}

func NewHabitsService(store kvstore.Store, opts ...Option) *HabitsService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	return &HabitsService{
		store: store,
		opts:  buildOptions(opts),
		locks: accountLocks,
	}
}

func (hs *HabitsService) habitsRepo(uid uuid.UUID) repository.HabitsRepositoryI {
	return repository.NewHabitsRepo(hs.store, entity.Session{UserID: uid}, hs.opts.clock, hs.opts.loc)
}

func (hs *HabitsService) historyRepo(uid uuid.UUID) repository.HistoryRepositoryI {
	return repository.NewHistoryRepo(hs.store, entity.Session{UserID: uid})
}

func (hs *HabitsService) AddHabit(ctx context.Context, uid uuid.UUID, req *HabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	defer hs.locks.lock(uid)()
	repo := hs.habitsRepo(uid)
	habits, err := repo.LoadHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	habit := entity.Habit{ID: uuid.NewString()}
	applyRequest(&habit, req)
	habits = append(habits, habit)
	if err = repo.SaveHabits(ctx, habits); err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	observability.RecordMutation("add")
	return &habit, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, uid uuid.UUID, habitID string, req *HabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	defer hs.locks.lock(uid)()
	repo := hs.habitsRepo(uid)
	habits, err := repo.LoadHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	idx := indexOf(habits, habitID)
	if idx < 0 {
		return nil, errorvalues.ErrHabitNotFound
	}
	applyRequest(&habits[idx], req)
	if err = repo.SaveHabits(ctx, habits); err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	observability.RecordMutation("update")
	updated := habits[idx]
	return &updated, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, uid uuid.UUID, habitID string) error {
	defer hs.locks.lock(uid)()
	repo := hs.habitsRepo(uid)
	habits, err := repo.LoadHabits(ctx)
	if err != nil {
		return fmt.Errorf("habits repository error: %w", err)
	}
	idx := indexOf(habits, habitID)
	if idx < 0 {
		return errorvalues.ErrHabitNotFound
	}
	habits = slices.Delete(habits, idx, idx+1)
	if err = repo.SaveHabits(ctx, habits); err != nil {
		return fmt.Errorf("habits repository error: %w", err)
	}
	observability.RecordMutation("delete")
	return nil
}

func (hs *HabitsService) ToggleComplete(ctx context.Context, uid uuid.UUID, habitID string) (*entity.Habit, error) {
	return hs.logAction(ctx, uid, habitID, "toggle", true, func(h *entity.Habit) {
		if h.CompletedToday {
			// streak stays as it was after completion
			h.CompletedToday = false
			return
		}
		h.Streak++
		h.CompletedToday = true
	})
}

func (hs *HabitsService) SkipHabit(ctx context.Context, uid uuid.UUID, habitID string) (*entity.Habit, error) {
	return hs.logAction(ctx, uid, habitID, "skip", false, func(h *entity.Habit) {
		h.CompletedToday = false
		h.Streak = 0
	})
}

// logAction applies change to one habit, saves the list and appends one event for today.
// Unknown id writes nothing.
func (hs *HabitsService) logAction(ctx context.Context, uid uuid.UUID, habitID, op string, completed bool, change func(h *entity.Habit)) (*entity.Habit, error) {
	defer hs.locks.lock(uid)()
	repo := hs.habitsRepo(uid)
	habits, err := repo.LoadHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	idx := indexOf(habits, habitID)
	if idx < 0 {
		return nil, errorvalues.ErrHabitNotFound
	}
	change(&habits[idx])
	if err = repo.SaveHabits(ctx, habits); err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	habit := habits[idx]
	date := hs.opts.today()
	err = hs.historyRepo(uid).AppendEvent(ctx, date, entity.CompletionEvent{
		HabitID:   habit.ID,
		HabitName: habit.Name,
		Completed: completed,
	})
	if err != nil {
		return nil, fmt.Errorf("history repository error: %w", err)
	}
	observability.RecordMutation(op)
	hs.publish(ctx, events.HabitEvent{
		UserID:     uid.String(),
		HabitID:    habit.ID,
		HabitName:  habit.Name,
		Date:       date,
		Completed:  completed,
		Streak:     habit.Streak,
		OccurredAt: hs.opts.now(),
	})
	return &habit, nil
}

// publish failures are logged only, the action is already stored
func (hs *HabitsService) publish(ctx context.Context, ev events.HabitEvent) {
	if err := hs.opts.publisher.Publish(ctx, ev); err != nil {
		slog.WarnContext(ctx, "habit event not published",
			slog.String("habit_id", ev.HabitID),
			slog.String("error", err.Error()),
		)
	}
}

func (hs *HabitsService) ListHabits(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error) {
	defer hs.locks.lock(uid)()
	habits, err := hs.habitsRepo(uid).LoadHabits(ctx)
	if err != nil {
		return nil, fmt.Errorf("habits repository error: %w", err)
	}
	return habits, nil
}

func (hs *HabitsService) PendingHabits(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error) {
	habits, err := hs.ListHabits(ctx, uid)
	if err != nil {
		return nil, err
	}
	today := hs.opts.today()
	pending := make([]entity.Habit, 0, len(habits))
	for _, h := range habits {
		// YYYY-MM-DD compares lexically
		if !h.CompletedToday && (h.DueDate == "" || h.DueDate <= today) {
			pending = append(pending, h)
		}
	}
	return pending, nil
}

func (hs *HabitsService) TodayHabits(ctx context.Context, uid uuid.UUID) ([]entity.Habit, error) {
	habits, err := hs.ListHabits(ctx, uid)
	if err != nil {
		return nil, err
	}
	weekday := hs.opts.now().Weekday()
	scheduled := make([]entity.Habit, 0, len(habits))
	for _, h := range habits {
		if h.ScheduledOn(weekday) {
			scheduled = append(scheduled, h)
		}
	}
	return scheduled, nil
}

func applyRequest(h *entity.Habit, req *HabitRequest) {
	h.Name = req.Name
	h.Frequency = req.Frequency
	h.Duration = req.Duration
	h.Reminders = slices.Clone(req.Reminders)
	h.Goal = req.Goal
	h.Days = slices.Clone(req.Days)
	h.DueDate = req.DueDate
}

func indexOf(habits []entity.Habit, id string) int {
	return slices.IndexFunc(habits, func(h entity.Habit) bool {
		return h.ID == id
	})
}

var _ HabitsServiceI = (*HabitsService)(nil)

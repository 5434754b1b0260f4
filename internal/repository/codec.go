package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/pkg/entity"
)

// Habit as it may appear in storage. Early payloads carried numeric
// timestamp ids and a single "reminder" string.
type storedHabit struct {
	ID             any              `json:"id"`
	Name           string           `json:"name"`
	Frequency      int              `json:"frequency"`
	Duration       int              `json:"duration"`
	Reminders      []string         `json:"reminders"`
	Reminder       string           `json:"reminder"`
	Goal           string           `json:"goal"`
	Days           []entity.Weekday `json:"days"`
	Streak         int              `json:"streak"`
	CompletedToday bool             `json:"completedToday"`
	DueDate        string           `json:"dueDate"`
}

type storedHabitList struct {
	Version     int           `json:"version"`
	Habits      []storedHabit `json:"habits"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

type storedEvent struct {
	ID        any    `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type storedHistoryLog struct {
	Version int                      `json:"version"`
	Entries map[string][]storedEvent `json:"entries"`
}

func corrupted(err error) error {
	return fmt.Errorf("%w: %s", errorvalues.ErrCorruptedData, err.Error())
}

func encodeHabitList(habits []entity.Habit, now time.Time) (string, error) {
	if habits == nil {
		habits = []entity.Habit{}
	}
	return sonic.MarshalString(entity.HabitList{
		Version:     entity.SchemaVersion,
		Habits:      habits,
		LastUpdated: now,
	})
}

// decodeHabitList accepts the current envelope, an envelope without
// version and a bare array of habits
func decodeHabitList(raw string) (entity.HabitList, error) {
	var stored storedHabitList
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		if err := sonic.UnmarshalString(trimmed, &stored.Habits); err != nil {
			return entity.HabitList{}, corrupted(err)
		}
	} else {
		if err := sonic.UnmarshalString(trimmed, &stored); err != nil {
			return entity.HabitList{}, corrupted(err)
		}
		if stored.Version > entity.SchemaVersion {
			return entity.HabitList{}, fmt.Errorf("%w: habits payload version %d", errorvalues.ErrUnsupportedSchema, stored.Version)
		}
	}
	habits := make([]entity.Habit, 0, len(stored.Habits))
	for _, sh := range stored.Habits {
		id, err := normalizeID(sh.ID)
		if err != nil {
			return entity.HabitList{}, corrupted(err)
		}
		reminders := sh.Reminders
		if len(reminders) == 0 && sh.Reminder != "" {
			reminders = []string{sh.Reminder}
		}
		habits = append(habits, entity.Habit{
			ID:             id,
			Name:           sh.Name,
			Frequency:      sh.Frequency,
			Duration:       sh.Duration,
			Reminders:      reminders,
			Goal:           sh.Goal,
			Days:           sh.Days,
			Streak:         sh.Streak,
			CompletedToday: sh.CompletedToday,
			DueDate:        sh.DueDate,
		})
	}
	return entity.HabitList{
		Version:     entity.SchemaVersion,
		Habits:      habits,
		LastUpdated: stored.LastUpdated,
	}, nil
}

func encodeHistory(history entity.History) (string, error) {
	if history == nil {
		history = entity.History{}
	}
	return sonic.MarshalString(entity.HistoryLog{
		Version: entity.SchemaVersion,
		Entries: history,
	})
}

// decodeHistory accepts the current envelope and a bare date map
func decodeHistory(raw string) (entity.History, error) {
	var stored storedHistoryLog
	if err := sonic.UnmarshalString(raw, &stored); err != nil {
		return nil, corrupted(err)
	}
	if stored.Version > entity.SchemaVersion {
		return nil, fmt.Errorf("%w: history payload version %d", errorvalues.ErrUnsupportedSchema, stored.Version)
	}
	if stored.Version == 0 {
		// Bare map: dates are the top level keys
		stored.Entries = nil
		if err := sonic.UnmarshalString(raw, &stored.Entries); err != nil {
			return nil, corrupted(err)
		}
	}
	history := make(entity.History, len(stored.Entries))
	for date, events := range stored.Entries {
		if _, err := time.Parse(entity.DateLayout, date); err != nil {
			return nil, corrupted(fmt.Errorf("bad history date %q", date))
		}
		bucket := make([]entity.CompletionEvent, 0, len(events))
		for _, ev := range events {
			id, err := normalizeID(ev.ID)
			if err != nil {
				return nil, corrupted(err)
			}
			bucket = append(bucket, entity.CompletionEvent{
				HabitID:   id,
				HabitName: ev.Name,
				Completed: ev.Completed,
			})
		}
		history[date] = bucket
	}
	return history, nil
}

func normalizeID(v any) (string, error) {
	switch id := v.(type) {
	case string:
		if id == "" {
			return "", fmt.Errorf("empty id")
		}
		return id, nil
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unexpected id %v", v)
	}
}

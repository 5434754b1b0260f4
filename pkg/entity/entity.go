package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Current version of persisted envelopes
const SchemaVersion = 1

// Layout of history bucket keys and due dates
const DateLayout = "2006-01-02"

type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

var weekdayTags = [...]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf converts time.Weekday into the tag stored in Habit.Days
func WeekdayOf(d time.Weekday) Weekday {
	return weekdayTags[d]
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
}

// Session scopes habit and history storage to one user
type Session struct {
	UserID uuid.UUID
}

type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Frequency      int       `json:"frequency"`
	Duration       int       `json:"duration,omitempty"`
	Reminders      []string  `json:"reminders,omitempty"`
	Goal           string    `json:"goal,omitempty"`
	Days           []Weekday `json:"days"`
	Streak         int       `json:"streak"`
	CompletedToday bool      `json:"completedToday"`
	DueDate        string    `json:"dueDate,omitempty"`
}

// ScheduledOn reports if the habit is planned for the given weekday
func (h *Habit) ScheduledOn(d time.Weekday) bool {
	return slices.Contains(h.Days, WeekdayOf(d))
}

// HabitList is the persisted envelope for a user's habits
type HabitList struct {
	Version     int       `json:"version"`
	Habits      []Habit   `json:"habits"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type CompletionEvent struct {
	HabitID   string `json:"id"`
	HabitName string `json:"name"`
	Completed bool   `json:"completed"`
}

// History maps YYYY-MM-DD to the events logged that day
type History map[string][]CompletionEvent

// HistoryLog is the persisted envelope for History
type HistoryLog struct {
	Version int     `json:"version"`
	Entries History `json:"entries"`
}

type DayMark struct {
	Date         string `json:"date"`
	Completed    int    `json:"completed"`
	Skipped      int    `json:"skipped"`
	HasCompleted bool   `json:"has_completed"`
}

type HeatmapCell struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Totals struct {
	Completed int `json:"completed"`
	Skipped   int `json:"skipped"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

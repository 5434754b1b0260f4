// Package rollover resets per-day completion flags when the calendar date changes.
package rollover

import (
	"time"

	"github.com/limbo/habitlog/pkg/entity"
)

type State int

const (
	SameDay State = iota
	NewDay
)

func (s State) String() string {
	if s == NewDay {
		return "new-day"
	}
	return "same-day"
}

// Classify compares calendar dates of lastUpdated and now in loc.
// A zero lastUpdated is always a new day.
func Classify(lastUpdated, now time.Time, loc *time.Location) State {
	if lastUpdated.IsZero() {
		return NewDay
	}
	if loc == nil {
		loc = time.Local
	}
	if sameDate(lastUpdated.In(loc), now.In(loc)) {
		return SameDay
	}
	return NewDay
}

// Reconcile returns the habits as they should look on now's date and whether
// anything differs from the input. Streaks are never touched. The input slice is not modified.
func Reconcile(habits []entity.Habit, lastUpdated, now time.Time, loc *time.Location) ([]entity.Habit, bool) {
	if Classify(lastUpdated, now, loc) == SameDay {
		return habits, false
	}
	changed := false
	out := make([]entity.Habit, len(habits))
	copy(out, habits)
	for i := range out {
		if out[i].CompletedToday {
			out[i].CompletedToday = false
			changed = true
		}
	}
	if !changed {
		return habits, false
	}
	return out, true
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/repository"
	"github.com/limbo/habitlog/internal/service"
	"github.com/limbo/habitlog/pkg/entity"
)

var errNotLoggedIn = errors.New("not logged in, run `habitctl login` first")

type Context struct {
	Ctx       context.Context
	Out       io.Writer
	Users     service.UserServiceI
	Sessions  repository.SessionRepositoryI
	Habits    service.HabitsServiceI
	Analytics service.AnalyticsServiceI
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// currentUser resolves the session and makes sure the account still exists
func (c *Context) currentUser() (*entity.User, error) {
	uid, err := c.Sessions.Current(c.Ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoSession) {
			return nil, errNotLoggedIn
		}
		return nil, err
	}
	user, err := c.Users.GetByID(c.Ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errNotLoggedIn
		}
		return nil, err
	}
	return user, nil
}

func (c *Context) currentUID() (uuid.UUID, error) {
	user, err := c.currentUser()
	if err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

var weekdayNames = map[string]entity.Weekday{
	"mon": entity.Monday, "monday": entity.Monday,
	"tue": entity.Tuesday, "tuesday": entity.Tuesday,
	"wed": entity.Wednesday, "wednesday": entity.Wednesday,
	"thu": entity.Thursday, "thursday": entity.Thursday,
	"fri": entity.Friday, "friday": entity.Friday,
	"sat": entity.Saturday, "saturday": entity.Saturday,
	"sun": entity.Sunday, "sunday": entity.Sunday,
}

var everyDay = []entity.Weekday{
	entity.Monday, entity.Tuesday, entity.Wednesday, entity.Thursday,
	entity.Friday, entity.Saturday, entity.Sunday,
}

func parseWeekdays(items []string) ([]entity.Weekday, error) {
	if len(items) == 0 {
		return everyDay, nil
	}
	var days []entity.Weekday
	for _, item := range items {
		if strings.EqualFold(strings.TrimSpace(item), "daily") {
			return everyDay, nil
		}
		wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(item))]
		if !ok {
			return nil, fmt.Errorf("invalid weekday: %s", item)
		}
		days = append(days, wd)
	}
	return days, nil
}

func formatHabit(h entity.Habit) string {
	mark := "[ ]"
	if h.CompletedToday {
		mark = "[x]"
	}
	days := make([]string, 0, len(h.Days))
	for _, d := range h.Days {
		days = append(days, string(d))
	}
	line := fmt.Sprintf("%s %s  %-30s  streak %-3d  %s", mark, h.ID, h.Name, h.Streak, strings.Join(days, ","))
	if h.DueDate != "" {
		line += "  due " + h.DueDate
	}
	return line
}

func (c *Context) printHabits(habits []entity.Habit, empty string) {
	if len(habits) == 0 {
		c.printf("  %s\n", empty)
		return
	}
	for _, h := range habits {
		c.printf("%s\n", formatHabit(h))
	}
}

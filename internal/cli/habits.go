package cli

import (
	"github.com/limbo/habitlog/internal/service"
)

type AddCmd struct {
	Name      string   `arg:"" help:"Habit name."`
	Frequency int      `short:"f" default:"1" help:"Times per day."`
	Days      []string `short:"d" help:"Weekdays (mon,tue,... or daily). Every day when omitted."`
	Duration  int      `help:"Minutes per session."`
	Reminder  []string `short:"r" help:"Reminder time HH:MM, repeatable."`
	Goal      string   `help:"Free-form goal."`
	Due       string   `help:"Due date YYYY-MM-DD."`
}

func (a *AddCmd) Run(ctx *Context) error {
	uid, err := ctx.currentUID()
	if err != nil {
		return err
	}
	days, err := parseWeekdays(a.Days)
	if err != nil {
		return err
	}
	habit, err := ctx.Habits.AddHabit(ctx.Ctx, uid, &service.HabitRequest{
		Name:      a.Name,
		Frequency: a.Frequency,
		Duration:  a.Duration,
		Reminders: a.Reminder,
		Goal:      a.Goal,
		Days:      days,
		DueDate:   a.Due,
	})
	if err != nil {
		return err
	}
	ctx.printf("Added %s\n", formatHabit(*habit))
	return nil
}

type ListCmd struct{}

func (ListCmd) Run(ctx *Context) error {
	uid, err := ctx.currentUID()
	if err != nil {
		return err
	}
	habits, err := ctx.Habits.ListHabits(ctx.Ctx, uid)
	if err != nil {
		return err
	}
	ctx.printHabits(habits, "No habits yet")
	return nil
}

type PendingCmd struct{}

func (PendingCmd) Run(ctx *Context) error {
	uid, err := ctx.currentUID()
	if err != nil {
		return err
	}
	habits, err := ctx.Habits.PendingHabits(ctx.Ctx, uid)
	if err != nil {
		return err
	}
	ctx.printHabits(habits, "Nothing pending")
	return nil
}

type TodayCmd struct{}

func (TodayCmd) Run(ctx *Context) error {
	uid, err := ctx.currentUID()
	if err != nil {
		return err
	}
	habits, err := ctx.Habits.TodayHabits(ctx.Ctx, uid)
	if err != nil {
		return err
	}
	ctx.printHabits(habits, "Nothing scheduled for today")
	return nil
}

type DoneCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (d *DoneCmd) Run(ctx *Context) error {
	uid, err := ctx.currentUID()
	if err != nil {
		return err
	}
	habit, err := ctx.Habits.ToggleComplete(ctx.Ctx, uid, d.ID)
	if err != nil {
		return err
	}
	ctx.printf("%s\n", formatHabit(*habit))
	return nil
}

type SkipCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (s *SkipCmd) Run(ctx *Context) error {
	uid, err := ctx.currentUID()
	if err != nil {
		return err
	}
	habit, err := ctx.Habits.SkipHabit(ctx.Ctx, uid, s.ID)
	if err != nil {
		return err
	}
	ctx.printf("%s\n", formatHabit(*habit))
	return nil
}

type RmCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (r *RmCmd) Run(ctx *Context) error {
	uid, err := ctx.currentUID()
	if err != nil {
		return err
	}
	if err = ctx.Habits.DeleteHabit(ctx.Ctx, uid, r.ID); err != nil {
		return err
	}
	ctx.printf("Removed %s\n", r.ID)
	return nil
}

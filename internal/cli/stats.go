package cli

import "strings"

type CalendarCmd struct{}

func (CalendarCmd) Run(ctx *Context) error {
	uid, err := ctx.currentUID()
	if err != nil {
		return err
	}
	marks, err := ctx.Analytics.CalendarMarks(ctx.Ctx, uid)
	if err != nil {
		return err
	}
	if len(marks) == 0 {
		ctx.printf("  No history yet\n")
		return nil
	}
	for _, m := range marks {
		dot := " "
		if m.HasCompleted {
			dot = "*"
		}
		ctx.printf("%s %s  done %d  skipped %d\n", dot, m.Date, m.Completed, m.Skipped)
	}
	return nil
}

type WeeklyCmd struct{}

func (WeeklyCmd) Run(ctx *Context) error {
	uid, err := ctx.currentUID()
	if err != nil {
		return err
	}
	counts, err := ctx.Analytics.WeeklyCounts(ctx.Ctx, uid)
	if err != nil {
		return err
	}
	labels := []string{"this week", "last week", "2 weeks ago", "3 weeks ago"}
	for i, n := range counts {
		label := "week -?"
		if i < len(labels) {
			label = labels[i]
		}
		ctx.printf("%-12s %3d %s\n", label, n, strings.Repeat("#", n))
	}
	return nil
}

type RecommendCmd struct {
	Completed []string `arg:"" optional:"" help:"Habit names to base suggestions on. History is used when omitted."`
}

func (r *RecommendCmd) Run(ctx *Context) error {
	uid, err := ctx.currentUID()
	if err != nil {
		return err
	}
	recs, err := ctx.Analytics.Recommend(ctx.Ctx, uid, r.Completed)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		ctx.printf("  No suggestions yet\n")
		return nil
	}
	for _, name := range recs {
		ctx.printf("- %s\n", name)
	}
	return nil
}

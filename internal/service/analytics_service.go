package service

import (
	"cmp"
	"context"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/kvstore"
	"github.com/limbo/habitlog/internal/repository"
	"github.com/limbo/habitlog/pkg/entity"
)

const (
	DefaultHeatmapDays = 90
	DefaultTrendMonths = 6
	DefaultTopHabits   = 5
	MaxHeatmapDays     = 366
	MaxTrendMonths     = 24
	weeksTracked       = 4
)

// AnalyticsService folds a user's history into calendar and chart data. Read only.
type AnalyticsService struct {
	store kvstore.Store
	opts  options
}

func NewAnalyticsService(store kvstore.Store, opts ...Option) *AnalyticsService {
	if store == nil {
		log.Fatal("provided nil store")
	}
	return &AnalyticsService{
		store: store,
		opts:  buildOptions(opts),
	}
}

func (as *AnalyticsService) History(ctx context.Context, uid uuid.UUID) (entity.History, error) {
	history, err := repository.NewHistoryRepo(as.store, entity.Session{UserID: uid}).LoadLog(ctx)
	if err != nil {
		return nil, fmt.Errorf("history repository error: %w", err)
	}
	return history, nil
}

func (as *AnalyticsService) CalendarMarks(ctx context.Context, uid uuid.UUID) ([]entity.DayMark, error) {
	history, err := as.History(ctx, uid)
	if err != nil {
		return nil, err
	}
	marks := make([]entity.DayMark, 0, len(history))
	for date, evs := range history {
		mark := entity.DayMark{Date: date}
		for _, ev := range evs {
			if ev.Completed {
				mark.Completed++
			} else {
				mark.Skipped++
			}
		}
		mark.HasCompleted = mark.Completed > 0
		marks = append(marks, mark)
	}
	slices.SortFunc(marks, func(a, b entity.DayMark) int {
		return cmp.Compare(a.Date, b.Date)
	})
	return marks, nil
}

func (as *AnalyticsService) DayLogs(ctx context.Context, uid uuid.UUID, date string) ([]entity.CompletionEvent, error) {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", errorvalues.ErrValidation)
	}
	history, err := as.History(ctx, uid)
	if err != nil {
		return nil, err
	}
	evs := history[date]
	if evs == nil {
		evs = []entity.CompletionEvent{}
	}
	return evs, nil
}

func (as *AnalyticsService) Heatmap(ctx context.Context, uid uuid.UUID, days int) ([]entity.HeatmapCell, error) {
	if days <= 0 {
		days = DefaultHeatmapDays
	}
	if days > MaxHeatmapDays {
		return nil, fmt.Errorf("%w: heatmap covers at most %d days", errorvalues.ErrValidation, MaxHeatmapDays)
	}
	history, err := as.History(ctx, uid)
	if err != nil {
		return nil, err
	}
	today := dateOnly(as.opts.now())
	cells := make([]entity.HeatmapCell, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(entity.DateLayout)
		cells = append(cells, entity.HeatmapCell{
			Date:  date,
			Count: countCompleted(history[date]),
		})
	}
	return cells, nil
}

func (as *AnalyticsService) WeeklyCounts(ctx context.Context, uid uuid.UUID) ([]int, error) {
	history, err := as.History(ctx, uid)
	if err != nil {
		return nil, err
	}
	counts := make([]int, weeksTracked)
	current := weekStart(as.opts.now())
	for date, evs := range history {
		day, err := time.ParseInLocation(entity.DateLayout, date, as.opts.loc)
		if err != nil {
			continue
		}
		offset := weeksBetween(weekStart(day), current)
		if offset < 0 || offset >= weeksTracked {
			continue
		}
		counts[offset] += countCompleted(evs)
	}
	return counts, nil
}

func (as *AnalyticsService) Totals(ctx context.Context, uid uuid.UUID) (entity.Totals, error) {
	history, err := as.History(ctx, uid)
	if err != nil {
		return entity.Totals{}, err
	}
	var totals entity.Totals
	for _, evs := range history {
		for _, ev := range evs {
			if ev.Completed {
				totals.Completed++
			} else {
				totals.Skipped++
			}
		}
	}
	return totals, nil
}

func (as *AnalyticsService) MonthlyTrends(ctx context.Context, uid uuid.UUID, months int) ([]entity.MonthCount, error) {
	if months <= 0 {
		months = DefaultTrendMonths
	}
	if months > MaxTrendMonths {
		return nil, fmt.Errorf("%w: trends cover at most %d months", errorvalues.ErrValidation, MaxTrendMonths)
	}
	history, err := as.History(ctx, uid)
	if err != nil {
		return nil, err
	}
	now := as.opts.now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, as.opts.loc)
	trends := make([]entity.MonthCount, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		month := firstOfMonth.AddDate(0, i-months+1, 0).Format("2006-01")
		trends[i] = entity.MonthCount{Month: month}
		index[month] = i
	}
	for date, evs := range history {
		if len(date) < 7 {
			continue
		}
		if i, ok := index[date[:7]]; ok {
			trends[i].Count += countCompleted(evs)
		}
	}
	return trends, nil
}

// MostLogged counts every event (completed or skipped) by habit name
func (as *AnalyticsService) MostLogged(ctx context.Context, uid uuid.UUID, n int) ([]entity.NameCount, error) {
	if n <= 0 {
		n = DefaultTopHabits
	}
	history, err := as.History(ctx, uid)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, evs := range history {
		for _, ev := range evs {
			counts[ev.HabitName]++
		}
	}
	top := make([]entity.NameCount, 0, len(counts))
	for name, count := range counts {
		top = append(top, entity.NameCount{Name: name, Count: count})
	}
	slices.SortFunc(top, func(a, b entity.NameCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if len(top) > n {
		top = top[:n]
	}
	return top, nil
}

func (as *AnalyticsService) Recommend(ctx context.Context, uid uuid.UUID, completed []string) ([]string, error) {
	if completed == nil {
		history, err := as.History(ctx, uid)
		if err != nil {
			return nil, err
		}
		seen := map[string]struct{}{}
		for _, evs := range history {
			for _, ev := range evs {
				if _, ok := seen[ev.HabitName]; ev.Completed && !ok {
					seen[ev.HabitName] = struct{}{}
					completed = append(completed, ev.HabitName)
				}
			}
		}
	}
	return defaultRecommender.Recommend(completed), nil
}

func countCompleted(evs []entity.CompletionEvent) int {
	n := 0
	for _, ev := range evs {
		if ev.Completed {
			n++
		}
	}
	return n
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weekStart returns midnight of the Monday starting t's week
func weekStart(t time.Time) time.Time {
	day := dateOnly(t)
	shift := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -shift)
}

// weeksBetween counts whole weeks from Monday a to Monday b in calendar days, -1 when b is before a
func weeksBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	days := int(ub.Sub(ua).Hours() / 24)
	if days < 0 {
		return -1
	}
	return days / 7
}

var _ AnalyticsServiceI = (*AnalyticsService)(nil)

package stats

import (
	"math"
	"time"

	"github.com/julianstephens/groove/internal/dateutil"
	"github.com/julianstephens/groove/internal/models"
	"github.com/julianstephens/groove/internal/schedule"
	"github.com/julianstephens/groove/internal/streak"
)

// CalendarDay is one cell of a monthly grid. Non-due days carry IsDue=false
// so the renderer can distinguish them from due-but-incomplete days.
type CalendarDay struct {
	Day         string `json:"day"` // YYYY-MM-DD format
	IsDue       bool   `json:"is_due"`
	IsSatisfied bool   `json:"is_satisfied"`
}

// Summary is the period report the presentation layer consumes. Never
// persisted, always recomputed from habit and completion data.
type Summary struct {
	TotalDue       int `json:"total_due"`
	TotalSatisfied int `json:"total_satisfied"`
	CurrentStreak  int `json:"current_streak"`
	LongestStreak  int `json:"longest_streak"`
	Rate           int `json:"rate"` // percent, rounded to nearest integer
}

// CompletionRate returns satisfied due days as a percentage of total due
// days in [start, end], rounded to the nearest integer. A range with zero
// due days yields 0, never a division by zero.
func CompletionRate(habit models.Habit, completions schedule.CompletionSet, start, end time.Time) (int, error) {
	totalDue, satisfied, err := countDue(habit, completions, start, end)
	if err != nil {
		return 0, err
	}
	if totalDue == 0 {
		return 0, nil
	}
	return int(math.Round(float64(satisfied) / float64(totalDue) * 100)), nil
}

// MonthlyCalendar returns one entry per day of the month in ascending order.
func MonthlyCalendar(habit models.Habit, completions schedule.CompletionSet, year int, month time.Month) ([]CalendarDay, error) {
	eval := schedule.NewEvaluator(completions)

	days := make([]CalendarDay, 0, dateutil.DaysInMonth(year, month))
	for d := 1; d <= dateutil.DaysInMonth(year, month); d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		due, err := eval.IsDue(habit, day)
		if err != nil {
			return nil, err
		}
		dayStr := dateutil.FormatDay(day)
		days = append(days, CalendarDay{
			Day:         dayStr,
			IsDue:       due,
			IsSatisfied: due && completions.Satisfied(habit, dayStr),
		})
	}
	return days, nil
}

// Summarize composes due counts, streaks and rate into one report. The
// current streak is measured as of asOf, the rest over [start, end].
func Summarize(habit models.Habit, completions schedule.CompletionSet, start, end, asOf time.Time) (Summary, error) {
	totalDue, satisfied, err := countDue(habit, completions, start, end)
	if err != nil {
		return Summary{}, err
	}

	current, err := streak.Current(habit, completions, asOf)
	if err != nil {
		return Summary{}, err
	}
	longest, err := streak.Longest(habit, completions, start, end)
	if err != nil {
		return Summary{}, err
	}

	rate := 0
	if totalDue > 0 {
		rate = int(math.Round(float64(satisfied) / float64(totalDue) * 100))
	}

	return Summary{
		TotalDue:       totalDue,
		TotalSatisfied: satisfied,
		CurrentStreak:  current,
		LongestStreak:  longest,
		Rate:           rate,
	}, nil
}

func countDue(habit models.Habit, completions schedule.CompletionSet, start, end time.Time) (totalDue, satisfied int, err error) {
	eval := schedule.NewEvaluator(completions)
	dues := eval.DueDatesInRange(habit, start, end)
	for {
		day, ok := dues.Next()
		if !ok {
			break
		}
		totalDue++
		if completions.Satisfied(habit, dateutil.FormatDay(day)) {
			satisfied++
		}
	}
	return totalDue, satisfied, dues.Err()
}

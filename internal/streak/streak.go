package streak

import (
	"time"

	"github.com/julianstephens/groove/internal/dateutil"
	"github.com/julianstephens/groove/internal/models"
	"github.com/julianstephens/groove/internal/schedule"
)

// Current returns the length of the unbroken run of satisfied due dates
// ending at asOf. The walk goes backward from asOf: non-due dates are
// skipped without breaking the run, the first unsatisfied due date stops it.
// An unsatisfied due asOf therefore yields 0.
//
// Pure given its inputs: completions is the caller-supplied snapshot for the
// habit, no store is consulted.
func Current(habit models.Habit, completions schedule.CompletionSet, asOf time.Time) (int, error) {
	eval := schedule.NewEvaluator(completions)
	start := dateutil.DayOf(habit.CreatedAt)
	end := dateutil.DayOf(asOf)
	if end.Before(start) {
		return 0, nil
	}

	dues, err := eval.DueDatesInRange(habit, start, end).Collect()
	if err != nil {
		return 0, err
	}

	count := 0
	for i := len(dues) - 1; i >= 0; i-- {
		if !completions.Satisfied(habit, dateutil.FormatDay(dues[i])) {
			break
		}
		count++
	}
	return count, nil
}

// Longest returns the longest unbroken run of satisfied due dates within
// [start, end] inclusive. A single ascending pass: the counter grows on
// satisfied due dates, resets on unsatisfied ones, and the maximum wins.
func Longest(habit models.Habit, completions schedule.CompletionSet, start, end time.Time) (int, error) {
	eval := schedule.NewEvaluator(completions)
	dues := eval.DueDatesInRange(habit, start, end)

	best := 0
	run := 0
	for {
		day, ok := dues.Next()
		if !ok {
			break
		}
		if completions.Satisfied(habit, dateutil.FormatDay(day)) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	if err := dues.Err(); err != nil {
		return 0, err
	}
	return best, nil
}

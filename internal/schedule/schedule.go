package schedule

import (
	"fmt"
	"time"

	"github.com/julianstephens/groove/internal/dateutil"
	apperrors "github.com/julianstephens/groove/internal/errors"
	"github.com/julianstephens/groove/internal/models"
)

// CompletionSource answers whether any completion exists for a habit. The
// "once" frequency is the only rule that needs it: a once habit is due on
// every date until its first completion, so dueness for that rule depends on
// completion history. Every other rule ignores the source entirely.
type CompletionSource interface {
	HasAny(habitID string) (bool, error)
}

// CompletionSet is a single habit's completion snapshot keyed by day
// (YYYY-MM-DD). It doubles as a CompletionSource for that habit, which lets
// the pure streak and stats functions evaluate "once" habits without a store.
type CompletionSet map[string]models.Completion

// HasAny implements CompletionSource for the snapshot's habit.
func (s CompletionSet) HasAny(string) (bool, error) {
	return len(s) > 0, nil
}

// Satisfied reports whether the habit's target is met on the given day.
func (s CompletionSet) Satisfied(h models.Habit, day string) bool {
	c, ok := s[day]
	return ok && c.Satisfies(h)
}

// Evaluator decides whether a habit is due on a given date.
type Evaluator struct {
	completions CompletionSource
}

// NewEvaluator creates an Evaluator backed by the given completion source.
func NewEvaluator(src CompletionSource) *Evaluator {
	return &Evaluator{completions: src}
}

// IsDue reports whether the habit requires action on the given date.
//
// It fails with ErrInvalidHabitState when the frequency configuration is
// malformed. Inactive habits and dates before creation are never due.
func (e *Evaluator) IsDue(habit models.Habit, date time.Time) (bool, error) {
	if err := checkFrequencyConfig(habit); err != nil {
		return false, err
	}

	if !habit.Active() {
		return false, nil
	}

	day := dateutil.DayOf(date)
	created := dateutil.DayOf(habit.CreatedAt)
	if day.Before(created) {
		return false, nil
	}

	switch habit.Frequency {
	case models.FrequencyDaily:
		return true, nil

	case models.FrequencyWeekly:
		// Anchored to the creation weekday, not calendar weeks.
		return dateutil.DaysBetween(created, day)%7 == 0, nil

	case models.FrequencyMonthly:
		// Due on the creation day-of-month, clamped to the last day of
		// shorter months so no month is skipped.
		anchor := created.Day()
		dueDay := anchor
		if last := dateutil.DaysInMonth(day.Year(), day.Month()); anchor > last {
			dueDay = last
		}
		return day.Day() == dueDay, nil

	case models.FrequencyWeekdays:
		for _, wd := range habit.SelectedDays {
			if day.Weekday() == wd {
				return true, nil
			}
		}
		return false, nil

	case models.FrequencySpecificDate:
		target, err := dateutil.ParseDay(habit.SpecificDate)
		if err != nil {
			return false, fmt.Errorf("%w: habit %q has unparsable specific date %q",
				apperrors.ErrInvalidHabitState, habit.Name, habit.SpecificDate)
		}
		return dateutil.SameDay(day, target), nil

	case models.FrequencyOnce:
		// Cross-component read: dueness depends on completion existence.
		done, err := e.completions.HasAny(habit.ID)
		if err != nil {
			return false, err
		}
		return !done, nil
	}

	// Unreachable: checkFrequencyConfig rejects unknown frequencies.
	return false, fmt.Errorf("%w: unknown frequency %q", apperrors.ErrInvalidHabitState, habit.Frequency)
}

// checkFrequencyConfig fails when the frequency requires a field that is
// absent or malformed.
func checkFrequencyConfig(habit models.Habit) error {
	if !habit.Frequency.Valid() {
		return fmt.Errorf("%w: unknown frequency %q", apperrors.ErrInvalidHabitState, habit.Frequency)
	}
	switch habit.Frequency {
	case models.FrequencyWeekdays:
		if len(habit.SelectedDays) == 0 {
			return fmt.Errorf("%w: weekdays habit %q has no selected days",
				apperrors.ErrInvalidHabitState, habit.Name)
		}
	case models.FrequencySpecificDate:
		if _, err := dateutil.ParseDay(habit.SpecificDate); err != nil {
			return fmt.Errorf("%w: habit %q has unparsable specific date %q",
				apperrors.ErrInvalidHabitState, habit.Name, habit.SpecificDate)
		}
	}
	return nil
}

// DueRange is a lazy, finite, restartable sequence of a habit's due dates
// within an inclusive range, produced day by day in ascending order.
type DueRange struct {
	eval  *Evaluator
	habit models.Habit
	start time.Time
	end   time.Time
	cur   time.Time
	err   error
}

// DueDatesInRange returns the habit's due dates within [start, end]
// inclusive. Streak and stats code iterates this instead of re-deriving the
// frequency rules.
func (e *Evaluator) DueDatesInRange(habit models.Habit, start, end time.Time) *DueRange {
	s := dateutil.DayOf(start)
	return &DueRange{
		eval:  e,
		habit: habit,
		start: s,
		end:   dateutil.DayOf(end),
		cur:   s,
	}
}

// Next returns the next due date, or false when the range is exhausted or an
// evaluation error occurred (check Err afterwards).
func (r *DueRange) Next() (time.Time, bool) {
	for !r.cur.After(r.end) {
		day := r.cur
		r.cur = dateutil.AddDays(r.cur, 1)

		due, err := r.eval.IsDue(r.habit, day)
		if err != nil {
			r.err = err
			return time.Time{}, false
		}
		if due {
			return day, true
		}
	}
	return time.Time{}, false
}

// Err returns the first evaluation error encountered by Next, if any.
func (r *DueRange) Err() error { return r.err }

// Reset rewinds the sequence to the start of the range.
func (r *DueRange) Reset() {
	r.cur = r.start
	r.err = nil
}

// Collect drains the sequence into a slice.
func (r *DueRange) Collect() ([]time.Time, error) {
	var days []time.Time
	for {
		day, ok := r.Next()
		if !ok {
			break
		}
		days = append(days, day)
	}
	return days, r.Err()
}

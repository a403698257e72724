// Package engine ties scheduling, tracking, streaks and stats together on top
// of a storage provider. The CLI and TUI talk to the engine, never to the
// calculators directly.
package engine

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/groove/internal/dateutil"
	apperrors "github.com/julianstephens/groove/internal/errors"
	"github.com/julianstephens/groove/internal/models"
	"github.com/julianstephens/groove/internal/schedule"
	"github.com/julianstephens/groove/internal/stats"
	"github.com/julianstephens/groove/internal/storage"
	"github.com/julianstephens/groove/internal/tracker"
	"github.com/julianstephens/groove/internal/validation"
)

type Engine struct {
	store     storage.Provider
	tracker   *tracker.Tracker
	validator *validation.Validator
	clock     dateutil.Clock
}

func New(store storage.Provider, clock dateutil.Clock) *Engine {
	if clock == nil {
		clock = dateutil.SystemClock()
	}
	return &Engine{
		store:     store,
		tracker:   tracker.New(store),
		validator: validation.New(),
		clock:     clock,
	}
}

// Tracker exposes the completion tracker for callers that need raw counter
// access.
func (e *Engine) Tracker() *tracker.Tracker {
	return e.tracker
}

// now returns the clock time in the configured timezone. "Local" (the
// default) and an unloadable zone both fall back to the clock's own location.
func (e *Engine) now() time.Time {
	now := e.clock.Now()
	settings, err := e.store.GetSettings()
	if err != nil || settings.Timezone == "" || settings.Timezone == "Local" {
		return now
	}
	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		return now
	}
	return now.In(loc)
}

// Today returns the current day in storage format.
func (e *Engine) Today() string {
	return dateutil.FormatDay(e.now())
}

// CreateHabit validates the input, assigns an ID and creation time, and
// persists the habit.
func (e *Engine) CreateHabit(input models.HabitInput) (models.Habit, error) {
	if err := e.validator.ValidateHabitInput(input); err != nil {
		return models.Habit{}, err
	}

	if existing, err := e.store.GetHabitByName(input.Name); err == nil {
		return models.Habit{}, fmt.Errorf("%w: habit %q already exists (id %s)",
			apperrors.ErrInvalidHabitState, existing.Name, existing.ID)
	}

	habit := models.Habit{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		Color:        input.Color,
		Frequency:    input.Frequency,
		SelectedDays: input.SelectedDays,
		SpecificDate: input.SpecificDate,
		TargetCount:  input.TargetCount,
		CreatedAt:    dateutil.DayOf(e.now()),
	}

	if err := e.store.AddHabit(habit); err != nil {
		return models.Habit{}, fmt.Errorf("failed to save habit: %w", err)
	}
	return habit, nil
}

// ResolveHabit finds a habit by ID first, then by name.
func (e *Engine) ResolveHabit(ref string) (models.Habit, error) {
	habit, err := e.store.GetHabit(ref)
	if err == nil {
		return habit, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return models.Habit{}, err
	}
	return e.store.GetHabitByName(ref)
}

// ListHabits returns habits ordered by creation time.
func (e *Engine) ListHabits(includeArchived, includeDeleted bool) ([]models.Habit, error) {
	return e.store.GetAllHabits(includeArchived, includeDeleted)
}

// DueHabit is a habit due on a particular day together with its completion
// state for that day.
type DueHabit struct {
	Habit     models.Habit
	Count     int
	Satisfied bool
}

// DueHabitsFor evaluates every active habit against the given day and returns
// the due ones with their completion state, ordered by name.
func (e *Engine) DueHabitsFor(day string) ([]DueHabit, error) {
	date, err := dateutil.ParseDay(day)
	if err != nil {
		return nil, err
	}

	habits, err := e.store.GetAllHabits(false, false)
	if err != nil {
		return nil, err
	}

	eval := schedule.NewEvaluator(e.tracker.Source())

	var due []DueHabit
	for _, habit := range habits {
		isDue, err := eval.IsDue(habit, date)
		if err != nil {
			return nil, fmt.Errorf("evaluating habit %q: %w", habit.Name, err)
		}
		if !isDue {
			continue
		}

		count, err := e.tracker.Count(habit.ID, day)
		if err != nil {
			return nil, err
		}
		due = append(due, DueHabit{
			Habit:     habit,
			Count:     count,
			Satisfied: count >= habit.Target(),
		})
	}

	sort.Slice(due, func(i, j int) bool {
		return due[i].Habit.Name < due[j].Habit.Name
	})
	return due, nil
}

// MarkHabitDone increments today's (or the given day's) completion counter
// for the referenced habit.
func (e *Engine) MarkHabitDone(ref, day string) (models.Completion, error) {
	habit, err := e.ResolveHabit(ref)
	if err != nil {
		return models.Completion{}, err
	}
	if _, err := dateutil.ParseDay(day); err != nil {
		return models.Completion{}, err
	}
	return e.tracker.MarkComplete(habit.ID, day)
}

// UnmarkHabitDone decrements the completion counter for the referenced habit.
func (e *Engine) UnmarkHabitDone(ref, day string) (models.Completion, error) {
	habit, err := e.ResolveHabit(ref)
	if err != nil {
		return models.Completion{}, err
	}
	if _, err := dateutil.ParseDay(day); err != nil {
		return models.Completion{}, err
	}
	return e.tracker.UnmarkComplete(habit.ID, day)
}

// StreakReport carries both streak figures for a habit.
type StreakReport struct {
	Current int
	Longest int
}

// Streaks computes the current streak as of the given day and the longest
// streak over the habit's lifetime up to that day.
func (e *Engine) Streaks(ref, asOfDay string) (StreakReport, error) {
	habit, err := e.ResolveHabit(ref)
	if err != nil {
		return StreakReport{}, err
	}

	asOf, err := dateutil.ParseDay(asOfDay)
	if err != nil {
		return StreakReport{}, err
	}

	set, err := e.snapshot(habit, asOfDay)
	if err != nil {
		return StreakReport{}, err
	}

	report, err := stats.Summarize(habit, set, habit.CreatedAt, asOf, asOf)
	if err != nil {
		return StreakReport{}, err
	}
	return StreakReport{Current: report.CurrentStreak, Longest: report.LongestStreak}, nil
}

// Stats computes the full summary for a habit over an inclusive day range,
// with streaks evaluated as of the range end.
func (e *Engine) Stats(ref, startDay, endDay string) (stats.Summary, error) {
	habit, err := e.ResolveHabit(ref)
	if err != nil {
		return stats.Summary{}, err
	}

	start, err := dateutil.ParseDay(startDay)
	if err != nil {
		return stats.Summary{}, err
	}
	end, err := dateutil.ParseDay(endDay)
	if err != nil {
		return stats.Summary{}, err
	}

	set, err := e.snapshot(habit, endDay)
	if err != nil {
		return stats.Summary{}, err
	}

	return stats.Summarize(habit, set, start, end, end)
}

// MonthlyCalendarView returns the per-day calendar grid for the habit in the
// given month.
func (e *Engine) MonthlyCalendarView(ref string, year int, month time.Month) ([]stats.CalendarDay, error) {
	habit, err := e.ResolveHabit(ref)
	if err != nil {
		return nil, err
	}

	endDay := dateutil.FormatDay(time.Date(year, month, dateutil.DaysInMonth(year, month), 0, 0, 0, 0, time.UTC))
	set, err := e.snapshot(habit, endDay)
	if err != nil {
		return nil, err
	}

	return stats.MonthlyCalendar(habit, set, year, month)
}

// snapshot loads the habit's completions from creation through endDay as a
// set the calculators can use. Loading from creation keeps the "once" rule
// and lifetime streaks correct regardless of the query window.
func (e *Engine) snapshot(habit models.Habit, endDay string) (schedule.CompletionSet, error) {
	startDay := dateutil.FormatDay(dateutil.DayOf(habit.CreatedAt))
	if endDay < startDay {
		endDay = startDay
	}
	return e.tracker.CompletionsInRange(habit.ID, startDay, endDay)
}

// WriteJournal validates and upserts the journal entry for its day.
func (e *Engine) WriteJournal(entry models.JournalEntry) error {
	if err := e.validator.ValidateJournalInput(entry); err != nil {
		return err
	}
	return e.store.UpsertJournalEntry(entry)
}

// GetJournal returns the entry for a day.
func (e *Engine) GetJournal(day string) (models.JournalEntry, error) {
	if _, err := dateutil.ParseDay(day); err != nil {
		return models.JournalEntry{}, err
	}
	return e.store.GetJournalEntry(day)
}

// ListJournal returns the entries in an inclusive day range, ascending.
func (e *Engine) ListJournal(startDay, endDay string) ([]models.JournalEntry, error) {
	if _, err := dateutil.ParseDay(startDay); err != nil {
		return nil, err
	}
	if _, err := dateutil.ParseDay(endDay); err != nil {
		return nil, err
	}
	return e.store.GetJournalEntries(startDay, endDay)
}

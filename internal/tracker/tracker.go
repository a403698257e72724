// Package tracker records and queries habit completions on top of a storage
// provider. Completions are per-day counters, so marking is idempotent in
// shape (one record per habit and day) but additive in count.
package tracker

import (
	"errors"
	"fmt"

	apperrors "github.com/julianstephens/groove/internal/errors"
	"github.com/julianstephens/groove/internal/models"
	"github.com/julianstephens/groove/internal/schedule"
	"github.com/julianstephens/groove/internal/storage"
)

type Tracker struct {
	store storage.Provider
}

func New(store storage.Provider) *Tracker {
	return &Tracker{store: store}
}

// MarkComplete increments the completion counter for the habit on the given
// day and returns the updated record.
func (t *Tracker) MarkComplete(habitID, day string) (models.Completion, error) {
	return t.store.UpsertCompletion(habitID, day, 1)
}

// UnmarkComplete decrements the completion counter for the habit on the given
// day. The record disappears when the count reaches zero. Unmarking a day
// with no record fails with ErrNotFound.
func (t *Tracker) UnmarkComplete(habitID, day string) (models.Completion, error) {
	return t.store.UpsertCompletion(habitID, day, -1)
}

// Count returns the completion count for the habit on the given day, 0 when
// no record exists.
func (t *Tracker) Count(habitID, day string) (int, error) {
	c, err := t.store.GetCompletion(habitID, day)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return c.Count, nil
}

// IsSatisfied reports whether the habit's target count is met on the day.
func (t *Tracker) IsSatisfied(habit models.Habit, day string) (bool, error) {
	count, err := t.Count(habit.ID, day)
	if err != nil {
		return false, err
	}
	return count >= habit.Target(), nil
}

// CompletionsInRange loads a habit's completions between startDay and endDay
// inclusive as a snapshot usable by the streak and stats calculators.
func (t *Tracker) CompletionsInRange(habitID, startDay, endDay string) (schedule.CompletionSet, error) {
	completions, err := t.store.GetCompletionsForHabit(habitID, startDay, endDay)
	if err != nil {
		return nil, fmt.Errorf("loading completions for habit %s: %w", habitID, err)
	}

	set := make(schedule.CompletionSet, len(completions))
	for _, c := range completions {
		set[c.Day] = c
	}
	return set, nil
}

// Source returns a CompletionSource backed by the store, for schedule
// evaluation over live data rather than a snapshot.
func (t *Tracker) Source() schedule.CompletionSource {
	return storeSource{store: t.store}
}

type storeSource struct {
	store storage.Provider
}

func (s storeSource) HasAny(habitID string) (bool, error) {
	return s.store.HasCompletions(habitID)
}

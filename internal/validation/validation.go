// Package validation checks habit and journal input before it reaches the
// store, so malformed configuration is rejected at the boundary instead of
// surfacing as evaluation errors later.
package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/groove/internal/dateutil"
	apperrors "github.com/julianstephens/groove/internal/errors"
	"github.com/julianstephens/groove/internal/models"
)

// Validator validates habit and journal input
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHabitInput checks a habit definition for structural problems.
// All failures wrap ErrInvalidHabitState.
func (v *Validator) ValidateHabitInput(input models.HabitInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: habit name must not be empty", apperrors.ErrInvalidHabitState)
	}

	if !input.Frequency.Valid() {
		return fmt.Errorf("%w: unknown frequency %q", apperrors.ErrInvalidHabitState, input.Frequency)
	}

	switch input.Frequency {
	case models.FrequencyWeekdays:
		if len(input.SelectedDays) == 0 {
			return fmt.Errorf("%w: weekdays frequency requires at least one selected day", apperrors.ErrInvalidHabitState)
		}
		seen := make(map[int]bool)
		for _, d := range input.SelectedDays {
			if d < 0 || d > 6 {
				return fmt.Errorf("%w: selected day %d out of range", apperrors.ErrInvalidHabitState, d)
			}
			if seen[int(d)] {
				return fmt.Errorf("%w: duplicate selected day %s", apperrors.ErrInvalidHabitState, d)
			}
			seen[int(d)] = true
		}

	case models.FrequencySpecificDate:
		if _, err := dateutil.ParseDay(input.SpecificDate); err != nil {
			return fmt.Errorf("%w: specific date %q is not a valid date", apperrors.ErrInvalidHabitState, input.SpecificDate)
		}
	}

	if input.TargetCount < 0 {
		return fmt.Errorf("%w: target count must not be negative", apperrors.ErrInvalidHabitState)
	}

	return nil
}

// ValidateJournalInput checks a journal entry before it is stored.
func (v *Validator) ValidateJournalInput(entry models.JournalEntry) error {
	if _, err := dateutil.ParseDay(entry.Day); err != nil {
		return fmt.Errorf("journal day: %w", err)
	}
	if entry.Mood != "" && !entry.Mood.Valid() {
		return fmt.Errorf("%w: unknown mood %q", apperrors.ErrInvalidHabitState, entry.Mood)
	}
	return nil
}

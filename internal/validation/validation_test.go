package validation

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/julianstephens/groove/internal/errors"
	"github.com/julianstephens/groove/internal/models"
)

func TestValidateHabitInput(t *testing.T) {
	validator := New()

	tests := []struct {
		name    string
		input   models.HabitInput
		wantErr bool
	}{
		{
			name:  "valid daily habit",
			input: models.HabitInput{Name: "Read", Frequency: models.FrequencyDaily},
		},
		{
			name: "valid weekdays habit",
			input: models.HabitInput{
				Name:         "Gym",
				Frequency:    models.FrequencyWeekdays,
				SelectedDays: []time.Weekday{time.Monday, time.Friday},
			},
		},
		{
			name: "valid specific date habit",
			input: models.HabitInput{
				Name:         "File taxes",
				Frequency:    models.FrequencySpecificDate,
				SpecificDate: "2024-04-15",
			},
		},
		{
			name:    "empty name",
			input:   models.HabitInput{Name: "   ", Frequency: models.FrequencyDaily},
			wantErr: true,
		},
		{
			name:    "unknown frequency",
			input:   models.HabitInput{Name: "X", Frequency: "fortnightly"},
			wantErr: true,
		},
		{
			name:    "weekdays without selected days",
			input:   models.HabitInput{Name: "Gym", Frequency: models.FrequencyWeekdays},
			wantErr: true,
		},
		{
			name: "duplicate selected days",
			input: models.HabitInput{
				Name:         "Gym",
				Frequency:    models.FrequencyWeekdays,
				SelectedDays: []time.Weekday{time.Monday, time.Monday},
			},
			wantErr: true,
		},
		{
			name: "specific date malformed",
			input: models.HabitInput{
				Name:         "X",
				Frequency:    models.FrequencySpecificDate,
				SpecificDate: "04/15/2024",
			},
			wantErr: true,
		},
		{
			name:    "negative target count",
			input:   models.HabitInput{Name: "X", Frequency: models.FrequencyDaily, TargetCount: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateHabitInput(tt.input)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidHabitState) {
					t.Errorf("ValidateHabitInput() error = %v, want ErrInvalidHabitState", err)
				}
			} else if err != nil {
				t.Errorf("ValidateHabitInput() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateJournalInput(t *testing.T) {
	validator := New()

	t.Run("valid entry", func(t *testing.T) {
		err := validator.ValidateJournalInput(models.JournalEntry{Day: "2024-01-10", Mood: models.MoodOkay})
		if err != nil {
			t.Errorf("ValidateJournalInput() returned unexpected error: %v", err)
		}
	})

	t.Run("empty mood is allowed", func(t *testing.T) {
		err := validator.ValidateJournalInput(models.JournalEntry{Day: "2024-01-10"})
		if err != nil {
			t.Errorf("ValidateJournalInput() returned unexpected error: %v", err)
		}
	})

	t.Run("bad day", func(t *testing.T) {
		err := validator.ValidateJournalInput(models.JournalEntry{Day: "not-a-day"})
		if !errors.Is(err, apperrors.ErrInvalidDateFormat) {
			t.Errorf("ValidateJournalInput() error = %v, want ErrInvalidDateFormat", err)
		}
	})

	t.Run("unknown mood", func(t *testing.T) {
		err := validator.ValidateJournalInput(models.JournalEntry{Day: "2024-01-10", Mood: "ecstatic"})
		if !errors.Is(err, apperrors.ErrInvalidHabitState) {
			t.Errorf("ValidateJournalInput() error = %v, want ErrInvalidHabitState", err)
		}
	})
}

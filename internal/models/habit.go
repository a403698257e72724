package models

import "time"

// Frequency identifies a habit's due-date rule. The set is closed: every
// place that evaluates dueness switches over all of these values.
type Frequency string

const (
	// FrequencyDaily is due every day from creation onward.
	FrequencyDaily Frequency = "daily"
	// FrequencyWeekly is due on the creation weekday, every 7 days thereafter.
	FrequencyWeekly Frequency = "weekly"
	// FrequencyMonthly is due on the creation day-of-month, clamped to the
	// last day of shorter months.
	FrequencyMonthly Frequency = "monthly"
	// FrequencyWeekdays is due on the weekdays in SelectedDays.
	FrequencyWeekdays Frequency = "weekdays"
	// FrequencySpecificDate is due on SpecificDate only.
	FrequencySpecificDate Frequency = "specificDate"
	// FrequencyOnce is due on every date until the first completion exists,
	// then never again.
	FrequencyOnce Frequency = "once"
)

// Valid reports whether f is one of the known frequency values.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly,
		FrequencyWeekdays, FrequencySpecificDate, FrequencyOnce:
		return true
	}
	return false
}

// Habit represents a recurring or one-off practice to track.
type Habit struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Category     string         `json:"category,omitempty"`
	Color        string         `json:"color,omitempty"`
	Frequency    Frequency      `json:"frequency"`
	SelectedDays []time.Weekday `json:"selected_days,omitempty"` // meaningful only for FrequencyWeekdays
	SpecificDate string         `json:"specific_date,omitempty"` // YYYY-MM-DD, meaningful only for FrequencySpecificDate
	TargetCount  int            `json:"target_count"`
	CreatedAt    time.Time      `json:"created_at"`
	ArchivedAt   *time.Time     `json:"archived_at,omitempty"`
	DeletedAt    *time.Time     `json:"deleted_at,omitempty"`
}

// HabitInput is a Habit minus the fields the system assigns on creation.
type HabitInput struct {
	Name         string
	Description  string
	Category     string
	Color        string
	Frequency    Frequency
	SelectedDays []time.Weekday
	SpecificDate string
	TargetCount  int
}

// Active reports whether the habit participates in due-date evaluation and
// stats. Archived and deleted habits retain history but are never due.
func (h Habit) Active() bool {
	return h.ArchivedAt == nil && h.DeletedAt == nil
}

// Target returns the effective completion target, never less than 1.
func (h Habit) Target() int {
	if h.TargetCount < 1 {
		return 1
	}
	return h.TargetCount
}

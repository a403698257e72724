package models

import "time"

// Completion records how many times a habit was performed on a single day.
// At most one record exists per (habit, day) pair; the count is incremented
// and decremented in place, and the record is removed when it reaches 0.
type Completion struct {
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Satisfies reports whether this record meets the habit's target for its day.
func (c Completion) Satisfies(h Habit) bool {
	return c.Count >= h.Target()
}

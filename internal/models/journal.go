package models

import "time"

// Mood is the closed set of moods a journal entry can carry.
type Mood string

const (
	MoodGreat    Mood = "great"
	MoodHappy    Mood = "happy"
	MoodOkay     Mood = "okay"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
)

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	switch m {
	case MoodGreat, MoodHappy, MoodOkay, MoodSad, MoodStressed:
		return true
	}
	return false
}

// Moods lists the valid moods in display order.
func Moods() []Mood {
	return []Mood{MoodGreat, MoodHappy, MoodOkay, MoodSad, MoodStressed}
}

// JournalEntry is a single day's free-text reflection. At most one entry
// exists per day; saving again overwrites content and mood.
type JournalEntry struct {
	Day       string    `json:"day"` // YYYY-MM-DD format
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

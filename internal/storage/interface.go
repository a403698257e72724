package storage

import "github.com/julianstephens/groove/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string) error
	UnarchiveHabit(id string) error
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Completions
	// UpsertCompletion adjusts the counter for (habitID, day) by delta in a
	// single atomic operation. The record is removed when the count reaches
	// zero. Decrementing a missing record fails with ErrNotFound.
	UpsertCompletion(habitID, day string, delta int) (models.Completion, error)
	GetCompletion(habitID, day string) (models.Completion, error)
	GetCompletionsForHabit(habitID, startDay, endDay string) ([]models.Completion, error)
	GetCompletionsForDay(day string) ([]models.Completion, error)
	HasCompletions(habitID string) (bool, error)

	// Journal
	GetJournalEntry(day string) (models.JournalEntry, error)
	GetJournalEntries(startDay, endDay string) ([]models.JournalEntry, error)
	UpsertJournalEntry(models.JournalEntry) error
	DeleteJournalEntry(day string) error

	// Utils
	GetConfigPath() string
}

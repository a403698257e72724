package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/julianstephens/groove/internal/constants"
	apperrors "github.com/julianstephens/groove/internal/errors"
	"github.com/julianstephens/groove/internal/models"
)

type jsonFile struct {
	Version  int                            `json:"version"`
	Settings models.Settings                `json:"settings"`
	Habits   map[string]models.Habit        `json:"habits"`
	// Completions are keyed by "habitID/day".
	Completions map[string]models.Completion   `json:"completions"`
	Journal     map[string]models.JournalEntry `json:"journal"`
}

type JSONStore struct {
	path  string
	store *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &jsonFile{
		Version: 1,
		Settings: models.Settings{
			Timezone: "Local",
			LogDays:  constants.DefaultLogDays,
		},
		Habits:      make(map[string]models.Habit),
		Completions: make(map[string]models.Completion),
		Journal:     make(map[string]models.JournalEntry),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	if s.store != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'groove init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &jsonFile{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Habits == nil {
		s.store.Habits = make(map[string]models.Habit)
	}
	if s.store.Completions == nil {
		s.store.Completions = make(map[string]models.Completion)
	}
	if s.store.Journal == nil {
		s.store.Journal = make(map[string]models.JournalEntry)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded: %w", apperrors.ErrStoreUnavailable)
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddHabit(habit models.Habit) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.Habits[habit.ID] = habit
	return s.save()
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if err := s.loaded(); err != nil {
		return models.Habit{}, err
	}

	habit, ok := s.store.Habits[id]
	if !ok || habit.DeletedAt != nil {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, apperrors.ErrNotFound)
	}

	return habit, nil
}

func (s *JSONStore) GetHabitByName(name string) (models.Habit, error) {
	if err := s.loaded(); err != nil {
		return models.Habit{}, err
	}

	for _, habit := range s.store.Habits {
		if habit.Name == name && habit.DeletedAt == nil {
			return habit, nil
		}
	}

	return models.Habit{}, fmt.Errorf("habit %q: %w", name, apperrors.ErrNotFound)
}

func (s *JSONStore) GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	habits := make([]models.Habit, 0, len(s.store.Habits))
	for _, habit := range s.store.Habits {
		if habit.DeletedAt != nil && !includeDeleted {
			continue
		}
		if habit.ArchivedAt != nil && !includeArchived {
			continue
		}
		habits = append(habits, habit)
	}

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if err := s.loaded(); err != nil {
		return err
	}

	if _, ok := s.store.Habits[habit.ID]; !ok {
		return fmt.Errorf("habit %s: %w", habit.ID, apperrors.ErrNotFound)
	}

	s.store.Habits[habit.ID] = habit
	return s.save()
}

func (s *JSONStore) ArchiveHabit(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	habit, ok := s.store.Habits[id]
	if !ok || habit.DeletedAt != nil || habit.ArchivedAt != nil {
		return fmt.Errorf("habit not found or already archived/deleted: %w", apperrors.ErrNotFound)
	}

	now := time.Now().UTC()
	habit.ArchivedAt = &now
	s.store.Habits[id] = habit
	return s.save()
}

func (s *JSONStore) UnarchiveHabit(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	habit, ok := s.store.Habits[id]
	if !ok || habit.DeletedAt != nil || habit.ArchivedAt == nil {
		return fmt.Errorf("habit not found or not archived: %w", apperrors.ErrNotFound)
	}

	habit.ArchivedAt = nil
	s.store.Habits[id] = habit
	return s.save()
}

func (s *JSONStore) DeleteHabit(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	habit, ok := s.store.Habits[id]
	if !ok || habit.DeletedAt != nil {
		return fmt.Errorf("habit not found or already deleted: %w", apperrors.ErrNotFound)
	}

	now := time.Now().UTC()
	habit.DeletedAt = &now
	s.store.Habits[id] = habit
	return s.save()
}

func (s *JSONStore) RestoreHabit(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	habit, ok := s.store.Habits[id]
	if !ok || habit.DeletedAt == nil {
		return fmt.Errorf("habit not found or not deleted: %w", apperrors.ErrNotFound)
	}

	habit.DeletedAt = nil
	s.store.Habits[id] = habit
	return s.save()
}

func completionKey(habitID, day string) string {
	return habitID + "/" + day
}

func (s *JSONStore) UpsertCompletion(habitID, day string, delta int) (models.Completion, error) {
	if err := s.loaded(); err != nil {
		return models.Completion{}, err
	}

	key := completionKey(habitID, day)
	now := time.Now().UTC()

	c, ok := s.store.Completions[key]
	if !ok {
		if delta < 0 {
			return models.Completion{}, fmt.Errorf("no completion for habit %s on %s: %w", habitID, day, apperrors.ErrNotFound)
		}
		c = models.Completion{HabitID: habitID, Day: day, CreatedAt: now}
	}

	c.Count += delta
	c.UpdatedAt = now
	if c.Count <= 0 {
		delete(s.store.Completions, key)
		if err := s.save(); err != nil {
			return models.Completion{}, err
		}
		return models.Completion{HabitID: habitID, Day: day, Count: 0}, nil
	}

	s.store.Completions[key] = c
	if err := s.save(); err != nil {
		return models.Completion{}, err
	}
	return c, nil
}

func (s *JSONStore) GetCompletion(habitID, day string) (models.Completion, error) {
	if err := s.loaded(); err != nil {
		return models.Completion{}, err
	}

	c, ok := s.store.Completions[completionKey(habitID, day)]
	if !ok {
		return models.Completion{}, fmt.Errorf("no completion for habit %s on %s: %w", habitID, day, apperrors.ErrNotFound)
	}
	return c, nil
}

func (s *JSONStore) GetCompletionsForHabit(habitID, startDay, endDay string) ([]models.Completion, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	var completions []models.Completion
	for _, c := range s.store.Completions {
		if c.HabitID == habitID && c.Day >= startDay && c.Day <= endDay {
			completions = append(completions, c)
		}
	}

	sort.Slice(completions, func(i, j int) bool {
		return completions[i].Day < completions[j].Day
	})

	return completions, nil
}

func (s *JSONStore) GetCompletionsForDay(day string) ([]models.Completion, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	var completions []models.Completion
	for _, c := range s.store.Completions {
		if c.Day == day {
			completions = append(completions, c)
		}
	}

	sort.Slice(completions, func(i, j int) bool {
		return completions[i].HabitID < completions[j].HabitID
	})

	return completions, nil
}

func (s *JSONStore) HasCompletions(habitID string) (bool, error) {
	if err := s.loaded(); err != nil {
		return false, err
	}

	for _, c := range s.store.Completions {
		if c.HabitID == habitID {
			return true, nil
		}
	}
	return false, nil
}

func (s *JSONStore) GetJournalEntry(day string) (models.JournalEntry, error) {
	if err := s.loaded(); err != nil {
		return models.JournalEntry{}, err
	}

	e, ok := s.store.Journal[day]
	if !ok {
		return models.JournalEntry{}, fmt.Errorf("no journal entry for %s: %w", day, apperrors.ErrNotFound)
	}
	return e, nil
}

func (s *JSONStore) GetJournalEntries(startDay, endDay string) ([]models.JournalEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	var entries []models.JournalEntry
	for _, e := range s.store.Journal {
		if e.Day >= startDay && e.Day <= endDay {
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Day < entries[j].Day
	})

	return entries, nil
}

func (s *JSONStore) UpsertJournalEntry(entry models.JournalEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if existing, ok := s.store.Journal[entry.Day]; ok {
		entry.CreatedAt = existing.CreatedAt
	} else if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	s.store.Journal[entry.Day] = entry
	return s.save()
}

func (s *JSONStore) DeleteJournalEntry(day string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	if _, ok := s.store.Journal[day]; !ok {
		return fmt.Errorf("no journal entry for %s: %w", day, apperrors.ErrNotFound)
	}

	delete(s.store.Journal, day)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

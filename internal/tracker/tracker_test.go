package tracker

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/julianstephens/groove/internal/errors"
	"github.com/julianstephens/groove/internal/models"
	"github.com/julianstephens/groove/internal/storage"
)

func setupTracker(t *testing.T) (*Tracker, storage.Provider) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "groove.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return New(store), store
}

func addHabit(t *testing.T, store storage.Provider, id string, target int) models.Habit {
	t.Helper()

	habit := models.Habit{
		ID:          id,
		Name:        "habit-" + id,
		Frequency:   models.FrequencyDaily,
		TargetCount: target,
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	return habit
}

func TestMarkAndUnmark(t *testing.T) {
	tr, store := setupTracker(t)
	addHabit(t, store, "h1", 1)

	c, err := tr.MarkComplete("h1", "2024-01-05")
	if err != nil {
		t.Fatalf("MarkComplete() returned unexpected error: %v", err)
	}
	if c.Count != 1 {
		t.Errorf("Count = %d, want 1", c.Count)
	}

	c, err = tr.MarkComplete("h1", "2024-01-05")
	if err != nil {
		t.Fatalf("MarkComplete() returned unexpected error: %v", err)
	}
	if c.Count != 2 {
		t.Errorf("Count = %d, want 2", c.Count)
	}

	c, err = tr.UnmarkComplete("h1", "2024-01-05")
	if err != nil {
		t.Fatalf("UnmarkComplete() returned unexpected error: %v", err)
	}
	if c.Count != 1 {
		t.Errorf("Count = %d, want 1", c.Count)
	}
}

func TestUnmarkMissingDay(t *testing.T) {
	tr, store := setupTracker(t)
	addHabit(t, store, "h1", 1)

	_, err := tr.UnmarkComplete("h1", "2024-01-05")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("UnmarkComplete() error = %v, want ErrNotFound", err)
	}
}

func TestCountMissingDayIsZero(t *testing.T) {
	tr, store := setupTracker(t)
	addHabit(t, store, "h1", 1)

	count, err := tr.Count("h1", "2024-01-05")
	if err != nil {
		t.Fatalf("Count() returned unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("Count = %d, want 0", count)
	}
}

func TestIsSatisfiedHonorsTarget(t *testing.T) {
	tr, store := setupTracker(t)
	habit := addHabit(t, store, "h1", 3)

	day := "2024-01-05"
	for i := 0; i < 2; i++ {
		if _, err := tr.MarkComplete("h1", day); err != nil {
			t.Fatalf("MarkComplete() returned unexpected error: %v", err)
		}
	}

	satisfied, err := tr.IsSatisfied(habit, day)
	if err != nil {
		t.Fatalf("IsSatisfied() returned unexpected error: %v", err)
	}
	if satisfied {
		t.Error("IsSatisfied() = true with 2 of 3 completions")
	}

	if _, err := tr.MarkComplete("h1", day); err != nil {
		t.Fatalf("MarkComplete() returned unexpected error: %v", err)
	}

	satisfied, err = tr.IsSatisfied(habit, day)
	if err != nil {
		t.Fatalf("IsSatisfied() returned unexpected error: %v", err)
	}
	if !satisfied {
		t.Error("IsSatisfied() = false with target met")
	}
}

func TestCompletionsInRange(t *testing.T) {
	tr, store := setupTracker(t)
	habit := addHabit(t, store, "h1", 1)

	for _, day := range []string{"2024-01-02", "2024-01-04", "2024-01-10"} {
		if _, err := tr.MarkComplete("h1", day); err != nil {
			t.Fatalf("MarkComplete() returned unexpected error: %v", err)
		}
	}

	set, err := tr.CompletionsInRange("h1", "2024-01-01", "2024-01-05")
	if err != nil {
		t.Fatalf("CompletionsInRange() returned unexpected error: %v", err)
	}
	if len(set) != 2 {
		t.Errorf("got %d completions, want 2", len(set))
	}
	if !set.Satisfied(habit, "2024-01-02") {
		t.Error("Satisfied(2024-01-02) = false, want true")
	}
	if set.Satisfied(habit, "2024-01-03") {
		t.Error("Satisfied(2024-01-03) = true, want false")
	}
}

func TestStoreBackedSource(t *testing.T) {
	tr, store := setupTracker(t)
	addHabit(t, store, "h1", 1)

	src := tr.Source()
	has, err := src.HasAny("h1")
	if err != nil {
		t.Fatalf("HasAny() returned unexpected error: %v", err)
	}
	if has {
		t.Error("HasAny() = true before any completion")
	}

	if _, err := tr.MarkComplete("h1", "2024-01-05"); err != nil {
		t.Fatalf("MarkComplete() returned unexpected error: %v", err)
	}

	has, err = src.HasAny("h1")
	if err != nil {
		t.Fatalf("HasAny() returned unexpected error: %v", err)
	}
	if !has {
		t.Error("HasAny() = false after completion")
	}
}

package schedule

import (
	"testing"
	"time"

	"github.com/julianstephens/groove/internal/dateutil"
	apperrors "github.com/julianstephens/groove/internal/errors"
	"github.com/julianstephens/groove/internal/models"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := dateutil.ParseDay(s)
	if err != nil {
		t.Fatalf("ParseDay(%q) failed: %v", s, err)
	}
	return day
}

func newHabit(freq models.Frequency, created string) models.Habit {
	c, _ := dateutil.ParseDay(created)
	return models.Habit{
		ID:        "habit-1",
		Name:      "Test Habit",
		Frequency: freq,
		CreatedAt: c,
	}
}

func TestIsDue_Daily(t *testing.T) {
	eval := NewEvaluator(CompletionSet{})
	habit := newHabit(models.FrequencyDaily, "2024-01-10")

	for _, day := range []string{"2024-01-10", "2024-01-11", "2024-06-30", "2025-01-01"} {
		due, err := eval.IsDue(habit, mustDay(t, day))
		if err != nil {
			t.Fatalf("IsDue(%s) failed: %v", day, err)
		}
		if !due {
			t.Errorf("daily habit not due on %s", day)
		}
	}

	due, err := eval.IsDue(habit, mustDay(t, "2024-01-09"))
	if err != nil {
		t.Fatalf("IsDue failed: %v", err)
	}
	if due {
		t.Error("daily habit due before creation date")
	}
}

func TestIsDue_InactiveHabit(t *testing.T) {
	eval := NewEvaluator(CompletionSet{})
	habit := newHabit(models.FrequencyDaily, "2024-01-01")
	archived := time.Now()
	habit.ArchivedAt = &archived

	due, err := eval.IsDue(habit, mustDay(t, "2024-02-01"))
	if err != nil {
		t.Fatalf("IsDue failed: %v", err)
	}
	if due {
		t.Error("archived habit should never be due")
	}
}

func TestIsDue_WeeklyAnchor(t *testing.T) {
	eval := NewEvaluator(CompletionSet{})
	// 2024-01-01 is a Monday
	habit := newHabit(models.FrequencyWeekly, "2024-01-01")

	wantDue := map[string]bool{
		"2024-01-01": true,
		"2024-01-08": true,
		"2024-01-15": true,
		"2024-01-22": true,
		"2024-01-29": true,
		"2024-01-02": false,
		"2024-01-07": false,
		"2024-01-14": false, // a Sunday
	}

	for day, want := range wantDue {
		due, err := eval.IsDue(habit, mustDay(t, day))
		if err != nil {
			t.Fatalf("IsDue(%s) failed: %v", day, err)
		}
		if due != want {
			t.Errorf("weekly habit due on %s = %v, want %v", day, due, want)
		}
	}
}

func TestDueDatesInRange_WeeklyJanuary(t *testing.T) {
	eval := NewEvaluator(CompletionSet{})
	habit := newHabit(models.FrequencyWeekly, "2024-01-01")

	days, err := eval.DueDatesInRange(habit, mustDay(t, "2024-01-01"), mustDay(t, "2024-01-31")).Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	want := []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29"}
	if len(days) != len(want) {
		t.Fatalf("got %d due dates, want %d", len(days), len(want))
	}
	for i, day := range days {
		if got := dateutil.FormatDay(day); got != want[i] {
			t.Errorf("due date %d = %s, want %s", i, got, want[i])
		}
	}
}

func TestIsDue_MonthlyClampsShortMonths(t *testing.T) {
	eval := NewEvaluator(CompletionSet{})
	habit := newHabit(models.FrequencyMonthly, "2024-01-31")

	wantDue := map[string]bool{
		"2024-01-31": true,
		"2024-02-29": true, // leap February clamps 31 -> 29
		"2024-02-28": false,
		"2024-03-31": true,
		"2024-04-30": true, // April clamps 31 -> 30
		"2024-04-29": false,
		"2025-02-28": true, // non-leap February clamps 31 -> 28
	}

	for day, want := range wantDue {
		due, err := eval.IsDue(habit, mustDay(t, day))
		if err != nil {
			t.Fatalf("IsDue(%s) failed: %v", day, err)
		}
		if due != want {
			t.Errorf("monthly habit due on %s = %v, want %v", day, due, want)
		}
	}
}

func TestIsDue_SelectedWeekdays(t *testing.T) {
	eval := NewEvaluator(CompletionSet{})
	habit := newHabit(models.FrequencyWeekdays, "2024-01-01")
	habit.SelectedDays = []time.Weekday{time.Monday, time.Wednesday, time.Friday}

	// Span two full weeks.
	start := mustDay(t, "2024-01-01")
	for i := 0; i < 14; i++ {
		day := dateutil.AddDays(start, i)
		due, err := eval.IsDue(habit, day)
		if err != nil {
			t.Fatalf("IsDue(%s) failed: %v", dateutil.FormatDay(day), err)
		}
		wd := day.Weekday()
		want := wd == time.Monday || wd == time.Wednesday || wd == time.Friday
		if due != want {
			t.Errorf("weekdays habit due on %s (%s) = %v, want %v", dateutil.FormatDay(day), wd, due, want)
		}
	}
}

func TestIsDue_WeekdaysWithoutSelectionFails(t *testing.T) {
	eval := NewEvaluator(CompletionSet{})
	habit := newHabit(models.FrequencyWeekdays, "2024-01-01")

	_, err := eval.IsDue(habit, mustDay(t, "2024-01-02"))
	if err == nil {
		t.Fatal("expected error for weekdays habit with no selected days")
	}
	if !apperrors.Is(err, apperrors.ErrInvalidHabitState) {
		t.Errorf("error = %v, want ErrInvalidHabitState", err)
	}
}

func TestIsDue_SpecificDate(t *testing.T) {
	eval := NewEvaluator(CompletionSet{})
	habit := newHabit(models.FrequencySpecificDate, "2024-01-01")
	habit.SpecificDate = "2024-03-15"

	due, err := eval.IsDue(habit, mustDay(t, "2024-03-15"))
	if err != nil {
		t.Fatalf("IsDue failed: %v", err)
	}
	if !due {
		t.Error("specific-date habit not due on its date")
	}

	for _, day := range []string{"2024-03-14", "2024-03-16", "2025-03-15"} {
		due, err := eval.IsDue(habit, mustDay(t, day))
		if err != nil {
			t.Fatalf("IsDue(%s) failed: %v", day, err)
		}
		if due {
			t.Errorf("specific-date habit due on %s", day)
		}
	}
}

func TestIsDue_SpecificDateMalformedFails(t *testing.T) {
	eval := NewEvaluator(CompletionSet{})
	habit := newHabit(models.FrequencySpecificDate, "2024-01-01")
	habit.SpecificDate = "tomorrow"

	_, err := eval.IsDue(habit, mustDay(t, "2024-03-15"))
	if !apperrors.Is(err, apperrors.ErrInvalidHabitState) {
		t.Errorf("error = %v, want ErrInvalidHabitState", err)
	}
}

func TestIsDue_OnceUntilFirstCompletion(t *testing.T) {
	habit := newHabit(models.FrequencyOnce, "2024-01-01")

	// No completions yet: due on every queried date.
	eval := NewEvaluator(CompletionSet{})
	for _, day := range []string{"2024-01-01", "2024-02-14", "2024-12-31"} {
		due, err := eval.IsDue(habit, mustDay(t, day))
		if err != nil {
			t.Fatalf("IsDue(%s) failed: %v", day, err)
		}
		if !due {
			t.Errorf("once habit with no completions not due on %s", day)
		}
	}

	// After one completion: due on no date.
	done := CompletionSet{"2024-02-14": {HabitID: habit.ID, Day: "2024-02-14", Count: 1}}
	eval = NewEvaluator(done)
	for _, day := range []string{"2024-02-14", "2024-02-15", "2024-12-31"} {
		due, err := eval.IsDue(habit, mustDay(t, day))
		if err != nil {
			t.Fatalf("IsDue(%s) failed: %v", day, err)
		}
		if due {
			t.Errorf("completed once habit still due on %s", day)
		}
	}
}

func TestIsDue_UnknownFrequencyFails(t *testing.T) {
	eval := NewEvaluator(CompletionSet{})
	habit := newHabit("fortnightly", "2024-01-01")

	_, err := eval.IsDue(habit, mustDay(t, "2024-01-02"))
	if !apperrors.Is(err, apperrors.ErrInvalidHabitState) {
		t.Errorf("error = %v, want ErrInvalidHabitState", err)
	}
}

func TestDueRange_Restartable(t *testing.T) {
	eval := NewEvaluator(CompletionSet{})
	habit := newHabit(models.FrequencyDaily, "2024-01-01")

	r := eval.DueDatesInRange(habit, mustDay(t, "2024-01-01"), mustDay(t, "2024-01-03"))
	first, err := r.Collect()
	if err != nil {
		t.Fatalf("first Collect failed: %v", err)
	}
	r.Reset()
	second, err := r.Collect()
	if err != nil {
		t.Fatalf("second Collect failed: %v", err)
	}
	if len(first) != 3 || len(second) != 3 {
		t.Errorf("collect lengths = %d, %d, want 3, 3", len(first), len(second))
	}
}

func TestDueRange_PropagatesEvaluationError(t *testing.T) {
	eval := NewEvaluator(CompletionSet{})
	habit := newHabit(models.FrequencyWeekdays, "2024-01-01") // no selected days

	r := eval.DueDatesInRange(habit, mustDay(t, "2024-01-01"), mustDay(t, "2024-01-07"))
	if _, ok := r.Next(); ok {
		t.Fatal("Next succeeded for malformed habit")
	}
	if !apperrors.Is(r.Err(), apperrors.ErrInvalidHabitState) {
		t.Errorf("Err = %v, want ErrInvalidHabitState", r.Err())
	}
}

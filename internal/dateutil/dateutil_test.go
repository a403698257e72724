package dateutil

import (
	"testing"
	"time"

	apperrors "github.com/julianstephens/groove/internal/errors"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{1900, time.February, 28}, // divisible by 100, not 400
		{2000, time.February, 29}, // divisible by 400
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, c := range cases {
		got := DaysInMonth(c.year, c.month)
		if got != c.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	day, err := ParseDay("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if got := FormatDay(day); got != "2024-02-29" {
		t.Errorf("round trip = %q, want %q", got, "2024-02-29")
	}
	if day.Weekday() != time.Thursday {
		t.Errorf("2024-02-29 weekday = %s, want Thursday", day.Weekday())
	}
}

func TestParseDayMalformed(t *testing.T) {
	for _, s := range []string{"", "2024-2-1", "02/29/2024", "2024-13-01", "not-a-date"} {
		_, err := ParseDay(s)
		if err == nil {
			t.Errorf("ParseDay(%q) succeeded, want error", s)
			continue
		}
		if !apperrors.Is(err, apperrors.ErrInvalidDateFormat) {
			t.Errorf("ParseDay(%q) error = %v, want ErrInvalidDateFormat", s, err)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	a, _ := ParseDay("2024-01-01")
	b, _ := ParseDay("2024-03-01")
	if got := DaysBetween(a, b); got != 60 { // Jan 31 + Feb 29
		t.Errorf("DaysBetween = %d, want 60", got)
	}
	if got := DaysBetween(b, a); got != -60 {
		t.Errorf("DaysBetween reversed = %d, want -60", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Errorf("DaysBetween same day = %d, want 0", got)
	}
}

func TestDaysBetweenNormalizesTimeOfDay(t *testing.T) {
	a := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 1 {
		t.Errorf("DaysBetween across midnight = %d, want 1", got)
	}
}

func TestFixedClock(t *testing.T) {
	clock := Fixed(time.Date(2024, 7, 4, 15, 30, 0, 0, time.UTC))
	if got := FormatDay(clock.Now()); got != "2024-07-04" {
		t.Errorf("FormatDay(clock.Now()) = %q, want %q", got, "2024-07-04")
	}
}

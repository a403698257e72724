package dateutil

import (
	"fmt"
	"time"

	"github.com/julianstephens/groove/internal/constants"
	apperrors "github.com/julianstephens/groove/internal/errors"
)

// IsLeapYear reports whether year is a Gregorian leap year: divisible by 4,
// not by 100 unless by 400.
func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

// DaysInMonth returns the number of days in the given month, honoring the
// leap-year rule for February.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July,
		time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// DayOf truncates t to its calendar date at midnight UTC. All engine
// arithmetic runs on these normalized values so day deltas are exact
// multiples of 24h regardless of the wall clock the value came from.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// AddDays returns the date n calendar days after t (negative n walks back).
func AddDays(t time.Time, n int) time.Time {
	return DayOf(t).AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from a to b. Negative when
// b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DayOf(b).Sub(DayOf(a)).Hours() / 24)
}

// FormatDay renders t as a YYYY-MM-DD string.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a YYYY-MM-DD string into a date at midnight UTC. Malformed
// input fails with ErrInvalidDateFormat.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", apperrors.ErrInvalidDateFormat, s)
	}
	return t, nil
}

// Clock supplies the current time. The engine never reads the system clock
// directly so "today" is injectable in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the local system time.
func SystemClock() Clock { return systemClock{} }

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

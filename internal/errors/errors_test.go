package errors

import (
	"fmt"
	"testing"
)

func TestSentinelWrapping(t *testing.T) {
	wrapped := fmt.Errorf("habit %q: %w", "Read", ErrNotFound)
	if !Is(wrapped, ErrNotFound) {
		t.Errorf("Is() = false for wrapped ErrNotFound")
	}
	if Is(wrapped, ErrStoreUnavailable) {
		t.Errorf("Is() matched the wrong sentinel")
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	got := Format(fmt.Errorf("day %q: %w", "2024-13-01", ErrInvalidDateFormat))
	want := `Error: day "2024-13-01": invalid date format`
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

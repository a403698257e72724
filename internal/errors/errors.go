package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/groove/internal/logger"
)

// Error kinds the engine fails with. Callers match them with errors.Is; all
// deeper detail is carried by the wrapping message.
var (
	// ErrInvalidHabitState marks a malformed frequency configuration, such as
	// a weekdays habit with no selected days.
	ErrInvalidHabitState = stderrors.New("invalid habit state")

	// ErrInvalidDateFormat marks an unparsable date string.
	ErrInvalidDateFormat = stderrors.New("invalid date format")

	// ErrNotFound marks an operation referencing an unknown habit, completion
	// or journal entry.
	ErrNotFound = stderrors.New("not found")

	// ErrStoreUnavailable marks a persistence failure. Transport detail is
	// opaque to the engine and propagates inside the wrap.
	ErrStoreUnavailable = stderrors.New("store unavailable")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1. A nil error is
// a no-op so it can wrap a command's return directly.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

package schedule

import (
	"errors"
	"fmt"
)

// Malformed-input errors. Violating the study window or a blocked
// interval is not an error; those are ordinary rejection reasons in the
// validation report.
var (
	// ErrParse marks a clock string that fails the HH:MM format check.
	ErrParse = errors.New("parse error")
	// ErrInvalidSpan marks a session whose computed span leaves the
	// single-day boundary or has a non-positive duration.
	ErrInvalidSpan = errors.New("invalid span")
)

func errNonPositiveDuration(d int) error {
	return fmt.Errorf("%w: duration %d must be positive", ErrInvalidSpan, d)
}

func errCrossesMidnight(start TimeOfDay, d int) error {
	return fmt.Errorf("%w: session at %s for %d minutes crosses midnight", ErrInvalidSpan, start.Clock(), d)
}

// ScheduleError carries a stable code alongside a human-readable message
// for the HTTP layer to surface.
type ScheduleError struct {
	Code    string
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewScheduleError(code, msg string) error {
	return &ScheduleError{Code: code, Message: msg}
}

package kernel

import (
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
)

const timeOfDayLayout = "15:04"

// ErrTimeOfDayIsNotConstructed is returned when validating a zero-value
// TimeOfDay.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError(
	"TimeOfDay must be created via NewTimeOfDay or TimeOfDayFromClock",
)

// TimeOfDay is a wall-clock time value in 24-hour "HH:mm" form, without a
// date or time zone. Because the string is zero-padded, lexicographic
// comparison of two TimeOfDay values matches chronological comparison, which
// is what shift-window checks rely on.
type TimeOfDay struct {
	value string
}

// NewTimeOfDay parses a "HH:mm" string into a TimeOfDay.
func NewTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
	}
	// Re-format to guarantee zero padding regardless of the input spelling.
	return TimeOfDay{value: parsed.Format(timeOfDayLayout)}, nil
}

// TimeOfDayFromClock extracts the wall-clock component of t.
func TimeOfDayFromClock(t time.Time) TimeOfDay {
	return TimeOfDay{value: t.Format(timeOfDayLayout)}
}

// String returns the "HH:mm" representation.
func (t TimeOfDay) String() string {
	return t.value
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.value < other.value
}

// After reports whether t is strictly later in the day than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.value > other.value
}

// IsEqual reports whether two times of day are the same minute.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.value == other.value
}

// Validate returns ErrTimeOfDayIsNotConstructed for the zero value.
func (t TimeOfDay) Validate() error {
	if t.value == "" {
		return ErrTimeOfDayIsNotConstructed
	}
	return nil
}

// MustNewTimeOfDay is a test helper that panics on invalid input.
func MustNewTimeOfDay(s string) TimeOfDay {
	t, err := NewTimeOfDay(s)
	if err != nil {
		panic(fmt.Sprintf("invalid time of day %q: %v", s, err))
	}
	return t
}

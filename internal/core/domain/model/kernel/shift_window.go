package kernel

import (
	"errors"

	"dispatch/internal/pkg/errs"
)

// ErrShiftWindowIsNotConstructed is returned when validating a zero-value
// ShiftWindow.
var ErrShiftWindowIsNotConstructed = errors.New("ShiftWindow must be created via NewShiftWindow")

// ShiftWindow is a partner's daily working window. A window whose start is
// earlier than its end covers a single day; a window whose start is at or
// after its end wraps midnight (an overnight shift such as 22:00-06:00).
type ShiftWindow struct {
	start TimeOfDay
	end   TimeOfDay
}

// NewShiftWindow creates a ShiftWindow from validated start and end times.
func NewShiftWindow(start, end TimeOfDay) (ShiftWindow, error) {
	if err := start.Validate(); err != nil {
		return ShiftWindow{}, errs.NewValueIsInvalidErrorWithCause("shift start", err)
	}
	if err := end.Validate(); err != nil {
		return ShiftWindow{}, errs.NewValueIsInvalidErrorWithCause("shift end", err)
	}
	return ShiftWindow{start: start, end: end}, nil
}

// Start returns the beginning of the window.
func (w ShiftWindow) Start() TimeOfDay {
	return w.start
}

// End returns the end of the window.
func (w ShiftWindow) End() TimeOfDay {
	return w.end
}

// WrapsMidnight reports whether the window spans across midnight.
func (w ShiftWindow) WrapsMidnight() bool {
	return !w.start.Before(w.end)
}

// Contains reports whether now falls inside the window. Both bounds are
// inclusive. For a wrapping window the check is now >= start OR now <= end.
func (w ShiftWindow) Contains(now TimeOfDay) bool {
	if w.WrapsMidnight() {
		return !now.Before(w.start) || !now.After(w.end)
	}
	return !now.Before(w.start) && !now.After(w.end)
}

// IsEqual reports whether two windows have identical bounds.
func (w ShiftWindow) IsEqual(other ShiftWindow) bool {
	return w.start.IsEqual(other.start) && w.end.IsEqual(other.end)
}

// Validate returns ErrShiftWindowIsNotConstructed for the zero value.
func (w ShiftWindow) Validate() error {
	if w.start.Validate() != nil || w.end.Validate() != nil {
		return ErrShiftWindowIsNotConstructed
	}
	return nil
}

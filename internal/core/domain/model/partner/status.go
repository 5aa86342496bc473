package partner

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status reflects whether a partner is accepting new assignments.
type Status int

const (
	// StatusUnknown represents an invalid or uninitialized status.
	StatusUnknown Status = iota

	// StatusActive means the partner may receive assignments.
	StatusActive

	// StatusInactive means the partner is excluded from matching.
	StatusInactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusActive:   "active",
		StatusInactive: "inactive",
	}
}

// StatusFromString parses the wire representation of a partner status.
func StatusFromString(s string) (Status, error) {
	switch s {
	case "active":
		return StatusActive, nil
	case "inactive":
		return StatusInactive, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid partner status", s),
		)
	}
}

// Validate checks that the value is Active or Inactive.
func (s Status) Validate() error {
	if s != StatusActive && s != StatusInactive {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid partner status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

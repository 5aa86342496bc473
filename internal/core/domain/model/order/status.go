package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order. Transitions are
// monotonic:
//
//	Pending ──> Assigned ──> Picked ──> Delivered
//	                │           │
//	                └───────────┴──> Cancelled
//
// Delivered and Cancelled are terminal; no backward transition exists.
type Status int

const (
	// Unknown represents an invalid or uninitialized status.
	Unknown Status = iota

	// Pending is the initial status of a newly created order, waiting for a
	// delivery partner.
	Pending

	// Assigned indicates the order has been matched to a delivery partner.
	Assigned

	// Picked indicates the partner has collected the order.
	Picked

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal failure state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		Picked:    "picked",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		Picked:    "picked",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks that the value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid order status", s),
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

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateAssign checks that a partner may be assigned from the current
// status. Only Pending orders are assignable; anything later is a conflict.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s),
		)
	}
	return nil
}

// Assign transitions Pending -> Assigned.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return Unknown, err
	}
	return Assigned, nil
}

// Pick transitions Assigned -> Picked.
func (s Status) Pick() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to pick", s),
		)
	}
	return Picked, nil
}

// Deliver transitions Picked -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Picked {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s),
		)
	}
	return Delivered, nil
}

// Cancel transitions Assigned or Picked -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Assigned && s != Picked {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s),
		)
	}
	return Cancelled, nil
}

// ValidateCanHavePartner validates consistency between the status and the
// presence of an assigned partner: a Pending order must not reference a
// partner, and every post-assignment status must.
func (s Status) ValidateCanHavePartner(hasPartner bool) error {
	if hasPartner && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a partner", s),
		)
	}
	if !hasPartner && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no partner", s),
		)
	}
	return nil
}

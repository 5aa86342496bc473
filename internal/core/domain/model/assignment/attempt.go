// Package assignment provides the AssignmentAttempt record: an immutable,
// append-only ledger entry describing one matching decision between an order
// and a delivery partner, successful or not. Metrics and history views are
// derived entirely from this ledger.
package assignment

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Canonical failure reasons written to the ledger.
const (
	// ReasonPartnerNotEligible is recorded when a manually requested partner
	// fails the eligibility check.
	ReasonPartnerNotEligible = "Partner not eligible."
	// ReasonNoEligiblePartner is recorded for batch skips when the dispatcher
	// is configured to record them.
	ReasonNoEligiblePartner = "No eligible partner."
)

// ErrAttemptIsNotConstructed is returned when an AssignmentAttempt was not
// created through a constructor.
var ErrAttemptIsNotConstructed = errors.New(
	"AssignmentAttempt must be created via NewSuccessfulAttempt or NewFailedAttempt",
)

// AttemptStatus is the outcome of one assignment attempt.
type AttemptStatus int

const (
	// AttemptUnknown represents an invalid or uninitialized status.
	AttemptUnknown AttemptStatus = iota

	// AttemptSucceeded means the order was assigned to the partner.
	AttemptSucceeded

	// AttemptFailed means the attempt was rejected; Reason holds why.
	AttemptFailed
)

// AttemptStatusFromString parses the wire representation of an attempt status.
func AttemptStatusFromString(s string) (AttemptStatus, error) {
	switch s {
	case "success":
		return AttemptSucceeded, nil
	case "failed":
		return AttemptFailed, nil
	default:
		return AttemptUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid attempt status", s),
		)
	}
}

// String returns the wire representation. Implements fmt.Stringer.
func (s AttemptStatus) String() string {
	switch s {
	case AttemptSucceeded:
		return "success"
	case AttemptFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Validate checks that the value is a defined outcome.
func (s AttemptStatus) Validate() error {
	if s != AttemptSucceeded && s != AttemptFailed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid attempt status", s),
		)
	}
	return nil
}

// AssignmentAttempt is one ledger entry. Once constructed it is never
// mutated; the type exposes no setters and repositories only append.
//
// partnerID is nil for failed attempts where no partner was involved, such as
// batch sweeps that found no eligible candidate for an order.
type AssignmentAttempt struct {
	id        kernel.UUID
	orderID   kernel.UUID
	partnerID *kernel.UUID
	status    AttemptStatus
	reason    string
	createdAt time.Time

	isConstructed bool
}

// NewSuccessfulAttempt records that orderID was assigned to partnerID.
func NewSuccessfulAttempt(
	id kernel.UUID,
	orderID kernel.UUID,
	partnerID kernel.UUID,
	createdAt time.Time,
) (*AssignmentAttempt, error) {
	return newAttempt(id, orderID, &partnerID, AttemptSucceeded, "", createdAt)
}

// NewFailedAttempt records a rejected attempt. A non-empty reason is
// mandatory so the failure histogram stays meaningful. partnerID may be nil
// when the failure is not tied to a specific partner.
func NewFailedAttempt(
	id kernel.UUID,
	orderID kernel.UUID,
	partnerID *kernel.UUID,
	reason string,
	createdAt time.Time,
) (*AssignmentAttempt, error) {
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	return newAttempt(id, orderID, partnerID, AttemptFailed, reason, createdAt)
}

// RestoreAttempt rehydrates a ledger entry from persistence.
func RestoreAttempt(
	id kernel.UUID,
	orderID kernel.UUID,
	partnerID *kernel.UUID,
	status AttemptStatus,
	reason string,
	createdAt time.Time,
) (*AssignmentAttempt, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return newAttempt(id, orderID, partnerID, status, reason, createdAt)
}

func newAttempt(
	id kernel.UUID,
	orderID kernel.UUID,
	partnerID *kernel.UUID,
	status AttemptStatus,
	reason string,
	createdAt time.Time,
) (*AssignmentAttempt, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if status == AttemptSucceeded && partnerID == nil {
		return nil, errs.NewValueIsRequiredError("partnerId")
	}
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &AssignmentAttempt{
		id:            id,
		orderID:       orderID,
		partnerID:     partnerID,
		status:        status,
		reason:        reason,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the attempt was created through a constructor.
func (a *AssignmentAttempt) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAttemptIsNotConstructed
	}
	return nil
}

// ID returns the attempt's unique identifier.
func (a *AssignmentAttempt) ID() kernel.UUID {
	return a.id
}

// OrderID returns the order this attempt concerned.
func (a *AssignmentAttempt) OrderID() kernel.UUID {
	return a.orderID
}

// PartnerID returns the partner this attempt concerned, or nil when the
// failure was not tied to a specific partner.
func (a *AssignmentAttempt) PartnerID() *kernel.UUID {
	return a.partnerID
}

// Status returns the attempt outcome.
func (a *AssignmentAttempt) Status() AttemptStatus {
	return a.status
}

// Succeeded reports whether the attempt assigned the order.
func (a *AssignmentAttempt) Succeeded() bool {
	return a.status == AttemptSucceeded
}

// Reason returns the failure reason, empty for successful attempts.
func (a *AssignmentAttempt) Reason() string {
	return a.reason
}

// CreatedAt returns when the attempt was recorded.
func (a *AssignmentAttempt) CreatedAt() time.Time {
	return a.createdAt
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand represents a manual assignment request: a dispatcher
// operator asks for a specific partner to take a specific pending order. The
// requested time of day is carried explicitly so eligibility checks are
// reproducible.
//
// Example:
//
//	cmd, err := NewAssignPartnerCommand(orderID, partnerID, kernel.TimeOfDayFromClock(time.Now()))
//	if err != nil {
//	    return err
//	}
//	attempt, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrPartnerNotEligible) {
//	    log.Printf("rejected: %s", attempt.Reason())
//	}
type AssignPartnerCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	partnerID   kernel.UUID
	requestedAt kernel.TimeOfDay

	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a command to assign a specific partner to a
// specific order. requestedAt is the time of day used for the shift check.
func NewAssignPartnerCommand(
	orderID kernel.UUID,
	partnerID kernel.UUID,
	requestedAt kernel.TimeOfDay,
) (AssignPartnerCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		partnerID.Validate(),
		requestedAt.Validate(),
	); err != nil {
		return AssignPartnerCommand{}, err
	}

	return AssignPartnerCommand{
		orderID:     orderID,
		partnerID:   partnerID,
		requestedAt: requestedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPartnerCommandIsNotConstructed if validation fails.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignPartnerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the requested partner.
func (c AssignPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// RequestedAt returns the time of day used for the shift check.
func (c AssignPartnerCommand) RequestedAt() kernel.TimeOfDay {
	return c.requestedAt
}

package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a lifecycle progression request for an
// assigned order: picked, delivered, or cancelled. Pending and assigned are
// not reachable through this command; assignment owns those transitions.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to progress an order's
// lifecycle. statusName accepts "picked", "delivered", or "cancelled".
func NewUpdateOrderStatusCommand(orderID kernel.UUID, statusName string) (UpdateOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	newStatus, err := order.StatusFromString(statusName)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	switch newStatus {
	case order.Picked, order.Delivered, order.Cancelled:
	default:
		return UpdateOrderStatusCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q cannot be set directly", statusName),
		)
	}

	return UpdateOrderStatusCommand{
		orderID:   orderID,
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to progress.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested lifecycle status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler progresses an order through its lifecycle
// and keeps the assigned partner's state in step: delivery decrements the
// partner's load and counts a completion, cancellation decrements the load
// and counts a cancellation. Order and partner are written in one
// transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderPartnerUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order lifecycle
// updates. Requires an OrderPartnerUoWFactory since terminal transitions
// touch the partner aggregate too.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderPartnerUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Invalid transitions surface the domain's transition error unchanged, so
// callers can map them to a conflict response.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	trackedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.NewStatus() {
	case order.Picked:
		err = trackedOrder.MarkPicked()
	case order.Delivered:
		err = trackedOrder.MarkDelivered()
	case order.Cancelled:
		err = trackedOrder.MarkCancelled()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return err
	}

	// Terminal transitions free the partner's slot and update their metrics.
	if cmd.NewStatus() != order.Picked && trackedOrder.Partner() != nil {
		assignedPartner, partnerErr := partnerRepo.Get(ctx, *trackedOrder.Partner())
		if partnerErr != nil {
			return partnerErr
		}

		if cmd.NewStatus() == order.Delivered {
			err = assignedPartner.CompleteOrder()
		} else {
			err = assignedPartner.CancelOrder()
		}
		if err != nil {
			return err
		}

		if err = partnerRepo.Update(ctx, assignedPartner); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

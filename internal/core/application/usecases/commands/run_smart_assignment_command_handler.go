package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// SmartAssignmentResult summarizes one batch sweep.
type SmartAssignmentResult struct {
	// Assigned is the number of orders matched with a partner.
	Assigned int
	// Skipped is the number of pending orders left unmatched.
	Skipped int
}

// RunSmartAssignmentCommandHandler executes the batch assignment sweep.
//
// Pending orders are processed oldest first against a single snapshot of the
// available partner pool. Load changes made earlier in the sweep are visible
// to later orders, so a partner reaching the capacity ceiling mid-sweep stops
// receiving assignments. The whole sweep commits as one transaction.
type RunSmartAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewRunSmartAssignmentCommandHandler creates a handler for batch assignment
// sweeps. Requires a UoWFactory covering orders, partners, and the attempt
// ledger.
func NewRunSmartAssignmentCommandHandler(uowFactory UoWFactory) RunSmartAssignmentCommandHandler {
	return RunSmartAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one sweep and reports how many orders were assigned and
// skipped. A sweep with no pending orders or no available partners is a
// successful no-op.
func (h RunSmartAssignmentCommandHandler) Handle(
	ctx context.Context,
	cmd RunSmartAssignmentCommand,
) (SmartAssignmentResult, error) {
	var result SmartAssignmentResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()
	attemptRepo := uow.AttemptRepository()

	pendingOrders, err := orderRepo.GetAllPending(ctx)
	if err != nil {
		return result, err
	}
	if len(pendingOrders) == 0 {
		return result, uow.Commit(ctx)
	}

	partners, err := partnerRepo.GetAllAvailable(ctx)
	if err != nil {
		return result, err
	}

	dispatcher := services.NewOrderDispatcher()
	touched := make(map[kernel.UUID]bool)

	for _, pendingOrder := range pendingOrders {
		selected, dispatchErr := dispatcher.Dispatch(pendingOrder, partners, cmd.Now())
		if errors.Is(dispatchErr, services.ErrNoEligiblePartner) {
			result.Skipped++
			if cmd.RecordSkips() {
				if err = h.recordSkip(ctx, attemptRepo, pendingOrder.ID()); err != nil {
					return SmartAssignmentResult{}, err
				}
			}
			continue
		}
		if dispatchErr != nil {
			return SmartAssignmentResult{}, dispatchErr
		}

		succeeded, attemptErr := assignment.NewSuccessfulAttempt(
			kernel.NewUUID(),
			pendingOrder.ID(),
			selected.ID(),
			time.Now().UTC(),
		)
		if attemptErr != nil {
			return SmartAssignmentResult{}, attemptErr
		}

		if err = orderRepo.Update(ctx, pendingOrder); err != nil {
			return SmartAssignmentResult{}, err
		}
		if err = attemptRepo.Add(ctx, succeeded); err != nil {
			return SmartAssignmentResult{}, err
		}

		touched[selected.ID()] = true
		result.Assigned++
	}

	// Each partner is written once per sweep so the optimistic version check
	// stays valid for partners that took several orders.
	for _, p := range partners {
		if !touched[p.ID()] {
			continue
		}
		if err = partnerRepo.Update(ctx, p); err != nil {
			return SmartAssignmentResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SmartAssignmentResult{}, err
	}

	return result, nil
}

func (h RunSmartAssignmentCommandHandler) recordSkip(
	ctx context.Context,
	attemptRepo ports.AttemptRepository,
	orderID kernel.UUID,
) error {
	skipped, err := assignment.NewFailedAttempt(
		kernel.NewUUID(),
		orderID,
		nil,
		assignment.ReasonNoEligiblePartner,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	return attemptRepo.Add(ctx, skipped)
}

package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

var (
	// ErrPartnerNotEligible is returned when the requested partner fails the
	// eligibility check. A failed attempt is still written to the ledger.
	ErrPartnerNotEligible = errors.New("partner is not eligible for this order")

	// ErrOrderNotAssignable is returned when the order is no longer pending.
	ErrOrderNotAssignable = errors.New("order is not in pending status")
)

// AssignPartnerCommandHandler orchestrates manual partner assignment.
//
// Every manual attempt leaves a ledger record: eligible requests assign the
// order, increment the partner's load, and append a successful attempt;
// ineligible requests append a failed attempt with the rejection reason and
// leave both aggregates untouched. The failed attempt is committed on its own
// so the ledger survives the rejection.
type AssignPartnerCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignPartnerCommandHandler creates a handler for manual assignment
// operations. Requires a UoWFactory covering orders, partners, and the
// attempt ledger.
func NewAssignPartnerCommandHandler(uowFactory UoWFactory) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual assignment command and returns the ledger
// record it produced.
//
// Returns errs.ObjectNotFoundError when the order or partner does not exist,
// ErrOrderNotAssignable when the order is past pending, and
// ErrPartnerNotEligible (with the failed attempt) when the partner does not
// qualify.
func (h AssignPartnerCommandHandler) Handle(
	ctx context.Context,
	cmd AssignPartnerCommand,
) (*assignment.AssignmentAttempt, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()
	attemptRepo := uow.AttemptRepository()

	pendingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = pendingOrder.ValidateAssign(); err != nil {
		return nil, ErrOrderNotAssignable
	}

	requestedPartner, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return nil, err
	}

	dispatcher := services.NewOrderDispatcher()
	if !dispatcher.IsEligible(requestedPartner, pendingOrder, cmd.RequestedAt()) {
		partnerID := requestedPartner.ID()
		failed, attemptErr := assignment.NewFailedAttempt(
			kernel.NewUUID(),
			pendingOrder.ID(),
			&partnerID,
			assignment.ReasonPartnerNotEligible,
			time.Now().UTC(),
		)
		if attemptErr != nil {
			return nil, attemptErr
		}

		if err = attemptRepo.Add(ctx, failed); err != nil {
			return nil, err
		}
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}

		return failed, ErrPartnerNotEligible
	}

	if err = requestedPartner.TakeOrder(); err != nil {
		return nil, err
	}
	if err = pendingOrder.Assign(requestedPartner.ID()); err != nil {
		return nil, err
	}

	succeeded, err := assignment.NewSuccessfulAttempt(
		kernel.NewUUID(),
		pendingOrder.ID(),
		requestedPartner.ID(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, pendingOrder); err != nil {
		return nil, err
	}
	if err = partnerRepo.Update(ctx, requestedPartner); err != nil {
		return nil, err
	}
	if err = attemptRepo.Add(ctx, succeeded); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return succeeded, nil
}

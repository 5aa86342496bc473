package commands

import (
	"context"

	"dispatch/internal/core/domain/model/partner"
)

// UpdatePartnerCommandHandler applies profile updates to a registered
// partner. Deactivating a partner only removes them from future matching;
// orders already in progress stay with them.
type UpdatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerCommandHandler creates a handler for partner profile
// updates. Requires a PartnerUoWFactory for transactional persistence.
func NewUpdatePartnerCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerCommandHandler {
	return UpdatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner update command.
// Returns errs.ObjectNotFoundError when the partner does not exist.
func (h UpdatePartnerCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerCommand) error {
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

	partnerRepo := uow.PartnerRepository()

	trackedPartner, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = trackedPartner.ChangePhone(cmd.Phone()); err != nil {
		return err
	}
	if err = trackedPartner.ChangeAreas(cmd.Areas()); err != nil {
		return err
	}
	if err = trackedPartner.ChangeShift(cmd.Shift()); err != nil {
		return err
	}

	if cmd.Status() == partner.StatusActive {
		trackedPartner.Activate()
	} else {
		trackedPartner.Deactivate()
	}

	if err = partnerRepo.Update(ctx, trackedPartner); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when another partner already uses the
// submitted email address.
var ErrEmailAlreadyRegistered = errors.New("partner email is already registered")

// RegisterPartnerCommandHandler handles delivery partner registration.
// New partners start active with zero load and empty delivery metrics.
type RegisterPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewRegisterPartnerCommandHandler creates a handler for partner registration.
// Requires a PartnerUoWFactory for transactional persistence.
func NewRegisterPartnerCommandHandler(uowFactory PartnerUoWFactory) RegisterPartnerCommandHandler {
	return RegisterPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner registration command.
// Enforces email uniqueness before creating the aggregate. Returns
// ErrEmailAlreadyRegistered when the email is taken.
func (h *RegisterPartnerCommandHandler) Handle(ctx context.Context, cmd RegisterPartnerCommand) error {
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

	_, err := partnerRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newPartner, err := partner.NewPartner(
		cmd.PartnerID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.Areas(),
		cmd.Shift(),
	)
	if err != nil {
		return err
	}

	if err = partnerRepo.Add(ctx, newPartner); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

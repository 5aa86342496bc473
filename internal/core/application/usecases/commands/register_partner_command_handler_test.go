package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegisterCommand(t *testing.T) commands.RegisterPartnerCommand {
	t.Helper()
	cmd, err := commands.NewRegisterPartnerCommand(
		"Alex Smith", "alex@example.com", "+1-555-0100",
		[]string{"South Zone"}, "09:00", "17:00",
	)
	require.NoError(t, err)
	return cmd
}

func TestRegisterPartnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterCommand(t)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByEmail", ctx, "alex@example.com").Return(nil, errs.ErrObjectNotFound).Once(),
		partnerRepo.On("Add", ctx, mock.MatchedBy(func(p *partner.Partner) bool {
			return p.IsActive() &&
				p.CurrentLoad() == 0 &&
				p.Email() == "alex@example.com" &&
				cmd.PartnerID().IsEqual(p.ID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterPartnerCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterPartnerCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterCommand(t)

	existing := newActivePartner(t, 0, "09:00", "17:00", "South Zone")

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByEmail", ctx, "alex@example.com").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterPartnerCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
	partnerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRegisterPartnerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterPartnerCommand{} // not constructed properly

	factory := new(MockPartnerUoWFactory)
	handler := commands.NewRegisterPartnerCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRegisterPartnerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewRegisterPartnerCommand(t *testing.T) {
	t.Run("overnight shift is accepted", func(t *testing.T) {
		cmd, err := commands.NewRegisterPartnerCommand(
			"Night Owl", "owl@example.com", "+1-555-0199",
			[]string{"South Zone"}, "22:00", "06:00",
		)

		require.NoError(t, err)
		assert.True(t, cmd.Shift().WrapsMidnight())
	})

	t.Run("normalizes area labels", func(t *testing.T) {
		cmd, err := commands.NewRegisterPartnerCommand(
			"Alex Smith", "alex@example.com", "+1-555-0100",
			[]string{"  South  Zone "}, "09:00", "17:00",
		)

		require.NoError(t, err)
		require.Len(t, cmd.Areas(), 1)
		assert.Equal(t, "southzone", cmd.Areas()[0].Key())
	})

	t.Run("requires at least one area", func(t *testing.T) {
		_, err := commands.NewRegisterPartnerCommand(
			"Alex Smith", "alex@example.com", "+1-555-0100",
			nil, "09:00", "17:00",
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects malformed shift bounds", func(t *testing.T) {
		_, err := commands.NewRegisterPartnerCommand(
			"Alex Smith", "alex@example.com", "+1-555-0100",
			[]string{"South Zone"}, "9am", "17:00",
		)

		require.Error(t, err)
	})
}

package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSweepCommand(t *testing.T, recordSkips bool) commands.RunSmartAssignmentCommand {
	t.Helper()
	cmd, err := commands.NewRunSmartAssignmentCommand(kernel.MustNewTimeOfDay("12:00"), recordSkips)
	require.NoError(t, err)
	return cmd
}

func TestRunSmartAssignmentCommandHandler_Handle_CapacityLimitsSweep(t *testing.T) {
	ctx := t.Context()
	cmd := newSweepCommand(t, false)

	// Four pending orders, one partner with room for three.
	pending := []*order.Order{
		newPendingOrder(t, "South Zone"),
		newPendingOrder(t, "South Zone"),
		newPendingOrder(t, "South Zone"),
		newPendingOrder(t, "South Zone"),
	}
	solo := newActivePartner(t, 0, "09:00", "17:00", "South Zone")

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	attemptRepo := new(MockAttemptRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	uow.On("AttemptRepository").Return(attemptRepo).Once()
	orderRepo.On("GetAllPending", ctx).Return(pending, nil).Once()
	partnerRepo.On("GetAllAvailable", ctx).Return([]*partner.Partner{solo}, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Times(3)
	attemptRepo.On("Add", ctx, mock.AnythingOfType("*assignment.AssignmentAttempt")).Return(nil).Times(3)
	partnerRepo.On("Update", ctx, solo).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRunSmartAssignmentCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Assigned)
	assert.Equal(t, 1, result.Skipped)

	// Partner reached the ceiling; the fourth order stayed pending.
	assert.Equal(t, partner.MaxConcurrentOrders, solo.CurrentLoad())
	assert.Equal(t, order.Pending, pending[3].Status())
	for _, o := range pending[:3] {
		assert.Equal(t, order.Assigned, o.Status())
	}

	orderRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	attemptRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRunSmartAssignmentCommandHandler_Handle_PicksLeastLoaded(t *testing.T) {
	ctx := t.Context()
	cmd := newSweepCommand(t, false)

	pending := []*order.Order{newPendingOrder(t, "South Zone")}
	busy := newActivePartner(t, 2, "09:00", "17:00", "South Zone")
	free := newActivePartner(t, 0, "09:00", "17:00", "South Zone")

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	attemptRepo := new(MockAttemptRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	uow.On("AttemptRepository").Return(attemptRepo).Once()
	orderRepo.On("GetAllPending", ctx).Return(pending, nil).Once()
	partnerRepo.On("GetAllAvailable", ctx).Return([]*partner.Partner{busy, free}, nil).Once()
	orderRepo.On("Update", ctx, pending[0]).Return(nil).Once()
	attemptRepo.On("Add", ctx, mock.AnythingOfType("*assignment.AssignmentAttempt")).Return(nil).Once()
	partnerRepo.On("Update", ctx, free).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRunSmartAssignmentCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Assigned)
	assert.Equal(t, 1, free.CurrentLoad())
	assert.Equal(t, 2, busy.CurrentLoad())
	require.NotNil(t, pending[0].Partner())
	assert.True(t, free.ID().IsEqual(*pending[0].Partner()))

	partnerRepo.AssertExpectations(t)
}

func TestRunSmartAssignmentCommandHandler_Handle_NoPendingOrdersIsNoOp(t *testing.T) {
	ctx := t.Context()
	cmd := newSweepCommand(t, false)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	attemptRepo := new(MockAttemptRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		uow.On("AttemptRepository").Return(attemptRepo).Once(),
		orderRepo.On("GetAllPending", ctx).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRunSmartAssignmentCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.SmartAssignmentResult{}, result)
	partnerRepo.AssertNotCalled(t, "GetAllAvailable", mock.Anything)
	attemptRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRunSmartAssignmentCommandHandler_Handle_RecordsSkipsWhenEnabled(t *testing.T) {
	ctx := t.Context()
	cmd := newSweepCommand(t, true)

	pending := []*order.Order{newPendingOrder(t, "South Zone")}

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	attemptRepo := new(MockAttemptRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	uow.On("AttemptRepository").Return(attemptRepo).Once()
	orderRepo.On("GetAllPending", ctx).Return(pending, nil).Once()
	partnerRepo.On("GetAllAvailable", ctx).Return([]*partner.Partner{}, nil).Once()
	attemptRepo.On("Add", ctx, mock.MatchedBy(func(a *assignment.AssignmentAttempt) bool {
		return !a.Succeeded() &&
			a.PartnerID() == nil &&
			a.Reason() == assignment.ReasonNoEligiblePartner &&
			pending[0].ID().IsEqual(a.OrderID())
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRunSmartAssignmentCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Assigned)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, order.Pending, pending[0].Status())
	attemptRepo.AssertExpectations(t)
}

func TestRunSmartAssignmentCommandHandler_Handle_SkipsAreSilentByDefault(t *testing.T) {
	ctx := t.Context()
	cmd := newSweepCommand(t, false)

	pending := []*order.Order{newPendingOrder(t, "South Zone")}
	wrongArea := newActivePartner(t, 0, "09:00", "17:00", "North Zone")

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	attemptRepo := new(MockAttemptRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	uow.On("AttemptRepository").Return(attemptRepo).Once()
	orderRepo.On("GetAllPending", ctx).Return(pending, nil).Once()
	partnerRepo.On("GetAllAvailable", ctx).Return([]*partner.Partner{wrongArea}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRunSmartAssignmentCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	attemptRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRunSmartAssignmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RunSmartAssignmentCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewRunSmartAssignmentCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRunSmartAssignmentCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetByEmail(ctx context.Context, email string) (*partner.Partner, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetAllAvailable(ctx context.Context) ([]*partner.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

type MockAttemptRepository struct{ mock.Mock }

func (m *MockAttemptRepository) Add(ctx context.Context, a *assignment.AssignmentAttempt) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface in the package, so a single
// mock type serves all handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

func (m *MockUoW) AttemptRepository() ports.AttemptRepository {
	args := m.Called()
	return args.Get(0).(ports.AttemptRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

type MockOrderPartnerUoWFactory struct{ mock.Mock }

func (m *MockOrderPartnerUoWFactory) Create() commands.OrderPartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderPartnerUoW)
}

func newPendingOrder(t *testing.T, areaLabel string) *order.Order {
	t.Helper()
	area, err := kernel.NewArea(areaLabel)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-20260831-0001",
		order.Customer{Name: "Jane Doe", Phone: "+1-555-0101", Address: "12 Main St"},
		area,
		[]order.Item{{Name: "Margherita", Quantity: 1, Price: 899}},
		kernel.MustNewTimeOfDay("12:30"),
	)
	require.NoError(t, err)
	return o
}

func newActivePartner(t *testing.T, load int, shiftStart, shiftEnd string, areaLabels ...string) *partner.Partner {
	t.Helper()
	areas := make([]kernel.Area, 0, len(areaLabels))
	for _, label := range areaLabels {
		a, err := kernel.NewArea(label)
		require.NoError(t, err)
		areas = append(areas, a)
	}
	shift, err := kernel.NewShiftWindow(
		kernel.MustNewTimeOfDay(shiftStart),
		kernel.MustNewTimeOfDay(shiftEnd),
	)
	require.NoError(t, err)
	p, err := partner.RestorePartner(
		kernel.NewUUID(), "Alex Smith", "alex@example.com", "+1-555-0100",
		partner.StatusActive, load, areas, shift, partner.Metrics{}, 1,
	)
	require.NoError(t, err)
	return p
}

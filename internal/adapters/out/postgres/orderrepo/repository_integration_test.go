package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(orderNumber string) *order.Order {
	area, err := kernel.NewArea("South Zone")
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		orderNumber,
		order.Customer{Name: "Jane Doe", Phone: "+1-555-0101", Address: "12 Main St"},
		area,
		[]order.Item{
			{Name: "Margherita", Quantity: 2, Price: 899},
			{Name: "Lemonade", Quantity: 1, Price: 250},
		},
		kernel.MustNewTimeOfDay("12:30"),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-20260831-0001")

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(testOrder.ID().IsEqual(restored.ID()))
	suite.Equal("ORD-20260831-0001", restored.OrderNumber())
	suite.Equal(order.Pending, restored.Status())
	suite.Equal(testOrder.Customer(), restored.Customer())
	suite.Equal("southzone", restored.Area().Key())
	suite.Equal(testOrder.Items(), restored.Items())
	suite.Equal(int64(2*899+250), restored.TotalAmount())
	suite.Equal("12:30", restored.ScheduledFor().String())
	suite.Nil(restored.Partner())
	suite.Equal(1, restored.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsAssignment() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-20260831-0002")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	partnerID := kernel.NewUUID()
	suite.Require().NoError(loaded.Assign(partnerID))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, restored.Status())
	suite.Require().NotNil(restored.Partner())
	suite.True(partnerID.IsEqual(*restored.Partner()))
	suite.Equal(2, restored.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersionConflicts() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-20260831-0003")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two readers load the same row.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Assign(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Assign(kernel.NewUUID()))
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	// The first writer's assignment is the one that stuck.
	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(first.Partner().IsEqual(*restored.Partner()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPending_OldestFirst() {
	ctx := context.Background()

	oldest := suite.createTestOrder("ORD-20260831-0004")
	suite.Require().NoError(suite.repository.Add(ctx, oldest))
	time.Sleep(10 * time.Millisecond)
	newest := suite.createTestOrder("ORD-20260831-0005")
	suite.Require().NoError(suite.repository.Add(ctx, newest))

	assigned := suite.createTestOrder("ORD-20260831-0006")
	suite.Require().NoError(assigned.Assign(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	pending, err := suite.repository.GetAllPending(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(pending, 2)
	suite.True(oldest.ID().IsEqual(pending[0].ID()))
	suite.True(newest.ID().IsEqual(pending[1].ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

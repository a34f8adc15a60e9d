package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsAggregate() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.True(retrieved.VendorID().IsEqual(testOrder.VendorID()))
	suite.True(retrieved.SupplierID().IsEqual(testOrder.SupplierID()))
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.AgentID())
	suite.InDelta(testOrder.TotalAmount(), retrieved.TotalAmount(), 1e-9)
	suite.Len(retrieved.Items(), 2)
	suite.Equal(testOrder.DeliveryAddress(), retrieved.DeliveryAddress())
	suite.Equal(testOrder.ContactPhone(), retrieved.ContactPhone())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.AdvanceTo(order.Confirmed))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestOrder())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimForAgent_ClaimableOrder_Succeeds() {
	ctx := context.Background()

	testOrder := suite.createTestOrderInStatus(order.ReadyForPickup)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	agentID := kernel.NewUUID()
	claimed, err := suite.repository.ClaimForAgent(ctx, testOrder.ID(), agentID)
	suite.Require().NoError(err)
	suite.True(claimed)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, retrieved.Status())
	suite.Require().NotNil(retrieved.AgentID())
	suite.True(retrieved.AgentID().IsEqual(agentID))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimForAgent_SecondClaim_LosesRace() {
	ctx := context.Background()

	testOrder := suite.createTestOrderInStatus(order.ReadyForPickup)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	firstAgent := kernel.NewUUID()
	claimed, err := suite.repository.ClaimForAgent(ctx, testOrder.ID(), firstAgent)
	suite.Require().NoError(err)
	suite.True(claimed)

	claimed, err = suite.repository.ClaimForAgent(ctx, testOrder.ID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(claimed)

	// The first agent keeps the order.
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.AgentID())
	suite.True(retrieved.AgentID().IsEqual(firstAgent))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaimForAgent_PendingOrder_IsNotClaimable() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	claimed, err := suite.repository.ClaimForAgent(ctx, testOrder.ID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(claimed)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderInStatus(order.Pending)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderInStatus(status order.Status) *order.Order {
	firstItem, err := order.NewItem(kernel.NewUUID(), "Onions", 5, 40)
	suite.Require().NoError(err)
	secondItem, err := order.NewItem(kernel.NewUUID(), "Tomatoes", 3, 30)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{firstItem, secondItem},
		"12 Market Lane", "+91-9876543210", "", nil, "",
	)
	suite.Require().NoError(err)

	if status != order.Pending {
		suite.Require().NoError(testOrder.AdvanceTo(order.Confirmed))
	}
	if status == order.ReadyForPickup {
		suite.Require().NoError(testOrder.AdvanceTo(order.ReadyForPickup))
	}

	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

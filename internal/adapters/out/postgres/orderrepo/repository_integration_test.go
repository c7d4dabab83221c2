package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"freightline/internal/adapters/out/postgres/orderrepo"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence
// behavior.
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
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) buildOrder() *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "ORD-"+kernel.NewUUID().String()[:8],
		kernel.NewUUID(), kernel.NewUUID(), 25, order.TierStandard,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsAndTracks() {
	ctx := context.Background()
	testOrder := suite.buildOrder()
	suite.Require().NoError(testOrder.SetQuote(decimal.NewFromInt(370000), 2))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	stored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Code(), stored.Code())
	suite.Equal(order.Registered, stored.Status())
	suite.Equal(order.TierStandard, stored.ServiceTier())
	suite.True(stored.Fee().Equal(decimal.NewFromInt(370000)))
	suite.Equal(2, stored.EtaDays())
	suite.Nil(stored.CarrierID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusAndCarrierRoundTrip() {
	ctx := context.Background()
	testOrder := suite.buildOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	carrierID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignCarrier(carrierID))
	suite.Require().NoError(testOrder.Start())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	stored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, stored.Status())
	suite.Require().NotNil(stored.CarrierID())
	suite.True(stored.CarrierID().IsEqual(carrierID))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_TerminalStates() {
	ctx := context.Background()

	completed := suite.buildOrder()
	suite.tracker.On("TrackAggregate", completed.ID(), completed)
	suite.Require().NoError(suite.repository.Add(ctx, completed))
	suite.Require().NoError(completed.AssignCarrier(kernel.NewUUID()))
	suite.Require().NoError(completed.Start())
	suite.Require().NoError(completed.Complete())
	suite.Require().NoError(suite.repository.Update(ctx, completed))

	cancelled := suite.buildOrder()
	suite.tracker.On("TrackAggregate", cancelled.ID(), cancelled)
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))
	suite.Require().NoError(cancelled.Cancel())
	suite.Require().NoError(suite.repository.Update(ctx, cancelled))

	storedCompleted, err := suite.repository.Get(ctx, completed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, storedCompleted.Status())

	storedCancelled, err := suite.repository.Get(ctx, cancelled.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, storedCancelled.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	testOrder := suite.buildOrder()

	err := suite.repository.Update(context.Background(), testOrder)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "freightline/internal/adapters/out/postgres"
	"freightline/internal/adapters/out/postgres/carrierrepo"
	"freightline/internal/adapters/out/postgres/facilityrepo"
	"freightline/internal/adapters/out/postgres/orderrepo"
	"freightline/internal/adapters/out/postgres/receiptrepo"
	"freightline/internal/adapters/out/postgres/routerepo"
	"freightline/internal/adapters/out/postgres/shipmentrepo"
	"freightline/internal/adapters/out/postgres/stockrepo"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/domain/model/shipment"
	"freightline/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&facilityrepo.FacilityDTO{},
		&routerepo.EdgeDTO{},
		&carrierrepo.CarrierDTO{},
		&orderrepo.OrderDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.LegDTO{},
		&stockrepo.StockRecordDTO{},
		&stockrepo.StorageSlotDTO{},
		&stockrepo.AuditEntryDTO{},
		&receiptrepo.ReceiptDTO{},
		&receiptrepo.ReceiptLineDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, shipments, shipment_legs CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.FacilityRepository())
	suite.NotNil(uow2.StockRepository())
	suite.NotNil(uow2.ReceiptRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutTransaction() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)

	err = uow.Rollback(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	testOrder, testShipment := suite.buildPlannedPair()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()

	storedOrder, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Code(), storedOrder.Code())

	storedShipment, err := verify.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.Code(), storedShipment.Code())
	suite.Len(storedShipment.Legs(), 2)
	suite.Equal(1, storedShipment.Legs()[0].Sequence())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsAllChanges() {
	ctx := context.Background()
	testOrder, testShipment := suite.buildPlannedPair()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()

	_, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err)

	_, err = verify.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UpdateWithinTransaction() {
	ctx := context.Background()
	testOrder, testShipment := suite.buildPlannedPair()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(setup.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(setup.Commit(ctx))

	firstLeg := testShipment.Legs()[0]
	_, err := testShipment.StartLeg(firstLeg.ID(), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Start())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, testShipment))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()

	storedShipment, err := verify.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, storedShipment.Status())
	suite.Equal(shipment.LegInTransit, storedShipment.Legs()[0].Status())
	suite.NotNil(storedShipment.PickupTime())

	storedOrder, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, storedOrder.Status())
}

// buildPlannedPair creates an order with a matching two-leg shipment.
func (suite *UnitOfWorkIntegrationTestSuite) buildPlannedPair() (*order.Order, *shipment.Shipment) {
	originID := kernel.NewUUID()
	hubID := kernel.NewUUID()
	destinationID := kernel.NewUUID()
	carrierID := kernel.NewUUID()

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "ORD-"+kernel.NewUUID().String()[:8],
		originID, destinationID, 25, order.TierStandard,
	)
	suite.Require().NoError(err)

	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(), "SHP-"+kernel.NewUUID().String()[:8], testOrder.ID(),
	)
	suite.Require().NoError(err)

	firstLeg, err := shipment.NewLeg(
		kernel.NewUUID(), testShipment.ID(), testOrder.ID(),
		originID, &hubID, &carrierID, 1, false, 120, 3,
	)
	suite.Require().NoError(err)

	finalLeg, err := shipment.NewLeg(
		kernel.NewUUID(), testShipment.ID(), testOrder.ID(),
		hubID, nil, &carrierID, 2, true, 80, 2,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(testShipment.AttachLegs([]*shipment.Leg{firstLeg, finalLeg}))
	suite.Require().NoError(testShipment.AssignCarrier(carrierID))
	suite.Require().NoError(testOrder.AssignCarrier(carrierID))

	return testOrder, testShipment
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

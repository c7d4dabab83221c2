package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"freightline/internal/adapters/out/postgres/shipmentrepo"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *shipmentrepo.GormShipmentRepository
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.LegDTO{})
	suite.Require().NoError(err)

	suite.repo = shipmentrepo.NewGormShipmentRepository(db, &mockAggregateTracker{})
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, shipment_legs").Error
	suite.Require().NoError(err)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// buildShipment creates a planned three-leg shipment with a carrier on every
// leg.
func (suite *ShipmentRepositoryIntegrationTestSuite) buildShipment() *shipment.Shipment {
	orderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()

	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(), "SHP-"+kernel.NewUUID().String()[:8], orderID,
	)
	suite.Require().NoError(err)

	facilities := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	legs := make([]*shipment.Leg, 0, 3)
	for i := range 3 {
		var to *kernel.UUID
		isFinal := i == 2
		if !isFinal {
			next := facilities[i+1]
			to = &next
		}

		leg, legErr := shipment.NewLeg(
			kernel.NewUUID(), testShipment.ID(), orderID,
			facilities[i], to, &carrierID, i+1, isFinal, 100, 4,
		)
		suite.Require().NoError(legErr)
		legs = append(legs, leg)
	}

	suite.Require().NoError(testShipment.AttachLegs(legs))
	suite.Require().NoError(testShipment.AssignCarrier(carrierID))

	return testShipment
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsLegsInSequence() {
	ctx := context.Background()
	testShipment := suite.buildShipment()

	err := suite.repo.Add(ctx, testShipment)
	suite.Require().NoError(err)

	stored, err := suite.repo.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)

	suite.Equal(testShipment.Code(), stored.Code())
	suite.Equal(shipment.Pending, stored.Status())
	suite.Require().Len(stored.Legs(), 3)
	for i, leg := range stored.Legs() {
		suite.Equal(i+1, leg.Sequence())
	}
	suite.True(stored.Legs()[2].IsFinal())
	suite.Nil(stored.Legs()[2].ToFacilityID())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_PersistsLegProgress() {
	ctx := context.Background()
	testShipment := suite.buildShipment()
	suite.Require().NoError(suite.repo.Add(ctx, testShipment))

	firstLeg := testShipment.Legs()[0]
	_, err := testShipment.StartLeg(firstLeg.ID(), time.Now())
	suite.Require().NoError(err)
	_, err = testShipment.CompleteLeg(firstLeg.ID(), time.Now(), "")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Update(ctx, testShipment))

	stored, err := suite.repo.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, stored.Status())
	suite.Equal(shipment.LegDelivered, stored.Legs()[0].Status())
	suite.Equal(shipment.LegPending, stored.Legs()[1].Status())
	suite.NotNil(stored.PickupTime())
	suite.NotNil(stored.Legs()[0].DeliveryTime())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_ClearedFailureFieldsPersist() {
	ctx := context.Background()
	testShipment := suite.buildShipment()
	suite.Require().NoError(suite.repo.Add(ctx, testShipment))

	firstLeg := testShipment.Legs()[0]
	_, err := testShipment.StartLeg(firstLeg.ID(), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(testShipment.FailLeg(firstLeg.ID(), "truck impounded"))
	suite.Require().NoError(suite.repo.Update(ctx, testShipment))

	_, err = testShipment.ReassignLeg(firstLeg.ID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Update(ctx, testShipment))

	stored, err := suite.repo.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, stored.Status())
	suite.Empty(stored.Notes())
	suite.Equal(shipment.LegPending, stored.Legs()[0].Status())
	suite.Empty(stored.Legs()[0].FailureReason())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_UnknownID_ReturnsNotFound() {
	testShipment := suite.buildShipment()

	err := suite.repo.Update(context.Background(), testShipment)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}

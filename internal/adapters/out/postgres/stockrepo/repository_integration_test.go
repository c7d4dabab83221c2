package stockrepo_test

import (
	"context"
	"testing"
	"time"

	"freightline/internal/adapters/out/postgres/stockrepo"
	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type StockRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repo       *stockrepo.GormStockRepository
	facilityID kernel.UUID
}

func (suite *StockRepositoryIntegrationTestSuite) SetupSuite() {
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
		&stockrepo.StockRecordDTO{},
		&stockrepo.StorageSlotDTO{},
		&stockrepo.AuditEntryDTO{},
	)
	suite.Require().NoError(err)

	suite.repo = stockrepo.NewGormStockRepository(db)
}

func (suite *StockRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE stock_records, storage_slots, stock_audit_entries").Error
	suite.Require().NoError(err)
	suite.facilityID = kernel.NewUUID()
}

func (suite *StockRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *StockRepositoryIntegrationTestSuite) newRecord(received int) *facility.StockRecord {
	record, err := facility.NewStockRecord(kernel.NewUUID(), suite.facilityID, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(record.ReceiveInbound(received))
	return record
}

func (suite *StockRepositoryIntegrationTestSuite) TestAddRecordAndGetByFacility() {
	ctx := context.Background()

	first := suite.newRecord(10)
	second := suite.newRecord(5)
	suite.Require().NoError(suite.repo.AddRecord(ctx, first))
	suite.Require().NoError(suite.repo.AddRecord(ctx, second))

	otherFacility, err := facility.NewStockRecord(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(otherFacility.ReceiveInbound(3))
	suite.Require().NoError(suite.repo.AddRecord(ctx, otherFacility))

	records, err := suite.repo.GetRecordsByFacility(ctx, suite.facilityID)
	suite.Require().NoError(err)
	suite.Len(records, 2)
	for _, record := range records {
		suite.True(record.FacilityID().IsEqual(suite.facilityID))
	}
}

func (suite *StockRepositoryIntegrationTestSuite) TestUpdateRecord_CountersRoundTrip() {
	ctx := context.Background()

	record := suite.newRecord(10)
	suite.Require().NoError(suite.repo.AddRecord(ctx, record))

	suite.Require().NoError(record.IssueOutbound(10))
	suite.Require().NoError(suite.repo.UpdateRecord(ctx, record))

	records, err := suite.repo.GetRecordsByFacility(ctx, suite.facilityID)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal(10, records[0].Quantity())
	suite.Equal(10, records[0].DeliveredQuantity())
	suite.Equal(0, records[0].RemainingQuantity())
}

func (suite *StockRepositoryIntegrationTestSuite) TestUpdateRecord_UnknownID_ReturnsNotFound() {
	record := suite.newRecord(1)

	err := suite.repo.UpdateRecord(context.Background(), record)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *StockRepositoryIntegrationTestSuite) TestSlots_OccupyAndReleaseRoundTrip() {
	ctx := context.Background()

	slot, err := facility.NewStorageSlot(kernel.NewUUID(), suite.facilityID, "A-01")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.AddSlot(ctx, slot))

	packageID := kernel.NewUUID()
	suite.Require().NoError(slot.Occupy(packageID))
	suite.Require().NoError(suite.repo.UpdateSlot(ctx, slot))

	slots, err := suite.repo.GetSlotsByFacility(ctx, suite.facilityID)
	suite.Require().NoError(err)
	suite.Require().Len(slots, 1)
	suite.Equal(facility.SlotOccupied, slots[0].Status())
	suite.Require().NotNil(slots[0].PackageID())
	suite.True(slots[0].PackageID().IsEqual(packageID))

	slot.Release()
	suite.Require().NoError(suite.repo.UpdateSlot(ctx, slot))

	slots, err = suite.repo.GetSlotsByFacility(ctx, suite.facilityID)
	suite.Require().NoError(err)
	suite.Require().Len(slots, 1)
	suite.Equal(facility.SlotEmpty, slots[0].Status())
	suite.Nil(slots[0].PackageID())
}

func (suite *StockRepositoryIntegrationTestSuite) TestGetSlotsByFacility_OrderedByCode() {
	ctx := context.Background()

	for _, code := range []string{"B-02", "A-01", "C-03"} {
		slot, err := facility.NewStorageSlot(kernel.NewUUID(), suite.facilityID, code)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repo.AddSlot(ctx, slot))
	}

	slots, err := suite.repo.GetSlotsByFacility(ctx, suite.facilityID)
	suite.Require().NoError(err)
	suite.Require().Len(slots, 3)
	suite.Equal("A-01", slots[0].Code())
	suite.Equal("B-02", slots[1].Code())
	suite.Equal("C-03", slots[2].Code())
}

func (suite *StockRepositoryIntegrationTestSuite) TestAddAuditEntry_AppendsRows() {
	ctx := context.Background()

	packageID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	for i, changeType := range []facility.ChangeType{facility.ChangeInbound, facility.ChangeOutbound} {
		entry, err := facility.NewAuditEntry(
			kernel.NewUUID(), suite.facilityID, packageID,
			changeType, i+1, actorID, "RCV-001", time.Now(),
		)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repo.AddAuditEntry(ctx, entry))
	}

	var count int64
	err := suite.db.Model(&stockrepo.AuditEntryDTO{}).
		Where("facility_id = ?", suite.facilityID.Bytes()).
		Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func TestStockRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StockRepositoryIntegrationTestSuite))
}

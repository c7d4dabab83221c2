package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightline/internal/core/application/usecases/commands"
	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"
)

type auditFixture struct {
	facilityRepo *MockFacilityRepository
	stockRepo    *MockStockRepository
	uow          *MockAuditUoW
	factory      *MockAuditUoWFactory
}

func newAuditFixture() *auditFixture {
	f := &auditFixture{
		facilityRepo: new(MockFacilityRepository),
		stockRepo:    new(MockStockRepository),
		uow:          new(MockAuditUoW),
		factory:      new(MockAuditUoWFactory),
	}

	f.uow.On("Begin", mock.Anything).Return(nil)
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.uow.On("FacilityRepository").Return(f.facilityRepo)
	f.uow.On("StockRepository").Return(f.stockRepo)
	f.factory.On("Create").Return(f.uow)

	return f
}

func auditFacility(t *testing.T, code string, currentStock int) *facility.Facility {
	t.Helper()

	stored, err := facility.RestoreFacility(
		kernel.NewUUID(), code, code+" warehouse", "", false, 0, currentStock,
	)
	require.NoError(t, err)
	return stored
}

func auditRecord(t *testing.T, facilityID kernel.UUID, remaining int) *facility.StockRecord {
	t.Helper()

	record, err := facility.RestoreStockRecord(
		kernel.NewUUID(), facilityID, kernel.NewUUID(), remaining, 0, remaining,
	)
	require.NoError(t, err)
	return record
}

func TestAuditStockCommandHandler_Handle_CleanLedger(t *testing.T) {
	ctx := t.Context()
	f := newAuditFixture()

	warehouse := auditFacility(t, "WH-1", 7)
	f.facilityRepo.On("GetAll", mock.Anything).
		Return([]*facility.Facility{warehouse}, nil).Once()
	f.stockRepo.On("GetRecordsByFacility", mock.Anything, warehouse.ID()).
		Return([]*facility.StockRecord{
			auditRecord(t, warehouse.ID(), 3),
			auditRecord(t, warehouse.ID(), 4),
		}, nil).Once()

	handler := commands.NewAuditStockCommandHandler(f.factory)

	drifts, err := handler.Handle(ctx, commands.NewAuditStockCommand())

	require.NoError(t, err)
	assert.Empty(t, drifts)
	f.facilityRepo.AssertExpectations(t)
	f.stockRepo.AssertExpectations(t)
}

func TestAuditStockCommandHandler_Handle_ReportsDrift(t *testing.T) {
	ctx := t.Context()
	f := newAuditFixture()

	clean := auditFacility(t, "WH-1", 5)
	drifted := auditFacility(t, "WH-2", 12)

	f.facilityRepo.On("GetAll", mock.Anything).
		Return([]*facility.Facility{clean, drifted}, nil).Once()
	f.stockRepo.On("GetRecordsByFacility", mock.Anything, clean.ID()).
		Return([]*facility.StockRecord{auditRecord(t, clean.ID(), 5)}, nil).Once()
	f.stockRepo.On("GetRecordsByFacility", mock.Anything, drifted.ID()).
		Return([]*facility.StockRecord{auditRecord(t, drifted.ID(), 9)}, nil).Once()

	handler := commands.NewAuditStockCommandHandler(f.factory)

	drifts, err := handler.Handle(ctx, commands.NewAuditStockCommand())

	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.True(t, drifts[0].FacilityID.IsEqual(drifted.ID()))
	assert.Equal(t, "WH-2", drifts[0].FacilityCode)
	assert.Equal(t, 12, drifts[0].StoredStock)
	assert.Equal(t, 9, drifts[0].ComputedStock)
}

func TestAuditStockCommandHandler_Handle_EmptyFacilityWithStoredStockDrifts(t *testing.T) {
	ctx := t.Context()
	f := newAuditFixture()

	drifted := auditFacility(t, "WH-3", 2)
	f.facilityRepo.On("GetAll", mock.Anything).
		Return([]*facility.Facility{drifted}, nil).Once()
	f.stockRepo.On("GetRecordsByFacility", mock.Anything, drifted.ID()).
		Return([]*facility.StockRecord{}, nil).Once()

	handler := commands.NewAuditStockCommandHandler(f.factory)

	drifts, err := handler.Handle(ctx, commands.NewAuditStockCommand())

	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, 0, drifts[0].ComputedStock)
}

func TestAuditStockCommandHandler_Handle_UnconstructedCommandRejects(t *testing.T) {
	f := newAuditFixture()
	handler := commands.NewAuditStockCommandHandler(f.factory)

	_, err := handler.Handle(t.Context(), commands.AuditStockCommand{})

	require.ErrorIs(t, err, commands.ErrAuditStockCommandIsNotConstructed)
}

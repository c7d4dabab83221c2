package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightline/internal/core/application/usecases/commands"
	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"
)

type slotFixture struct {
	facilityRepo *MockFacilityRepository
	stockRepo    *MockStockRepository
	uow          *MockSlotUoW
	factory      *MockSlotUoWFactory
}

func newSlotFixture() *slotFixture {
	fx := &slotFixture{
		facilityRepo: new(MockFacilityRepository),
		stockRepo:    new(MockStockRepository),
		uow:          new(MockSlotUoW),
		factory:      new(MockSlotUoWFactory),
	}

	fx.uow.On("Begin", mock.Anything).Return(nil)
	fx.uow.On("Rollback", mock.Anything).Return(nil)
	fx.uow.On("FacilityRepository").Return(fx.facilityRepo)
	fx.uow.On("StockRepository").Return(fx.stockRepo)
	fx.factory.On("Create").Return(fx.uow)

	return fx
}

func TestCreateStorageSlotCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	fx := newSlotFixture()
	handler := commands.NewCreateStorageSlotCommandHandler(fx.factory)

	warehouse := testFacility(t, "WH-A")
	fx.facilityRepo.On("Get", mock.Anything, warehouse.ID()).Return(warehouse, nil).Once()

	var created *facility.StorageSlot
	fx.stockRepo.On("AddSlot", mock.Anything, mock.AnythingOfType("*facility.StorageSlot")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*facility.StorageSlot)
		}).
		Return(nil).Once()
	fx.uow.On("Commit", mock.Anything).Return(nil).Once()

	slotID := kernel.NewUUID()
	cmd, err := commands.NewCreateStorageSlotCommand(slotID, warehouse.ID(), "A-07")
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.ID().IsEqual(slotID))
	assert.True(t, created.FacilityID().IsEqual(warehouse.ID()))
	assert.Equal(t, "A-07", created.Code())
	assert.Equal(t, facility.SlotEmpty, created.Status())
	fx.uow.AssertExpectations(t)
}

func TestCreateStorageSlotCommandHandler_Handle_UnknownFacility(t *testing.T) {
	ctx := t.Context()
	fx := newSlotFixture()
	handler := commands.NewCreateStorageSlotCommandHandler(fx.factory)

	facilityID := kernel.NewUUID()
	fx.facilityRepo.On("Get", mock.Anything, facilityID).
		Return(nil, errs.NewObjectNotFoundError("facility", facilityID)).Once()

	cmd, err := commands.NewCreateStorageSlotCommand(kernel.NewUUID(), facilityID, "A-07")
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	fx.stockRepo.AssertNotCalled(t, "AddSlot", mock.Anything, mock.Anything)
	fx.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateStorageSlotCommand_CodeRequired(t *testing.T) {
	_, err := commands.NewCreateStorageSlotCommand(kernel.NewUUID(), kernel.NewUUID(), "")

	require.Error(t, err)
	require.ErrorIs(t, err, facility.ErrCodeIsRequired)
}

package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightline/internal/core/application/usecases/commands"
	"freightline/internal/core/domain/model/carrier"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/domain/model/shipment"
	"freightline/internal/core/ports"
)

func TestFailLegCommandHandler_Handle_CascadesFailure(t *testing.T) {
	ctx := t.Context()
	fx := newLegFixture()
	handler := commands.NewFailLegCommandHandler(fx.factory, fx.notifier, fx.locks)

	carrierID := kernel.NewUUID()
	testOrder, testShipment := buildPlannedShipment(t, 2, carrierID)
	firstLeg := testShipment.Legs()[0]

	_, err := testShipment.StartLeg(firstLeg.ID(), time.Now())
	require.NoError(t, err)
	require.NoError(t, testOrder.Start())

	testCarrier, err := carrier.NewCarrier(carrierID, "Northbound Freight")
	require.NoError(t, err)

	fx.shipmentRepo.On("Get", mock.Anything, testShipment.ID()).Return(testShipment, nil).Once()
	fx.orderRepo.On("Get", mock.Anything, testOrder.ID()).Return(testOrder, nil).Once()
	fx.orderRepo.On("Update", mock.Anything, testOrder).Return(nil).Once()
	fx.carrierRepo.On("Get", mock.Anything, carrierID).Return(testCarrier, nil).Once()
	fx.carrierRepo.On("Update", mock.Anything, testCarrier).Return(nil).Once()
	fx.shipmentRepo.On("Update", mock.Anything, testShipment).Return(nil).Once()
	fx.uow.On("Commit", mock.Anything).Return(nil).Once()
	fx.notifier.On("Notify",
		mock.Anything, ports.RoleFacility, firstLeg.FromFacilityID(), mock.Anything, "leg.failed", mock.Anything,
	).Return(nil).Once()
	fx.notifier.On("Notify",
		mock.Anything, ports.RoleFacility, testOrder.DestinationFacilityID(), mock.Anything, "order.failed", mock.Anything,
	).Return(nil).Once()

	cmd, err := commands.NewFailLegCommand(testShipment.ID(), firstLeg.ID(), "vehicle breakdown")
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.LegFailed, firstLeg.Status())
	assert.Equal(t, "vehicle breakdown", firstLeg.FailureReason())
	assert.Equal(t, shipment.Failed, testShipment.Status())
	assert.Equal(t, "vehicle breakdown", testShipment.Notes())
	assert.Equal(t, order.Failed, testOrder.Status())
	assert.Equal(t, 1, testCarrier.TotalDeliveries())
	assert.Equal(t, 1, testCarrier.FailedDeliveries())
	fx.uow.AssertExpectations(t)
	fx.notifier.AssertExpectations(t)
}

func TestFailLegCommandHandler_Handle_PendingLegRejects(t *testing.T) {
	ctx := t.Context()
	fx := newLegFixture()
	handler := commands.NewFailLegCommandHandler(fx.factory, fx.notifier, fx.locks)

	carrierID := kernel.NewUUID()
	_, testShipment := buildPlannedShipment(t, 2, carrierID)
	firstLeg := testShipment.Legs()[0]

	fx.shipmentRepo.On("Get", mock.Anything, testShipment.ID()).Return(testShipment, nil).Once()

	cmd, err := commands.NewFailLegCommand(testShipment.ID(), firstLeg.ID(), "lost")
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, shipment.ErrInvalidTransition)
	fx.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestFailLegCommandHandler_Handle_ReasonRequired(t *testing.T) {
	_, err := commands.NewFailLegCommand(kernel.NewUUID(), kernel.NewUUID(), "")

	require.Error(t, err)
	require.ErrorIs(t, err, shipment.ErrFailureReasonIsRequired)
}

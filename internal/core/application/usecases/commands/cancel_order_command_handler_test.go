package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightline/internal/core/application/usecases/commands"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
)

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	factory.On("Create").Return(uow)

	carrierID := kernel.NewUUID()
	testOrder, _ := buildPlannedShipment(t, 1, carrierID)

	orderRepo.On("Get", mock.Anything, testOrder.ID()).Return(testOrder, nil).Once()
	orderRepo.On("Update", mock.Anything, testOrder).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_CompletedOrderRejects(t *testing.T) {
	ctx := t.Context()

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	factory.On("Create").Return(uow)

	carrierID := kernel.NewUUID()
	testOrder, _ := buildPlannedShipment(t, 1, carrierID)
	require.NoError(t, testOrder.Start())
	require.NoError(t, testOrder.Complete())

	orderRepo.On("Get", mock.Anything, testOrder.ID()).Return(testOrder, nil).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID())
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.Completed, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightline/internal/core/application/usecases/commands"
	"freightline/internal/core/domain/model/carrier"
	"freightline/internal/core/domain/model/kernel"
)

func TestCreateCarrierCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	carrierRepo := new(MockCarrierRepository)
	uow := new(MockCarrierUoW)
	factory := new(MockCarrierUoWFactory)

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("CarrierRepository").Return(carrierRepo)
	factory.On("Create").Return(uow)

	var created *carrier.Carrier
	carrierRepo.On("Add", mock.Anything, mock.AnythingOfType("*carrier.Carrier")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*carrier.Carrier)
		}).
		Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	handler := commands.NewCreateCarrierCommandHandler(factory)

	carrierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarrierCommand(carrierID, "Northbound Freight")
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.ID().IsEqual(carrierID))
	assert.Equal(t, "Northbound Freight", created.Name())
	assert.True(t, created.IsActive())
	assert.Equal(t, 0, created.TotalDeliveries())
	uow.AssertExpectations(t)
}

func TestCreateCarrierCommand_NameRequired(t *testing.T) {
	_, err := commands.NewCreateCarrierCommand(kernel.NewUUID(), "")

	require.Error(t, err)
	require.ErrorIs(t, err, carrier.ErrNameIsRequired)
}

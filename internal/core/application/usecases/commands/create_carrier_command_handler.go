package commands

import (
	"context"

	"freightline/internal/core/domain/model/carrier"
)

// CreateCarrierCommandHandler registers a new transport provider.
type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewCreateCarrierCommandHandler creates a handler for carrier registration.
func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration.
func (h CreateCarrierCommandHandler) Handle(ctx context.Context, command CreateCarrierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newCarrier, err := carrier.NewCarrier(command.CarrierID(), command.Name())
	if err != nil {
		return err
	}

	if err = uow.CarrierRepository().Add(ctx, newCarrier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

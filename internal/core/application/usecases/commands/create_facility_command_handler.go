package commands

import (
	"context"

	"freightline/internal/core/domain/model/facility"
)

// CreateFacilityCommandHandler registers a new facility.
type CreateFacilityCommandHandler struct {
	uowFactory FacilityUoWFactory
}

// NewCreateFacilityCommandHandler creates a handler for facility registration.
func NewCreateFacilityCommandHandler(uowFactory FacilityUoWFactory) CreateFacilityCommandHandler {
	return CreateFacilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration.
func (h CreateFacilityCommandHandler) Handle(ctx context.Context, command CreateFacilityCommand) error {
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

	newFacility, err := facility.NewFacility(
		command.FacilityID(),
		command.Code(),
		command.Name(),
		command.Address(),
		command.IsHub(),
		command.HubPriority(),
	)
	if err != nil {
		return err
	}

	if err = uow.FacilityRepository().Add(ctx, newFacility); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

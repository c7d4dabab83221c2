package commands

import (
	"context"

	"freightline/internal/core/domain/model/routing"
)

// CreateRouteEdgeCommandHandler declares a route edge between two facilities.
// Both endpoints must be registered facilities.
type CreateRouteEdgeCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteEdgeCommandHandler creates a handler for edge declarations.
func NewCreateRouteEdgeCommandHandler(uowFactory RouteUoWFactory) CreateRouteEdgeCommandHandler {
	return CreateRouteEdgeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the declaration.
func (h CreateRouteEdgeCommandHandler) Handle(ctx context.Context, command CreateRouteEdgeCommand) error {
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

	facilityRepo := uow.FacilityRepository()

	if _, err := facilityRepo.Get(ctx, command.FromFacilityID()); err != nil {
		return err
	}
	if _, err := facilityRepo.Get(ctx, command.ToFacilityID()); err != nil {
		return err
	}

	edge, err := routing.NewEdge(
		command.EdgeID(),
		command.FromFacilityID(),
		command.ToFacilityID(),
		command.PreferredCarrierID(),
		command.DistanceKm(),
		command.EstimatedHours(),
	)
	if err != nil {
		return err
	}

	if err = uow.RouteRepository().Add(ctx, edge); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

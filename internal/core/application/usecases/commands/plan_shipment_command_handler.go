package commands

import (
	"context"
	"fmt"

	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/domain/model/routing"
	"freightline/internal/core/domain/model/shipment"
	"freightline/internal/core/domain/services"
	"freightline/internal/core/ports"
)

// PlanShipmentCommandHandler registers an order and plans its shipment.
// Resolves a route over the active facility graph, materializes the leg run,
// and quotes the order through the pricing collaborator. Nothing is persisted
// when no route exists: order and shipment are created together or not at all.
type PlanShipmentCommandHandler struct {
	uowFactory PlanUoWFactory
	pricing    ports.PricingResolver
	notifier   ports.Notifier
}

// NewPlanShipmentCommandHandler creates a handler for shipment planning.
func NewPlanShipmentCommandHandler(
	uowFactory PlanUoWFactory,
	pricing ports.PricingResolver,
	notifier ports.Notifier,
) PlanShipmentCommandHandler {
	return PlanShipmentCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		notifier:   notifier,
	}
}

// Handle processes the planning command.
// Loads origin and destination, resolves the route, registers the order with
// its quote, and persists the shipment with its pending legs. Returns
// services.ErrRouteUnavailable when the graph offers no path.
func (h PlanShipmentCommandHandler) Handle(ctx context.Context, command PlanShipmentCommand) error {
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

	if _, err := facilityRepo.Get(ctx, command.OriginFacilityID()); err != nil {
		return err
	}
	if _, err := facilityRepo.Get(ctx, command.DestinationFacilityID()); err != nil {
		return err
	}

	edges, err := uow.RouteRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	hubs, err := facilityRepo.GetHubs(ctx)
	if err != nil {
		return err
	}

	segments, err := services.NewRouteResolver().Resolve(
		command.OriginFacilityID(), command.DestinationFacilityID(), edges, hubs,
	)
	if err != nil {
		return err
	}
	if len(segments) == 0 {
		return services.ErrRouteUnavailable
	}

	plannedOrder, err := order.NewOrder(
		command.OrderID(),
		command.OrderCode(),
		command.OriginFacilityID(),
		command.DestinationFacilityID(),
		command.WeightKg(),
		command.ServiceTier(),
	)
	if err != nil {
		return err
	}

	fee, etaDays, err := h.pricing.Resolve(
		routing.TotalDistanceKm(segments), command.WeightKg(), command.ServiceTier(),
	)
	if err != nil {
		return err
	}
	if err = plannedOrder.SetQuote(fee, etaDays); err != nil {
		return err
	}

	plannedShipment, err := shipment.NewShipment(command.ShipmentID(), command.ShipmentCode(), plannedOrder.ID())
	if err != nil {
		return err
	}

	if _, err = services.NewLegPlanner().Plan(plannedShipment, plannedOrder, segments); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, plannedOrder); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, plannedShipment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if carrierID := plannedShipment.CarrierID(); carrierID != nil {
		orderID := plannedOrder.ID()
		_ = h.notifier.Notify(ctx, ports.RoleCarrier, *carrierID,
			fmt.Sprintf("shipment %s assigned for pickup", plannedShipment.Code()),
			"shipment.planned", &orderID)
	}

	return nil
}

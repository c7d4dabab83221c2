package commands

import (
	"context"
	"fmt"

	"freightline/internal/core/domain/model/shipment"
	"freightline/internal/core/ports"
	"freightline/internal/pkg/lockset"
)

// StartLegCommandHandler confirms pickup of a shipment's current leg.
// Starting the first leg moves the shipment and its order in progress.
// Transitions on one shipment are serialized through the lock set.
type StartLegCommandHandler struct {
	uowFactory LegUoWFactory
	notifier   ports.Notifier
	locks      *lockset.LockSet
}

// NewStartLegCommandHandler creates a handler for leg pickup confirmations.
func NewStartLegCommandHandler(
	uowFactory LegUoWFactory,
	notifier ports.Notifier,
	locks *lockset.LockSet,
) StartLegCommandHandler {
	return StartLegCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		locks:      locks,
	}
}

// Handle processes the pickup confirmation.
// Applies the transition under the shipment's lock, keeps the order in step
// when the shipment leaves Pending, and notifies the departure facility and,
// when the leg has one, the arrival facility.
func (h StartLegCommandHandler) Handle(ctx context.Context, command StartLegCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock(command.ShipmentID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	trackedShipment, err := shipmentRepo.Get(ctx, command.ShipmentID())
	if err != nil {
		return err
	}

	wasPending := trackedShipment.Status() == shipment.Pending

	leg, err := trackedShipment.StartLeg(command.LegID(), command.OccurredAt())
	if err != nil {
		return err
	}

	if wasPending {
		orderRepo := uow.OrderRepository()

		trackedOrder, orderErr := orderRepo.Get(ctx, trackedShipment.OrderID())
		if orderErr != nil {
			return orderErr
		}
		if orderErr = trackedOrder.Start(); orderErr != nil {
			return orderErr
		}
		if orderErr = orderRepo.Update(ctx, trackedOrder); orderErr != nil {
			return orderErr
		}
	}

	if err = shipmentRepo.Update(ctx, trackedShipment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	orderID := trackedShipment.OrderID()
	_ = h.notifier.Notify(ctx, ports.RoleFacility, leg.FromFacilityID(),
		fmt.Sprintf("leg %d of shipment %s picked up", leg.Sequence(), trackedShipment.Code()),
		"leg.started", &orderID)
	if arrivalID := leg.ToFacilityID(); arrivalID != nil {
		_ = h.notifier.Notify(ctx, ports.RoleFacility, *arrivalID,
			fmt.Sprintf("leg %d of shipment %s departed", leg.Sequence(), trackedShipment.Code()),
			"leg.started", &orderID)
	}

	return nil
}

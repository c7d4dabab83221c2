package commands

import (
	"context"
	"fmt"

	"freightline/internal/core/ports"
	"freightline/internal/pkg/lockset"
)

// FailLegCommandHandler marks the shipment's current leg failed.
// The failure cascades to the shipment and the order, and the miss is charged
// to the shipment's assigned carrier. A later reassignment may reopen the run.
type FailLegCommandHandler struct {
	uowFactory LegUoWFactory
	notifier   ports.Notifier
	locks      *lockset.LockSet
}

// NewFailLegCommandHandler creates a handler for abandoned delivery attempts.
func NewFailLegCommandHandler(
	uowFactory LegUoWFactory,
	notifier ports.Notifier,
	locks *lockset.LockSet,
) FailLegCommandHandler {
	return FailLegCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		locks:      locks,
	}
}

// Handle processes the failed delivery attempt.
// Applies the cascade under the shipment's lock, fails the order, settles the
// carrier's statistics, and notifies the facility holding the stranded goods
// plus the order's destination facility.
func (h FailLegCommandHandler) Handle(ctx context.Context, command FailLegCommand) error {
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

	failedLeg, err := trackedShipment.Leg(command.LegID())
	if err != nil {
		return err
	}

	if err = trackedShipment.FailLeg(command.LegID(), command.Reason()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	trackedOrder, err := orderRepo.Get(ctx, trackedShipment.OrderID())
	if err != nil {
		return err
	}
	if err = trackedOrder.Fail(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return err
	}

	if carrierID := trackedShipment.CarrierID(); carrierID != nil {
		carrierRepo := uow.CarrierRepository()

		trackedCarrier, carrierErr := carrierRepo.Get(ctx, *carrierID)
		if carrierErr != nil {
			return carrierErr
		}
		trackedCarrier.RecordDelivery(false)
		if carrierErr = carrierRepo.Update(ctx, trackedCarrier); carrierErr != nil {
			return carrierErr
		}
	}

	if err = shipmentRepo.Update(ctx, trackedShipment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	orderID := trackedShipment.OrderID()
	_ = h.notifier.Notify(ctx, ports.RoleFacility, failedLeg.FromFacilityID(),
		fmt.Sprintf("leg %d of shipment %s failed: %s", failedLeg.Sequence(), trackedShipment.Code(), command.Reason()),
		"leg.failed", &orderID)
	_ = h.notifier.Notify(ctx, ports.RoleFacility, trackedOrder.DestinationFacilityID(),
		fmt.Sprintf("order %s failed delivery: %s", trackedOrder.Code(), command.Reason()),
		"order.failed", &orderID)

	return nil
}

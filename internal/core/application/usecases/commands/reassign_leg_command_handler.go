package commands

import (
	"context"
	"fmt"

	"freightline/internal/core/domain/model/carrier"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/ports"
	"freightline/internal/pkg/lockset"
)

// ReassignLegCommandHandler hands a leg to a different carrier.
// The leg resets to Pending, a failed shipment comes back in transit, and a
// failed order reopens. Cancelled orders and inactive carriers reject.
type ReassignLegCommandHandler struct {
	uowFactory LegUoWFactory
	notifier   ports.Notifier
	locks      *lockset.LockSet
}

// NewReassignLegCommandHandler creates a handler for leg reassignments.
func NewReassignLegCommandHandler(
	uowFactory LegUoWFactory,
	notifier ports.Notifier,
	locks *lockset.LockSet,
) ReassignLegCommandHandler {
	return ReassignLegCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		locks:      locks,
	}
}

// Handle processes the reassignment.
// Rejects with ErrOrderCancelled when the parent order was withdrawn and with
// carrier.ErrCarrierInactive when the new carrier is out of rotation.
func (h ReassignLegCommandHandler) Handle(ctx context.Context, command ReassignLegCommand) error {
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
	orderRepo := uow.OrderRepository()

	trackedShipment, err := shipmentRepo.Get(ctx, command.ShipmentID())
	if err != nil {
		return err
	}

	trackedOrder, err := orderRepo.Get(ctx, trackedShipment.OrderID())
	if err != nil {
		return err
	}
	if trackedOrder.Status() == order.Cancelled {
		return ErrOrderCancelled
	}

	newCarrier, err := uow.CarrierRepository().Get(ctx, command.NewCarrierID())
	if err != nil {
		return err
	}
	if !newCarrier.IsActive() {
		return carrier.ErrCarrierInactive
	}

	leg, err := trackedShipment.ReassignLeg(command.LegID(), command.NewCarrierID())
	if err != nil {
		return err
	}

	if err = trackedOrder.Reassign(command.NewCarrierID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, trackedShipment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	orderID := trackedShipment.OrderID()
	_ = h.notifier.Notify(ctx, ports.RoleCarrier, command.NewCarrierID(),
		fmt.Sprintf("leg %d of shipment %s reassigned to you", leg.Sequence(), trackedShipment.Code()),
		"leg.reassigned", &orderID)

	return nil
}

package commands

import (
	"context"
	"errors"
	"fmt"

	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/domain/model/shipment"
	"freightline/internal/core/ports"
	"freightline/internal/pkg/lockset"
)

// CompleteLegCommandHandler marks the shipment's current leg delivered.
// An intermediate leg hands off to its successor and notifies the facilities
// on both sides of the hand-off; the final leg uploads the proof of delivery,
// delivers the shipment, completes the order, settles the carrier's
// statistics, and notifies both ends of the order.
type CompleteLegCommandHandler struct {
	uowFactory LegUoWFactory
	notifier   ports.Notifier
	uploader   ports.ProofUploader
	locks      *lockset.LockSet
}

// NewCompleteLegCommandHandler creates a handler for leg delivery confirmations.
func NewCompleteLegCommandHandler(
	uowFactory LegUoWFactory,
	notifier ports.Notifier,
	uploader ports.ProofUploader,
	locks *lockset.LockSet,
) CompleteLegCommandHandler {
	return CompleteLegCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		uploader:   uploader,
		locks:      locks,
	}
}

// Handle processes the delivery confirmation.
// A non-final leg whose successor is missing still persists the flagged
// shipment: the needsAttention mark must survive the failed hand-off, so the
// transaction commits and shipment.ErrNextLegMissing is returned afterwards.
func (h CompleteLegCommandHandler) Handle(ctx context.Context, command CompleteLegCommand) error {
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

	leg, err := trackedShipment.Leg(command.LegID())
	if err != nil {
		return err
	}

	proofReference := ""
	if leg.IsFinal() {
		if len(command.ProofContent()) == 0 {
			return shipment.ErrProofIsRequired
		}
		proofReference, err = h.uploader.Upload(ctx, command.ProofContent(), trackedShipment.Code())
		if err != nil {
			return err
		}
	}

	next, err := trackedShipment.CompleteLeg(command.LegID(), command.OccurredAt(), proofReference)
	if errors.Is(err, shipment.ErrNextLegMissing) {
		if updateErr := shipmentRepo.Update(ctx, trackedShipment); updateErr != nil {
			return updateErr
		}
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return commitErr
		}
		return err
	}
	if err != nil {
		return err
	}

	var deliveredOrder *order.Order
	if next == nil {
		if deliveredOrder, err = h.settleDelivered(ctx, uow, trackedShipment); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Update(ctx, trackedShipment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if next != nil {
		h.notifyHandoff(ctx, trackedShipment, leg, next)
	} else {
		h.notifyDelivered(ctx, trackedShipment, deliveredOrder)
	}

	return nil
}

// notifyHandoff fans out an intermediate completion: the arrival facility
// receives the goods, the next leg's departure facility prepares the outbound,
// and the next carrier gets the pickup call.
func (h CompleteLegCommandHandler) notifyHandoff(
	ctx context.Context,
	trackedShipment *shipment.Shipment,
	completed *shipment.Leg,
	next *shipment.Leg,
) {
	orderID := trackedShipment.OrderID()

	if arrivalID := completed.ToFacilityID(); arrivalID != nil {
		_ = h.notifier.Notify(ctx, ports.RoleFacility, *arrivalID,
			fmt.Sprintf("shipment %s arrived with leg %d", trackedShipment.Code(), completed.Sequence()),
			"leg.arrived", &orderID)
	}

	if next.CarrierID() != nil {
		_ = h.notifier.Notify(ctx, ports.RoleCarrier, *next.CarrierID(),
			fmt.Sprintf("leg %d of shipment %s is ready for pickup", next.Sequence(), trackedShipment.Code()),
			"leg.handoff", &orderID)
	}

	_ = h.notifier.Notify(ctx, ports.RoleFacility, next.FromFacilityID(),
		fmt.Sprintf("shipment %s needs outbound dispatch for leg %d", trackedShipment.Code(), next.Sequence()),
		"outbound.requested", &orderID)
}

// notifyDelivered tells both ends of the order about the final delivery.
func (h CompleteLegCommandHandler) notifyDelivered(
	ctx context.Context,
	trackedShipment *shipment.Shipment,
	deliveredOrder *order.Order,
) {
	orderID := trackedShipment.OrderID()

	_ = h.notifier.Notify(ctx, ports.RoleFacility, deliveredOrder.OriginFacilityID(),
		fmt.Sprintf("order %s was delivered successfully", deliveredOrder.Code()),
		"order.completed", &orderID)
	_ = h.notifier.Notify(ctx, ports.RoleFacility, deliveredOrder.DestinationFacilityID(),
		fmt.Sprintf("order %s was handed to the consignee", deliveredOrder.Code()),
		"order.delivered", &orderID)
}

// settleDelivered completes the order and credits the delivery to the
// shipment's assigned carrier. Runs once per terminal transition; a
// reassignment that reopened the run settles again for its new carrier.
func (h CompleteLegCommandHandler) settleDelivered(
	ctx context.Context,
	uow LegUoW,
	trackedShipment *shipment.Shipment,
) (*order.Order, error) {
	orderRepo := uow.OrderRepository()

	trackedOrder, err := orderRepo.Get(ctx, trackedShipment.OrderID())
	if err != nil {
		return nil, err
	}
	if err = trackedOrder.Complete(); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, trackedOrder); err != nil {
		return nil, err
	}

	carrierID := trackedShipment.CarrierID()
	if carrierID == nil {
		return trackedOrder, nil
	}

	carrierRepo := uow.CarrierRepository()

	trackedCarrier, err := carrierRepo.Get(ctx, *carrierID)
	if err != nil {
		return nil, err
	}
	trackedCarrier.RecordDelivery(true)

	return trackedOrder, carrierRepo.Update(ctx, trackedCarrier)
}

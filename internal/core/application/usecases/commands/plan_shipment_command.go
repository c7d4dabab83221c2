package commands

import (
	"errors"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

var (
	ErrPlanShipmentCommandIsNotConstructed = errors.New(
		"PlanShipmentCommand must be created via NewPlanShipmentCommand constructor",
	)
	ErrOrderCodeIsRequired    = errs.NewValueIsRequiredError("orderCode")
	ErrShipmentCodeIsRequired = errs.NewValueIsRequiredError("shipmentCode")
	ErrWeightIsInvalid        = errors.New("weightKg must be greater than 0")
)

// PlanShipmentCommand represents a request to register a freight order and
// plan its shipment across the facility graph in one transaction.
//
// Example:
//
//	cmd, err := NewPlanShipmentCommand(
//	    kernel.NewUUID(), "ORD-1042", originID, destinationID, 120, order.TierStandard,
//	    kernel.NewUUID(), "SHP-1042",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid planning request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to plan shipment: %w", err)
//	}
type PlanShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID               kernel.UUID
	orderCode             string
	originFacilityID      kernel.UUID
	destinationFacilityID kernel.UUID
	weightKg              float64
	serviceTier           order.Tier
	shipmentID            kernel.UUID
	shipmentCode          string

	guard guard.ConstructorGuard
}

// NewPlanShipmentCommand creates a command to register an order and plan its
// shipment. Validates ids, codes, weight, and the service tier.
func NewPlanShipmentCommand(
	orderID kernel.UUID,
	orderCode string,
	originFacilityID, destinationFacilityID kernel.UUID,
	weightKg float64,
	serviceTier order.Tier,
	shipmentID kernel.UUID,
	shipmentCode string,
) (PlanShipmentCommand, error) {
	planCommand := PlanShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		planCommand.setOrderID(orderID),
		planCommand.setOrderCode(orderCode),
		planCommand.setFacilities(originFacilityID, destinationFacilityID),
		planCommand.setWeightKg(weightKg),
		planCommand.setServiceTier(serviceTier),
		planCommand.setShipmentID(shipmentID),
		planCommand.setShipmentCode(shipmentCode),
	); err != nil {
		return PlanShipmentCommand{}, err
	}

	return planCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PlanShipmentCommand) Validate() error {
	return c.guard.Validate(ErrPlanShipmentCommandIsNotConstructed)
}

// OrderID returns the identifier for the order being registered.
func (c PlanShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderCode returns the order's business code.
func (c PlanShipmentCommand) OrderCode() string {
	return c.orderCode
}

// OriginFacilityID returns the facility the order departs from.
func (c PlanShipmentCommand) OriginFacilityID() kernel.UUID {
	return c.originFacilityID
}

// DestinationFacilityID returns the facility the order is bound for.
func (c PlanShipmentCommand) DestinationFacilityID() kernel.UUID {
	return c.destinationFacilityID
}

// WeightKg returns the order's weight in kilograms.
func (c PlanShipmentCommand) WeightKg() float64 {
	return c.weightKg
}

// ServiceTier returns the purchased service level.
func (c PlanShipmentCommand) ServiceTier() order.Tier {
	return c.serviceTier
}

// ShipmentID returns the identifier for the shipment being planned.
func (c PlanShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ShipmentCode returns the shipment's business code.
func (c PlanShipmentCommand) ShipmentCode() string {
	return c.shipmentCode
}

func (c *PlanShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlanShipmentCommand) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return ErrOrderCodeIsRequired
	}

	c.orderCode = orderCode
	return nil
}

func (c *PlanShipmentCommand) setFacilities(origin, destination kernel.UUID) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	if origin.IsEqual(destination) {
		return order.ErrSameFacility
	}

	c.originFacilityID = origin
	c.destinationFacilityID = destination
	return nil
}

func (c *PlanShipmentCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return ErrWeightIsInvalid
	}

	c.weightKg = weightKg
	return nil
}

func (c *PlanShipmentCommand) setServiceTier(serviceTier order.Tier) error {
	if err := serviceTier.Validate(); err != nil {
		return err
	}

	c.serviceTier = serviceTier
	return nil
}

func (c *PlanShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *PlanShipmentCommand) setShipmentCode(shipmentCode string) error {
	if shipmentCode == "" {
		return ErrShipmentCodeIsRequired
	}

	c.shipmentCode = shipmentCode
	return nil
}

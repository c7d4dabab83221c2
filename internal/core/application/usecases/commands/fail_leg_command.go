package commands

import (
	"errors"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/shipment"
	"freightline/internal/pkg/guard"
)

var ErrFailLegCommandIsNotConstructed = errors.New(
	"FailLegCommand must be created via NewFailLegCommand constructor",
)

// FailLegCommand represents an abandoned delivery attempt on the shipment's
// current leg. The reason is mandatory: it becomes the shipment's notes.
type FailLegCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	legID      kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewFailLegCommand creates a command to fail a leg with a mandatory reason.
func NewFailLegCommand(shipmentID, legID kernel.UUID, reason string) (FailLegCommand, error) {
	failCommand := FailLegCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		failCommand.setShipmentID(shipmentID),
		failCommand.setLegID(legID),
		failCommand.setReason(reason),
	); err != nil {
		return FailLegCommand{}, err
	}

	return failCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c FailLegCommand) Validate() error {
	return c.guard.Validate(ErrFailLegCommandIsNotConstructed)
}

// ShipmentID returns the shipment owning the leg.
func (c FailLegCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// LegID returns the leg being failed.
func (c FailLegCommand) LegID() kernel.UUID {
	return c.legID
}

// Reason returns why the delivery was abandoned.
func (c FailLegCommand) Reason() string {
	return c.reason
}

func (c *FailLegCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *FailLegCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}

	c.legID = legID
	return nil
}

func (c *FailLegCommand) setReason(reason string) error {
	if reason == "" {
		return shipment.ErrFailureReasonIsRequired
	}

	c.reason = reason
	return nil
}

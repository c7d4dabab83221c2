package commands

import (
	"errors"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/guard"
)

var (
	ErrReassignLegCommandIsNotConstructed = errors.New(
		"ReassignLegCommand must be created via NewReassignLegCommand constructor",
	)
	// ErrOrderCancelled rejects reassignment when the parent order was withdrawn.
	ErrOrderCancelled = errors.New("order is cancelled")
)

// ReassignLegCommand represents the administrative override that hands a leg
// to a different carrier, reviving a failed run.
type ReassignLegCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	legID        kernel.UUID
	newCarrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignLegCommand creates a command to reassign a leg to a new carrier.
func NewReassignLegCommand(shipmentID, legID, newCarrierID kernel.UUID) (ReassignLegCommand, error) {
	reassignCommand := ReassignLegCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reassignCommand.setShipmentID(shipmentID),
		reassignCommand.setLegID(legID),
		reassignCommand.setNewCarrierID(newCarrierID),
	); err != nil {
		return ReassignLegCommand{}, err
	}

	return reassignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignLegCommand) Validate() error {
	return c.guard.Validate(ErrReassignLegCommandIsNotConstructed)
}

// ShipmentID returns the shipment owning the leg.
func (c ReassignLegCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// LegID returns the leg being reassigned.
func (c ReassignLegCommand) LegID() kernel.UUID {
	return c.legID
}

// NewCarrierID returns the carrier taking the leg over.
func (c ReassignLegCommand) NewCarrierID() kernel.UUID {
	return c.newCarrierID
}

func (c *ReassignLegCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *ReassignLegCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}

	c.legID = legID
	return nil
}

func (c *ReassignLegCommand) setNewCarrierID(newCarrierID kernel.UUID) error {
	if err := newCarrierID.Validate(); err != nil {
		return err
	}

	c.newCarrierID = newCarrierID
	return nil
}

package commands

import (
	"errors"
	"time"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

var (
	ErrStartLegCommandIsNotConstructed = errors.New(
		"StartLegCommand must be created via NewStartLegCommand constructor",
	)
	// ErrOccurredAtIsRequired rejects leg transitions without an event time.
	ErrOccurredAtIsRequired = errs.NewValueIsRequiredError("occurredAt")
)

// StartLegCommand represents a carrier's pickup confirmation for the
// shipment's current leg.
type StartLegCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	legID      kernel.UUID
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewStartLegCommand creates a command to start a leg. The event time comes
// from the caller so transitions replay deterministically.
func NewStartLegCommand(shipmentID, legID kernel.UUID, occurredAt time.Time) (StartLegCommand, error) {
	startCommand := StartLegCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		startCommand.setShipmentID(shipmentID),
		startCommand.setLegID(legID),
		startCommand.setOccurredAt(occurredAt),
	); err != nil {
		return StartLegCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartLegCommand) Validate() error {
	return c.guard.Validate(ErrStartLegCommandIsNotConstructed)
}

// ShipmentID returns the shipment owning the leg.
func (c StartLegCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// LegID returns the leg being started.
func (c StartLegCommand) LegID() kernel.UUID {
	return c.legID
}

// OccurredAt returns when the pickup happened.
func (c StartLegCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *StartLegCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *StartLegCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}

	c.legID = legID
	return nil
}

func (c *StartLegCommand) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return ErrOccurredAtIsRequired
	}

	c.occurredAt = occurredAt
	return nil
}

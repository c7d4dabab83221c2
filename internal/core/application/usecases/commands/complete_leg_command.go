package commands

import (
	"errors"
	"time"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/guard"
)

var ErrCompleteLegCommandIsNotConstructed = errors.New(
	"CompleteLegCommand must be created via NewCompleteLegCommand constructor",
)

// CompleteLegCommand represents a carrier's delivery confirmation for the
// shipment's current leg. Proof content is mandatory on the final leg and
// optional on intermediate hand-offs.
type CompleteLegCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	legID        kernel.UUID
	occurredAt   time.Time
	proofContent []byte

	guard guard.ConstructorGuard
}

// NewCompleteLegCommand creates a command to complete a leg. proofContent may
// be nil for intermediate legs; the final leg rejects an empty proof when the
// transition is applied.
func NewCompleteLegCommand(
	shipmentID, legID kernel.UUID,
	occurredAt time.Time,
	proofContent []byte,
) (CompleteLegCommand, error) {
	completeCommand := CompleteLegCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setShipmentID(shipmentID),
		completeCommand.setLegID(legID),
		completeCommand.setOccurredAt(occurredAt),
	); err != nil {
		return CompleteLegCommand{}, err
	}

	completeCommand.proofContent = proofContent
	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteLegCommand) Validate() error {
	return c.guard.Validate(ErrCompleteLegCommandIsNotConstructed)
}

// ShipmentID returns the shipment owning the leg.
func (c CompleteLegCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// LegID returns the leg being completed.
func (c CompleteLegCommand) LegID() kernel.UUID {
	return c.legID
}

// OccurredAt returns when the delivery happened.
func (c CompleteLegCommand) OccurredAt() time.Time {
	return c.occurredAt
}

// ProofContent returns the raw proof-of-delivery document, nil when omitted.
func (c CompleteLegCommand) ProofContent() []byte {
	return c.proofContent
}

func (c *CompleteLegCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CompleteLegCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}

	c.legID = legID
	return nil
}

func (c *CompleteLegCommand) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return ErrOccurredAtIsRequired
	}

	c.occurredAt = occurredAt
	return nil
}

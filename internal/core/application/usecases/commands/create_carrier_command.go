package commands

import (
	"errors"

	"freightline/internal/core/domain/model/carrier"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/guard"
)

var ErrCreateCarrierCommandIsNotConstructed = errors.New(
	"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
)

// CreateCarrierCommand represents a request to register a transport provider.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a carrier.
func NewCreateCarrierCommand(carrierID kernel.UUID, name string) (CreateCarrierCommand, error) {
	carrierCommand := CreateCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		carrierCommand.setCarrierID(carrierID),
		carrierCommand.setName(name),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	return carrierCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// CarrierID returns the identifier for the carrier being registered.
func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Name returns the carrier's display name.
func (c CreateCarrierCommand) Name() string {
	return c.name
}

func (c *CreateCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *CreateCarrierCommand) setName(name string) error {
	if name == "" {
		return carrier.ErrNameIsRequired
	}

	c.name = name
	return nil
}

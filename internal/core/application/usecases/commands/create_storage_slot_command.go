package commands

import (
	"errors"

	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/guard"
)

var ErrCreateStorageSlotCommandIsNotConstructed = errors.New(
	"CreateStorageSlotCommand must be created via NewCreateStorageSlotCommand constructor",
)

// CreateStorageSlotCommand represents a request to add an empty storage slot
// to a facility.
type CreateStorageSlotCommand struct { //nolint:recvcheck //using for validation
	slotID     kernel.UUID
	facilityID kernel.UUID
	code       string

	guard guard.ConstructorGuard
}

// NewCreateStorageSlotCommand creates a command to add a storage slot.
func NewCreateStorageSlotCommand(slotID, facilityID kernel.UUID, code string) (CreateStorageSlotCommand, error) {
	slotCommand := CreateStorageSlotCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		slotCommand.setSlotID(slotID),
		slotCommand.setFacilityID(facilityID),
		slotCommand.setCode(code),
	); err != nil {
		return CreateStorageSlotCommand{}, err
	}

	return slotCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStorageSlotCommand) Validate() error {
	return c.guard.Validate(ErrCreateStorageSlotCommandIsNotConstructed)
}

// SlotID returns the identifier for the slot being added.
func (c CreateStorageSlotCommand) SlotID() kernel.UUID {
	return c.slotID
}

// FacilityID returns the facility owning the slot.
func (c CreateStorageSlotCommand) FacilityID() kernel.UUID {
	return c.facilityID
}

// Code returns the slot's human-readable code.
func (c CreateStorageSlotCommand) Code() string {
	return c.code
}

func (c *CreateStorageSlotCommand) setSlotID(slotID kernel.UUID) error {
	if err := slotID.Validate(); err != nil {
		return err
	}

	c.slotID = slotID
	return nil
}

func (c *CreateStorageSlotCommand) setFacilityID(facilityID kernel.UUID) error {
	if err := facilityID.Validate(); err != nil {
		return err
	}

	c.facilityID = facilityID
	return nil
}

func (c *CreateStorageSlotCommand) setCode(code string) error {
	if code == "" {
		return facility.ErrCodeIsRequired
	}

	c.code = code
	return nil
}

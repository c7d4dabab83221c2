package commands

import (
	"errors"

	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

var (
	ErrCreateFacilityCommandIsNotConstructed = errors.New(
		"CreateFacilityCommand must be created via NewCreateFacilityCommand constructor",
	)
	// ErrHubPriorityIsInvalid rejects hub registrations without a usable rank.
	ErrHubPriorityIsInvalid = errs.NewValueIsInvalidError("hubPriority")
)

// CreateFacilityCommand represents a request to register a warehouse or depot.
type CreateFacilityCommand struct { //nolint:recvcheck //using for validation
	facilityID  kernel.UUID
	code        string
	name        string
	address     string
	isHub       bool
	hubPriority int

	guard guard.ConstructorGuard
}

// NewCreateFacilityCommand creates a command to register a facility. Hubs
// need a positive priority rank; the rank of ordinary facilities is ignored.
func NewCreateFacilityCommand(
	facilityID kernel.UUID,
	code, name, address string,
	isHub bool,
	hubPriority int,
) (CreateFacilityCommand, error) {
	facilityCommand := CreateFacilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		facilityCommand.setFacilityID(facilityID),
		facilityCommand.setCode(code),
		facilityCommand.setName(name),
		facilityCommand.setHub(isHub, hubPriority),
	); err != nil {
		return CreateFacilityCommand{}, err
	}

	facilityCommand.address = address
	return facilityCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFacilityCommand) Validate() error {
	return c.guard.Validate(ErrCreateFacilityCommandIsNotConstructed)
}

// FacilityID returns the identifier for the facility being registered.
func (c CreateFacilityCommand) FacilityID() kernel.UUID {
	return c.facilityID
}

// Code returns the short facility code.
func (c CreateFacilityCommand) Code() string {
	return c.code
}

// Name returns the display name of the facility.
func (c CreateFacilityCommand) Name() string {
	return c.name
}

// Address returns the geographic label of the facility.
func (c CreateFacilityCommand) Address() string {
	return c.address
}

// IsHub reports whether the facility serves as a transfer point.
func (c CreateFacilityCommand) IsHub() bool {
	return c.isHub
}

// HubPriority returns the hub's routing tie-break rank.
func (c CreateFacilityCommand) HubPriority() int {
	return c.hubPriority
}

func (c *CreateFacilityCommand) setFacilityID(facilityID kernel.UUID) error {
	if err := facilityID.Validate(); err != nil {
		return err
	}

	c.facilityID = facilityID
	return nil
}

func (c *CreateFacilityCommand) setCode(code string) error {
	if code == "" {
		return facility.ErrCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateFacilityCommand) setName(name string) error {
	if name == "" {
		return facility.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateFacilityCommand) setHub(isHub bool, hubPriority int) error {
	if isHub && hubPriority <= 0 {
		return ErrHubPriorityIsInvalid
	}

	c.isHub = isHub
	c.hubPriority = hubPriority
	return nil
}

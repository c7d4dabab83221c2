package commands

import (
	"errors"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/routing"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

var (
	ErrCreateRouteEdgeCommandIsNotConstructed = errors.New(
		"CreateRouteEdgeCommand must be created via NewCreateRouteEdgeCommand constructor",
	)
	// ErrDistanceIsInvalid rejects edges without a positive distance.
	ErrDistanceIsInvalid = errs.NewValueIsInvalidError("distanceKm")
	// ErrEstimatedHoursIsInvalid rejects edges without a positive duration.
	ErrEstimatedHoursIsInvalid = errs.NewValueIsInvalidError("estimatedHours")
)

// CreateRouteEdgeCommand represents a request to declare a directed
// connection between two facilities in the routing graph.
type CreateRouteEdgeCommand struct { //nolint:recvcheck //using for validation
	edgeID             kernel.UUID
	fromFacilityID     kernel.UUID
	toFacilityID       kernel.UUID
	preferredCarrierID *kernel.UUID
	distanceKm         float64
	estimatedHours     float64

	guard guard.ConstructorGuard
}

// NewCreateRouteEdgeCommand creates a command to declare a route edge.
// preferredCarrierID may be nil when no carrier preference exists.
func NewCreateRouteEdgeCommand(
	edgeID, fromFacilityID, toFacilityID kernel.UUID,
	preferredCarrierID *kernel.UUID,
	distanceKm, estimatedHours float64,
) (CreateRouteEdgeCommand, error) {
	edgeCommand := CreateRouteEdgeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		edgeCommand.setEdgeID(edgeID),
		edgeCommand.setEndpoints(fromFacilityID, toFacilityID),
		edgeCommand.setPreferredCarrierID(preferredCarrierID),
		edgeCommand.setDistanceKm(distanceKm),
		edgeCommand.setEstimatedHours(estimatedHours),
	); err != nil {
		return CreateRouteEdgeCommand{}, err
	}

	return edgeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteEdgeCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteEdgeCommandIsNotConstructed)
}

// EdgeID returns the identifier for the edge being declared.
func (c CreateRouteEdgeCommand) EdgeID() kernel.UUID {
	return c.edgeID
}

// FromFacilityID returns the origin facility of the hop.
func (c CreateRouteEdgeCommand) FromFacilityID() kernel.UUID {
	return c.fromFacilityID
}

// ToFacilityID returns the destination facility of the hop.
func (c CreateRouteEdgeCommand) ToFacilityID() kernel.UUID {
	return c.toFacilityID
}

// PreferredCarrierID returns the preferred carrier for the hop, or nil.
func (c CreateRouteEdgeCommand) PreferredCarrierID() *kernel.UUID {
	return c.preferredCarrierID
}

// DistanceKm returns the hop distance in kilometres.
func (c CreateRouteEdgeCommand) DistanceKm() float64 {
	return c.distanceKm
}

// EstimatedHours returns the estimated transit duration of the hop.
func (c CreateRouteEdgeCommand) EstimatedHours() float64 {
	return c.estimatedHours
}

func (c *CreateRouteEdgeCommand) setEdgeID(edgeID kernel.UUID) error {
	if err := edgeID.Validate(); err != nil {
		return err
	}

	c.edgeID = edgeID
	return nil
}

func (c *CreateRouteEdgeCommand) setEndpoints(from, to kernel.UUID) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}
	if from.IsEqual(to) {
		return routing.ErrSelfLoop
	}

	c.fromFacilityID = from
	c.toFacilityID = to
	return nil
}

func (c *CreateRouteEdgeCommand) setPreferredCarrierID(preferredCarrierID *kernel.UUID) error {
	if preferredCarrierID == nil {
		return nil
	}
	if err := preferredCarrierID.Validate(); err != nil {
		return err
	}

	c.preferredCarrierID = preferredCarrierID
	return nil
}

func (c *CreateRouteEdgeCommand) setDistanceKm(distanceKm float64) error {
	if distanceKm <= 0 {
		return ErrDistanceIsInvalid
	}

	c.distanceKm = distanceKm
	return nil
}

func (c *CreateRouteEdgeCommand) setEstimatedHours(estimatedHours float64) error {
	if estimatedHours <= 0 {
		return ErrEstimatedHoursIsInvalid
	}

	c.estimatedHours = estimatedHours
	return nil
}

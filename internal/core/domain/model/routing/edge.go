// Package routing contains the declarative facility graph: directed edges
// between facilities and the route segments the resolver derives from them.
// The graph is small and mostly static; absence of an edge means no direct
// hop exists between two facilities.
package routing

import (
	"errors"
	"fmt"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

var (
	// ErrEdgeIsNotConstructed is returned when an Edge was not created
	// through NewEdge or RestoreEdge.
	ErrEdgeIsNotConstructed = errors.New("Edge must be created via NewEdge constructor")
	// ErrSelfLoop is returned when an edge connects a facility to itself.
	ErrSelfLoop = errors.New("edge cannot connect a facility to itself")
)

// Edge is a declared direct connection from one facility to another,
// optionally carrying a preferred carrier for the hop. Edges are directed:
// a return connection needs its own edge.
type Edge struct {
	id                 kernel.UUID
	fromFacilityID     kernel.UUID
	toFacilityID       kernel.UUID
	preferredCarrierID *kernel.UUID
	distanceKm         float64
	estimatedHours     float64
	active             bool

	guard guard.ConstructorGuard
}

// NewEdge creates an active edge between two distinct facilities.
// preferredCarrierID may be nil when no carrier preference exists for the hop.
func NewEdge(
	id, fromFacilityID, toFacilityID kernel.UUID,
	preferredCarrierID *kernel.UUID,
	distanceKm, estimatedHours float64,
) (*Edge, error) {
	edge := &Edge{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		edge.setID(id),
		edge.setEndpoints(fromFacilityID, toFacilityID),
		edge.setPreferredCarrierID(preferredCarrierID),
		edge.setDistanceKm(distanceKm),
		edge.setEstimatedHours(estimatedHours),
	); err != nil {
		return nil, err
	}

	return edge, nil
}

// RestoreEdge reconstructs an edge from persistence, including its active flag.
func RestoreEdge(
	id, fromFacilityID, toFacilityID kernel.UUID,
	preferredCarrierID *kernel.UUID,
	distanceKm, estimatedHours float64,
	active bool,
) (*Edge, error) {
	edge, err := NewEdge(id, fromFacilityID, toFacilityID, preferredCarrierID, distanceKm, estimatedHours)
	if err != nil {
		return nil, err
	}

	edge.active = active
	return edge, nil
}

// Validate ensures the Edge was properly constructed.
func (e *Edge) Validate() error {
	if e == nil {
		return ErrEdgeIsNotConstructed
	}
	return e.guard.Validate(ErrEdgeIsNotConstructed)
}

// ID returns the edge's unique identifier.
func (e *Edge) ID() kernel.UUID {
	return e.id
}

// FromFacilityID returns the origin facility of the hop.
func (e *Edge) FromFacilityID() kernel.UUID {
	return e.fromFacilityID
}

// ToFacilityID returns the destination facility of the hop.
func (e *Edge) ToFacilityID() kernel.UUID {
	return e.toFacilityID
}

// PreferredCarrierID returns the preferred carrier for the hop, or nil.
func (e *Edge) PreferredCarrierID() *kernel.UUID {
	return e.preferredCarrierID
}

// DistanceKm returns the hop distance in kilometres.
func (e *Edge) DistanceKm() float64 {
	return e.distanceKm
}

// EstimatedHours returns the estimated transit duration of the hop.
func (e *Edge) EstimatedHours() float64 {
	return e.estimatedHours
}

// IsActive reports whether the edge participates in routing.
func (e *Edge) IsActive() bool {
	return e.active
}

// Deactivate removes the edge from routing without deleting the declaration.
func (e *Edge) Deactivate() {
	e.active = false
}

// Activate returns the edge to routing.
func (e *Edge) Activate() {
	e.active = true
}

// Connects reports whether the edge links from → to.
func (e *Edge) Connects(from, to kernel.UUID) bool {
	return e.fromFacilityID.IsEqual(from) && e.toFacilityID.IsEqual(to)
}

func (e *Edge) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Edge) setEndpoints(from, to kernel.UUID) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}
	if from.IsEqual(to) {
		return ErrSelfLoop
	}
	e.fromFacilityID = from
	e.toFacilityID = to
	return nil
}

func (e *Edge) setPreferredCarrierID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	e.preferredCarrierID = id
	return nil
}

func (e *Edge) setDistanceKm(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%f is not greater than 0", distanceKm))
	}
	e.distanceKm = distanceKm
	return nil
}

func (e *Edge) setEstimatedHours(estimatedHours float64) error {
	if estimatedHours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedHours",
			fmt.Errorf("%f is not greater than 0", estimatedHours))
	}
	e.estimatedHours = estimatedHours
	return nil
}

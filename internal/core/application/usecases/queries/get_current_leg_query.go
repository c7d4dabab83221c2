package queries

import (
	"errors"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/shipment"
	"freightline/internal/pkg/guard"
)

var ErrGetCurrentLegQueryIsNotConstructed = errors.New(
	"GetCurrentLegQuery must be created via NewGetCurrentLegQuery constructor",
)

// GetCurrentLegQuery retrieves the leg a shipment is currently on: the
// lowest-sequence leg that has not finished yet.
//
// Example:
//
//	query, err := NewGetCurrentLegQuery(shipmentID)
//	if err != nil {
//	    return err
//	}
//
//	leg, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get current leg: %w", err)
//	}
//
//	fmt.Printf("Shipment is on leg %d (%s)\n", leg.Sequence, leg.Status)
type GetCurrentLegQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCurrentLegQuery creates a query for the active leg of a shipment.
func NewGetCurrentLegQuery(shipmentID kernel.UUID) (GetCurrentLegQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetCurrentLegQuery{}, err
	}

	return GetCurrentLegQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentLegQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentLegQueryIsNotConstructed)
}

// ShipmentID returns the shipment being tracked.
func (q GetCurrentLegQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// GetCurrentLegQueryResponse describes where a shipment currently is.
// ToFacilityID is nil on the final leg; CarrierID is nil while the leg is
// unassigned.
type GetCurrentLegQueryResponse struct {
	LegID          kernel.UUID
	ShipmentID     kernel.UUID
	Sequence       int
	IsFinal        bool
	Status         shipment.LegStatus
	FromFacilityID kernel.UUID
	ToFacilityID   *kernel.UUID
	CarrierID      *kernel.UUID
	DistanceKm     float64
	EstimatedHours float64
}

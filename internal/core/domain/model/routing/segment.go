package routing

import (
	"freightline/internal/core/domain/model/kernel"
)

// Segment is one hop of a resolved route. Segments are plain value objects
// produced by the route resolver and consumed by the leg planner; they carry
// everything a shipment leg needs at planning time.
type Segment struct {
	// FromFacilityID is the departure facility of the hop.
	FromFacilityID kernel.UUID

	// ToFacilityID is the arrival facility of the hop.
	ToFacilityID kernel.UUID

	// PreferredCarrierID is the carrier preferred for the hop, nil when unset.
	PreferredCarrierID *kernel.UUID

	// DistanceKm is the hop distance in kilometres.
	DistanceKm float64

	// EstimatedHours is the estimated transit duration of the hop.
	EstimatedHours float64

	// IsFinal marks the last hop of the route.
	IsFinal bool
}

// SegmentFromEdge builds a segment out of a declared edge.
func SegmentFromEdge(edge *Edge, isFinal bool) Segment {
	return Segment{
		FromFacilityID:     edge.FromFacilityID(),
		ToFacilityID:       edge.ToFacilityID(),
		PreferredCarrierID: edge.PreferredCarrierID(),
		DistanceKm:         edge.DistanceKm(),
		EstimatedHours:     edge.EstimatedHours(),
		IsFinal:            isFinal,
	}
}

// TotalDistanceKm sums the distance over a resolved route.
func TotalDistanceKm(segments []Segment) float64 {
	var total float64
	for _, s := range segments {
		total += s.DistanceKm
	}
	return total
}

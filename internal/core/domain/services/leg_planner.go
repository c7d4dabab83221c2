package services

import (
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/domain/model/routing"
	"freightline/internal/core/domain/model/shipment"
)

// LegPlanner is a domain service that materializes a resolved route as the
// leg run of a shipment.
//
// Guarantees:
//   - One leg per segment, sequence = index + 1, all Pending
//   - Exactly one final leg, carried over from the final segment
//   - The first segment's preferred carrier becomes the shipment's and the
//     order's assigned carrier
type LegPlanner struct{}

// NewLegPlanner creates a new LegPlanner instance.
func NewLegPlanner() LegPlanner {
	return LegPlanner{}
}

// Plan attaches one leg per segment to the shipment. An empty route returns
// ErrRouteUnavailable and leaves the shipment untouched.
func (p LegPlanner) Plan(
	s *shipment.Shipment,
	o *order.Order,
	segments []routing.Segment,
) ([]*shipment.Leg, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if len(segments) == 0 {
		return nil, ErrRouteUnavailable
	}

	legs := make([]*shipment.Leg, 0, len(segments))
	for i, segment := range segments {
		to := segment.ToFacilityID
		leg, err := shipment.NewLeg(
			kernel.NewUUID(),
			s.ID(),
			o.ID(),
			segment.FromFacilityID,
			&to,
			segment.PreferredCarrierID,
			i+1,
			segment.IsFinal,
			segment.DistanceKm,
			segment.EstimatedHours,
		)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}

	if err := s.AttachLegs(legs); err != nil {
		return nil, err
	}

	if preferred := segments[0].PreferredCarrierID; preferred != nil {
		if err := s.AssignCarrier(*preferred); err != nil {
			return nil, err
		}
		if err := o.AssignCarrier(*preferred); err != nil {
			return nil, err
		}
	}

	return legs, nil
}

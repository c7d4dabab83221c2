package services

import (
	"errors"
	"sort"

	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/routing"
)

// ErrRouteUnavailable is returned when no direct edge and no viable hub path
// connects the origin to the destination. Callers surface this as "no
// transport available"; a shipment must not be planned against it.
var ErrRouteUnavailable = errors.New("no route between origin and destination")

// RouteResolver is a domain service that turns the declared facility graph
// into an ordered segment route for one origin/destination pair.
//
// Business rules:
//   - A direct active edge wins over any hub path
//   - Without a direct edge, a two-hop path through a hub facility is tried:
//     the hub needs active origin→hub and hub→destination edges
//   - Among qualifying hubs the lowest combined distance wins; ties go to the
//     hub with the lower priority rank (creation order, deterministic)
//   - Same-facility input resolves to an empty route
//
// The resolver is pure: it only inspects the edges and hubs handed to it.
type RouteResolver struct{}

// NewRouteResolver creates a new RouteResolver instance.
func NewRouteResolver() RouteResolver {
	return RouteResolver{}
}

// Resolve returns the ordered segments from origin to destination, or an
// empty slice when no path exists. The caller maps an empty result for
// distinct facilities to ErrRouteUnavailable.
func (r RouteResolver) Resolve(
	originID, destinationID kernel.UUID,
	edges []*routing.Edge,
	hubs []*facility.Facility,
) ([]routing.Segment, error) {
	if err := errors.Join(originID.Validate(), destinationID.Validate()); err != nil {
		return nil, err
	}

	if originID.IsEqual(destinationID) {
		return []routing.Segment{}, nil
	}

	if direct := findEdge(edges, originID, destinationID); direct != nil {
		return []routing.Segment{routing.SegmentFromEdge(direct, true)}, nil
	}

	first, second := r.findHubPath(originID, destinationID, edges, hubs)
	if first == nil {
		return []routing.Segment{}, nil
	}

	return []routing.Segment{
		routing.SegmentFromEdge(first, false),
		routing.SegmentFromEdge(second, true),
	}, nil
}

// findHubPath picks the best two-hop path through the hub list. Returns nil
// edges when no hub qualifies.
func (r RouteResolver) findHubPath(
	originID, destinationID kernel.UUID,
	edges []*routing.Edge,
	hubs []*facility.Facility,
) (*routing.Edge, *routing.Edge) {
	type candidate struct {
		inbound  *routing.Edge
		outbound *routing.Edge
		distance float64
		priority int
	}

	var candidates []candidate
	for _, hub := range hubs {
		if hub.Validate() != nil || !hub.IsHub() {
			continue
		}
		if hub.ID().IsEqual(originID) || hub.ID().IsEqual(destinationID) {
			continue
		}

		inbound := findEdge(edges, originID, hub.ID())
		if inbound == nil {
			continue
		}
		outbound := findEdge(edges, hub.ID(), destinationID)
		if outbound == nil {
			continue
		}

		candidates = append(candidates, candidate{
			inbound:  inbound,
			outbound: outbound,
			distance: inbound.DistanceKm() + outbound.DistanceKm(),
			priority: hub.HubPriority(),
		})
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].priority < candidates[j].priority
	})

	best := candidates[0]
	return best.inbound, best.outbound
}

// findEdge returns the first active edge connecting from → to.
func findEdge(edges []*routing.Edge, from, to kernel.UUID) *routing.Edge {
	for _, edge := range edges {
		if edge.Validate() != nil || !edge.IsActive() {
			continue
		}
		if edge.Connects(from, to) {
			return edge
		}
	}
	return nil
}

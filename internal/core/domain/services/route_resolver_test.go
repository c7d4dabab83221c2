package services_test

import (
	"testing"

	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/routing"
	"freightline/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildEdge(t *testing.T, from, to kernel.UUID, distanceKm float64) *routing.Edge {
	t.Helper()
	edge, err := routing.NewEdge(kernel.NewUUID(), from, to, nil, distanceKm, distanceKm/60)
	require.NoError(t, err)
	return edge
}

func buildHub(t *testing.T, code string, priority int) *facility.Facility {
	t.Helper()
	hub, err := facility.NewFacility(kernel.NewUUID(), code, code, "", true, priority)
	require.NoError(t, err)
	return hub
}

func TestRouteResolver_Resolve(t *testing.T) {
	resolver := services.NewRouteResolver()
	origin := kernel.NewUUID()
	destination := kernel.NewUUID()

	t.Run("should return empty route for same facility", func(t *testing.T) {
		segments, err := resolver.Resolve(origin, origin, nil, nil)

		require.NoError(t, err)
		assert.Empty(t, segments)
	})

	t.Run("should prefer a direct edge", func(t *testing.T) {
		hub := buildHub(t, "HUB-DN", 1)
		edges := []*routing.Edge{
			buildEdge(t, origin, hub.ID(), 100),
			buildEdge(t, hub.ID(), destination, 100),
			buildEdge(t, origin, destination, 900),
		}

		segments, err := resolver.Resolve(origin, destination, edges, []*facility.Facility{hub})

		require.NoError(t, err)
		require.Len(t, segments, 1)
		assert.True(t, segments[0].FromFacilityID.IsEqual(origin))
		assert.True(t, segments[0].ToFacilityID.IsEqual(destination))
		assert.True(t, segments[0].IsFinal)
	})

	t.Run("should route two hops through a hub when no direct edge exists", func(t *testing.T) {
		// Hub-HCM -> Hub-DN -> Hub-HN with no direct Hub-HCM -> Hub-HN edge.
		hub := buildHub(t, "HUB-DN", 1)
		edges := []*routing.Edge{
			buildEdge(t, origin, hub.ID(), 850),
			buildEdge(t, hub.ID(), destination, 760),
		}

		segments, err := resolver.Resolve(origin, destination, edges, []*facility.Facility{hub})

		require.NoError(t, err)
		require.Len(t, segments, 2)
		assert.True(t, segments[0].FromFacilityID.IsEqual(origin))
		assert.True(t, segments[0].ToFacilityID.IsEqual(hub.ID()))
		assert.False(t, segments[0].IsFinal)
		assert.True(t, segments[1].FromFacilityID.IsEqual(hub.ID()))
		assert.True(t, segments[1].ToFacilityID.IsEqual(destination))
		assert.True(t, segments[1].IsFinal)
		assert.InDelta(t, 1610, routing.TotalDistanceKm(segments), 0.0001)
	})

	t.Run("should return empty route when no edge and no hub path exist", func(t *testing.T) {
		hub := buildHub(t, "HUB-DN", 1)
		edges := []*routing.Edge{
			buildEdge(t, origin, hub.ID(), 850),
			// No hub -> destination edge.
		}

		segments, err := resolver.Resolve(origin, destination, edges, []*facility.Facility{hub})

		require.NoError(t, err)
		assert.Empty(t, segments)
	})

	t.Run("should pick the hub with the lower combined distance", func(t *testing.T) {
		far := buildHub(t, "HUB-FAR", 1)
		near := buildHub(t, "HUB-NEAR", 2)
		edges := []*routing.Edge{
			buildEdge(t, origin, far.ID(), 500),
			buildEdge(t, far.ID(), destination, 500),
			buildEdge(t, origin, near.ID(), 200),
			buildEdge(t, near.ID(), destination, 250),
		}

		segments, err := resolver.Resolve(origin, destination, edges, []*facility.Facility{far, near})

		require.NoError(t, err)
		require.Len(t, segments, 2)
		assert.True(t, segments[0].ToFacilityID.IsEqual(near.ID()))
	})

	t.Run("should break distance ties by hub priority", func(t *testing.T) {
		second := buildHub(t, "HUB-B", 2)
		first := buildHub(t, "HUB-A", 1)
		edges := []*routing.Edge{
			buildEdge(t, origin, second.ID(), 300),
			buildEdge(t, second.ID(), destination, 300),
			buildEdge(t, origin, first.ID(), 300),
			buildEdge(t, first.ID(), destination, 300),
		}

		// Hub order in the slice must not matter.
		segments, err := resolver.Resolve(origin, destination, edges, []*facility.Facility{second, first})

		require.NoError(t, err)
		require.Len(t, segments, 2)
		assert.True(t, segments[0].ToFacilityID.IsEqual(first.ID()))
	})

	t.Run("should ignore inactive edges", func(t *testing.T) {
		direct := buildEdge(t, origin, destination, 100)
		direct.Deactivate()

		segments, err := resolver.Resolve(origin, destination, []*routing.Edge{direct}, nil)

		require.NoError(t, err)
		assert.Empty(t, segments)
	})

	t.Run("should ignore non-hub facilities in the hub list", func(t *testing.T) {
		depot, err := facility.NewFacility(kernel.NewUUID(), "DEP-01", "Depot", "", false, 0)
		require.NoError(t, err)
		edges := []*routing.Edge{
			buildEdge(t, origin, depot.ID(), 100),
			buildEdge(t, depot.ID(), destination, 100),
		}

		segments, err := resolver.Resolve(origin, destination, edges, []*facility.Facility{depot})

		require.NoError(t, err)
		assert.Empty(t, segments)
	})

	t.Run("should carry the edge's preferred carrier into the segment", func(t *testing.T) {
		carrierID := kernel.NewUUID()
		direct, err := routing.NewEdge(kernel.NewUUID(), origin, destination, &carrierID, 100, 2)
		require.NoError(t, err)

		segments, err := resolver.Resolve(origin, destination, []*routing.Edge{direct}, nil)

		require.NoError(t, err)
		require.Len(t, segments, 1)
		require.NotNil(t, segments[0].PreferredCarrierID)
		assert.True(t, segments[0].PreferredCarrierID.IsEqual(carrierID))
	})

	t.Run("should reject invalid facility ids", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := resolver.Resolve(invalidID, destination, nil, nil)

		require.Error(t, err)
	})
}

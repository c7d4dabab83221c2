package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/domain/model/shipment"
)

// buildPlannedShipment returns an order and its shipment with legCount
// attached pending legs, the last one final. The carrier is assigned to the
// shipment, the order, and every leg.
func buildPlannedShipment(
	t *testing.T,
	legCount int,
	carrierID kernel.UUID,
) (*order.Order, *shipment.Shipment) {
	t.Helper()

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "ORD-100", kernel.NewUUID(), kernel.NewUUID(), 25, order.TierStandard,
	)
	require.NoError(t, err)

	testShipment, err := shipment.NewShipment(kernel.NewUUID(), "SHP-100", testOrder.ID())
	require.NoError(t, err)

	legs := make([]*shipment.Leg, 0, legCount)
	for i := 0; i < legCount; i++ {
		isFinal := i == legCount-1
		var to *kernel.UUID
		if !isFinal {
			arrival := kernel.NewUUID()
			to = &arrival
		}

		leg, legErr := shipment.NewLeg(
			kernel.NewUUID(), testShipment.ID(), testOrder.ID(),
			kernel.NewUUID(), to, &carrierID, i+1, isFinal, 120, 3,
		)
		require.NoError(t, legErr)
		legs = append(legs, leg)
	}

	require.NoError(t, testShipment.AttachLegs(legs))
	require.NoError(t, testShipment.AssignCarrier(carrierID))
	require.NoError(t, testOrder.AssignCarrier(carrierID))

	return testOrder, testShipment
}

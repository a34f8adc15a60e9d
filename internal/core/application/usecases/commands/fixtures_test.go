package commands_test

import (
	"testing"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Onions", 5, 40)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item},
		"12 Market Road", "+911234567890", "", nil, "",
	)
	require.NoError(t, err)
	return o
}

func readyOrder(t *testing.T) *order.Order {
	t.Helper()

	o := pendingOrder(t)
	require.NoError(t, o.AdvanceTo(order.Confirmed))
	require.NoError(t, o.AdvanceTo(order.ReadyForPickup))
	return o
}

func outForDeliveryOrder(t *testing.T, agentID kernel.UUID) *order.Order {
	t.Helper()

	o := readyOrder(t)
	require.NoError(t, o.Assign(agentID))
	return o
}

func assignedDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Wholesale market, gate 3", "12 Market Road",
		nil, nil, nil, nil,
	)
	require.NoError(t, err)
	return d
}

func outForDeliveryRun(t *testing.T) *delivery.Delivery {
	t.Helper()

	d := assignedDelivery(t)
	require.NoError(t, d.MarkPickedUp())
	require.NoError(t, d.MarkOutForDelivery())
	return d
}

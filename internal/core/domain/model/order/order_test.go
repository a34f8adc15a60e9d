package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()

	onions, err := order.NewItem(kernel.NewUUID(), "Onions", 5, 40)
	require.NoError(t, err)
	tomatoes, err := order.NewItem(kernel.NewUUID(), "Tomatoes", 3, 30)
	require.NoError(t, err)

	return []order.Item{onions, tomatoes}
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		testItems(t),
		"12 Market Road", "+911234567890", "", nil, "",
	)
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("computes line total", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Onions", 5, 40)

		require.NoError(t, err)
		assert.Equal(t, float64(200), item.LineTotal())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		for _, qty := range []float64{0, -1} {
			_, err := order.NewItem(kernel.NewUUID(), "Onions", qty, 40)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects non-positive unit price", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Onions", 5, 0)
		require.Error(t, err)
	})

	t.Run("rejects missing product name", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", 5, 40)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item
		assert.Equal(t, order.ErrItemIsNotConstructed, item.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order with summed total", func(t *testing.T) {
		o := testOrder(t)

		assert.Equal(t, order.Pending, o.Status())
		// 5 * 40 + 3 * 30
		assert.Equal(t, float64(290), o.TotalAmount())
		assert.Nil(t, o.AgentID())
		assert.NoError(t, o.Validate())
	})

	t.Run("defaults empty pickup address", func(t *testing.T) {
		o := testOrder(t)
		assert.Equal(t, "Supplier pickup point", o.PickupAddress())
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "12 Market Road", "+911234567890", "", nil, "",
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects missing delivery address and phone", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testItems(t), "", "", "", nil, "",
		)
		require.Error(t, err)
	})

	t.Run("rejects unconstructed item in the middle", func(t *testing.T) {
		items := testItems(t)
		items = append(items, order.Item{})

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, "12 Market Road", "+911234567890", "", nil, "",
		)
		require.Error(t, err)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_AdvanceTo(t *testing.T) {
	t.Run("walks the supplier path", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.AdvanceTo(order.Confirmed))
		assert.Equal(t, order.Confirmed, o.Status())

		require.NoError(t, o.AdvanceTo(order.ReadyForPickup))
		assert.Equal(t, order.ReadyForPickup, o.Status())
	})

	t.Run("illegal transition leaves status unchanged", func(t *testing.T) {
		o := testOrder(t)

		err := o.AdvanceTo(order.Delivered)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("out_for_delivery is only reachable via Assign", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.AdvanceTo(order.Confirmed))
		require.NoError(t, o.AdvanceTo(order.ReadyForPickup))

		err := o.AdvanceTo(order.OutForDelivery)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.ReadyForPickup, o.Status())
	})
}

func TestOrder_Assign(t *testing.T) {
	readyOrder := func(t *testing.T) *order.Order {
		o := testOrder(t)
		require.NoError(t, o.AdvanceTo(order.Confirmed))
		require.NoError(t, o.AdvanceTo(order.ReadyForPickup))
		return o
	}

	t.Run("claims a ready order", func(t *testing.T) {
		o := readyOrder(t)
		agentID := kernel.NewUUID()

		require.NoError(t, o.Assign(agentID))

		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.AgentID())
		assert.True(t, o.AgentID().IsEqual(agentID))
	})

	t.Run("second claim fails with already assigned", func(t *testing.T) {
		o := readyOrder(t)
		agentA := kernel.NewUUID()
		agentB := kernel.NewUUID()

		require.NoError(t, o.Assign(agentA))
		err := o.Assign(agentB)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrAlreadyAssigned)
		assert.True(t, o.AgentID().IsEqual(agentA))
		assert.Equal(t, order.OutForDelivery, o.Status())
	})

	t.Run("cannot claim a pending order", func(t *testing.T) {
		o := testOrder(t)

		err := o.Assign(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.AgentID())
	})

	t.Run("rejects invalid agent ID", func(t *testing.T) {
		o := readyOrder(t)
		err := o.Assign(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("legal from every non-terminal status", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("illegal once delivered", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.AdvanceTo(order.Confirmed))
		require.NoError(t, o.AdvanceTo(order.ReadyForPickup))
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.MarkDelivered())

		err := o.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_MarkDeliveredAndFailed(t *testing.T) {
	outForDelivery := func(t *testing.T) *order.Order {
		o := testOrder(t)
		require.NoError(t, o.AdvanceTo(order.Confirmed))
		require.NoError(t, o.AdvanceTo(order.ReadyForPickup))
		require.NoError(t, o.Assign(kernel.NewUUID()))
		return o
	}

	t.Run("delivered from out_for_delivery", func(t *testing.T) {
		o := outForDelivery(t)
		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("failed from out_for_delivery", func(t *testing.T) {
		o := outForDelivery(t)
		require.NoError(t, o.MarkFailed())
		assert.Equal(t, order.Failed, o.Status())
	})

	t.Run("delivered requires assignment first", func(t *testing.T) {
		o := testOrder(t)
		require.Error(t, o.MarkDelivered())
	})
}

func TestRestoreOrder(t *testing.T) {
	base := func(t *testing.T) (kernel.UUID, []order.Item) {
		return kernel.NewUUID(), testItems(t)
	}

	t.Run("restores stored state", func(t *testing.T) {
		id, items := base(t)
		agentID := kernel.NewUUID()
		createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			id, kernel.NewUUID(), kernel.NewUUID(), items,
			290, order.OutForDelivery, &agentID,
			"12 Market Road", "+911234567890", "Shop 4", nil, "",
			createdAt, createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Equal(t, float64(290), o.TotalAmount())
		assert.True(t, o.AgentID().IsEqual(agentID))
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("rejects agent on a pending order", func(t *testing.T) {
		id, items := base(t)
		agentID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			id, kernel.NewUUID(), kernel.NewUUID(), items,
			290, order.Pending, &agentID,
			"12 Market Road", "+911234567890", "", nil, "",
			time.Now(), time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("rejects out_for_delivery without agent", func(t *testing.T) {
		id, items := base(t)

		_, err := order.RestoreOrder(
			id, kernel.NewUUID(), kernel.NewUUID(), items,
			290, order.OutForDelivery, nil,
			"12 Market Road", "+911234567890", "", nil, "",
			time.Now(), time.Now(),
		)

		require.Error(t, err)
	})
}

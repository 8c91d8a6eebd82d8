package entities_test

import (
	"testing"

	"github.com/StefanMagureanu25/AWBD/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) entities.Money {
	t.Helper()
	m, err := entities.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustQty(t *testing.T, n int) entities.Quantity {
	t.Helper()
	q, err := entities.NewQuantity(n)
	require.NoError(t, err)
	return q
}

func pendingOrderWithItem(t *testing.T) entities.Order {
	t.Helper()
	order := entities.NewOrder("order-1", "ORD-AB12CD34", "user-1")
	_, err := order.AddItem("item-1", "product-1", mustQty(t, 2), mustMoney(t, "10.00"))
	require.NoError(t, err)
	return order
}

func TestNewOrder(t *testing.T) {
	order := entities.NewOrder("order-1", "ORD-AB12CD34", "user-1")

	assert.Equal(t, entities.StatusPending, order.Status)
	assert.True(t, order.TotalAmount.IsZero())
	assert.False(t, order.HasItems())
	assert.False(t, order.CreatedAt.IsZero())
	assert.Nil(t, order.ShippedAt)
	assert.Nil(t, order.DeliveredAt)
	assert.Nil(t, order.CancelledAt)
}

func TestOrder_AddItem(t *testing.T) {
	order := entities.NewOrder("order-1", "ORD-AB12CD34", "user-1")

	item, err := order.AddItem("item-1", "product-1", mustQty(t, 3), mustMoney(t, "19.99"))
	require.NoError(t, err)

	assert.Equal(t, "59.97", item.Subtotal.String())
	assert.Equal(t, "59.97", order.TotalAmount.String())

	_, err = order.AddItem("item-2", "product-2", mustQty(t, 1), mustMoney(t, "0.03"))
	require.NoError(t, err)
	assert.Equal(t, "60.00", order.TotalAmount.String())
	assert.Len(t, order.Items, 2)
}

func TestOrder_AddItem_NotPending(t *testing.T) {
	order := pendingOrderWithItem(t)
	require.NoError(t, order.Confirm())

	_, err := order.AddItem("item-2", "product-2", mustQty(t, 1), mustMoney(t, "5.00"))

	var transitionErr *entities.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, entities.StatusConfirmed, transitionErr.From)
	assert.Equal(t, entities.EventAddItem, transitionErr.Event)
}

func TestOrder_RemoveItem(t *testing.T) {
	order := pendingOrderWithItem(t)
	_, err := order.AddItem("item-2", "product-2", mustQty(t, 1), mustMoney(t, "5.00"))
	require.NoError(t, err)
	require.Equal(t, "25.00", order.TotalAmount.String())

	removed, err := order.RemoveItem("item-1")
	require.NoError(t, err)

	assert.Equal(t, "product-1", removed.ProductID)
	assert.Equal(t, 2, removed.Quantity.Int())
	assert.Equal(t, "5.00", order.TotalAmount.String())
	assert.Len(t, order.Items, 1)
}

func TestOrder_RemoveItem_NotFound(t *testing.T) {
	order := pendingOrderWithItem(t)

	_, err := order.RemoveItem("missing")
	assert.ErrorIs(t, err, entities.ErrOrderItemNotFound)
}

func TestOrder_RemoveLastItem_LeavesZeroTotal(t *testing.T) {
	order := pendingOrderWithItem(t)

	_, err := order.RemoveItem("item-1")
	require.NoError(t, err)

	assert.False(t, order.HasItems())
	assert.True(t, order.TotalAmount.IsZero())
}

func TestOrder_UpdateItemQuantity(t *testing.T) {
	order := pendingOrderWithItem(t)

	err := order.UpdateItemQuantity("item-1", mustQty(t, 5))
	require.NoError(t, err)

	item, ok := order.Item("item-1")
	require.True(t, ok)
	assert.Equal(t, 5, item.Quantity.Int())
	assert.Equal(t, "50.00", item.Subtotal.String())
	assert.Equal(t, "50.00", order.TotalAmount.String())
}

func TestOrder_UpdateItemQuantity_NotFound(t *testing.T) {
	order := pendingOrderWithItem(t)

	err := order.UpdateItemQuantity("missing", mustQty(t, 5))
	assert.ErrorIs(t, err, entities.ErrOrderItemNotFound)
}

func TestOrder_Lifecycle(t *testing.T) {
	order := pendingOrderWithItem(t)

	require.NoError(t, order.Confirm())
	assert.Equal(t, entities.StatusConfirmed, order.Status)

	require.NoError(t, order.Ship())
	assert.Equal(t, entities.StatusShipped, order.Status)
	require.NotNil(t, order.ShippedAt)

	require.NoError(t, order.Deliver())
	assert.Equal(t, entities.StatusDelivered, order.Status)
	require.NotNil(t, order.DeliveredAt)
	assert.True(t, order.IsTerminal())
}

func TestOrder_Confirm_EmptyOrder(t *testing.T) {
	order := entities.NewOrder("order-1", "ORD-AB12CD34", "user-1")

	err := order.Confirm()

	var transitionErr *entities.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, entities.StatusPending, transitionErr.From)
	assert.Equal(t, entities.EventConfirm, transitionErr.Event)
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order", func(t *testing.T) {
		order := pendingOrderWithItem(t)
		require.NoError(t, order.Cancel())
		assert.Equal(t, entities.StatusCancelled, order.Status)
		require.NotNil(t, order.CancelledAt)
	})

	t.Run("confirmed order", func(t *testing.T) {
		order := pendingOrderWithItem(t)
		require.NoError(t, order.Confirm())
		require.NoError(t, order.Cancel())
		assert.Equal(t, entities.StatusCancelled, order.Status)
	})

	t.Run("shipped order is rejected", func(t *testing.T) {
		order := pendingOrderWithItem(t)
		require.NoError(t, order.Confirm())
		require.NoError(t, order.Ship())

		err := order.Cancel()
		var transitionErr *entities.InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})
}

// TestOrder_TransitionTable walks every (status, event) pair so no transition
// slips in or out of the lifecycle unnoticed.
func TestOrder_TransitionTable(t *testing.T) {
	allowed := map[entities.OrderStatus]map[entities.OrderEvent]entities.OrderStatus{
		entities.StatusPending: {
			entities.EventConfirm: entities.StatusConfirmed,
			entities.EventCancel:  entities.StatusCancelled,
		},
		entities.StatusConfirmed: {
			entities.EventShip:   entities.StatusShipped,
			entities.EventCancel: entities.StatusCancelled,
		},
		entities.StatusShipped: {
			entities.EventDeliver: entities.StatusDelivered,
		},
		entities.StatusDelivered: {},
		entities.StatusCancelled: {},
	}

	statuses := []entities.OrderStatus{
		entities.StatusPending,
		entities.StatusConfirmed,
		entities.StatusShipped,
		entities.StatusDelivered,
		entities.StatusCancelled,
	}
	events := []entities.OrderEvent{
		entities.EventConfirm,
		entities.EventShip,
		entities.EventDeliver,
		entities.EventCancel,
	}

	apply := func(o *entities.Order, event entities.OrderEvent) error {
		switch event {
		case entities.EventConfirm:
			return o.Confirm()
		case entities.EventShip:
			return o.Ship()
		case entities.EventDeliver:
			return o.Deliver()
		case entities.EventCancel:
			return o.Cancel()
		}
		t.Fatalf("unknown event %q", event)
		return nil
	}

	for _, from := range statuses {
		for _, event := range events {
			t.Run(string(from)+"_"+string(event), func(t *testing.T) {
				order := pendingOrderWithItem(t)
				order.Status = from

				err := apply(&order, event)

				if to, ok := allowed[from][event]; ok {
					require.NoError(t, err)
					assert.Equal(t, to, order.Status)
					return
				}

				var transitionErr *entities.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, from, transitionErr.From)
				assert.Equal(t, event, transitionErr.Event)
				assert.Equal(t, from, order.Status)
			})
		}
	}
}

func TestOrder_StatusPredicates(t *testing.T) {
	order := pendingOrderWithItem(t)
	assert.True(t, order.IsPending())
	assert.True(t, order.CanBeCancelled())
	assert.False(t, order.IsTerminal())

	require.NoError(t, order.Confirm())
	assert.False(t, order.IsPending())
	assert.True(t, order.CanBeCancelled())

	require.NoError(t, order.Ship())
	assert.False(t, order.CanBeCancelled())

	require.NoError(t, order.Deliver())
	assert.True(t, order.IsTerminal())
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	order := pendingOrderWithItem(t)
	require.NoError(t, order.Confirm())

	data, err := order.Marshal()
	require.NoError(t, err)

	var decoded entities.Order
	require.NoError(t, decoded.Unmarshal(data))

	assert.Equal(t, order.ID, decoded.ID)
	assert.Equal(t, order.Status, decoded.Status)
	assert.Equal(t, order.TotalAmount.String(), decoded.TotalAmount.String())
	require.Len(t, decoded.Items, 1)
	assert.Equal(t, order.Items[0].Subtotal.String(), decoded.Items[0].Subtotal.String())
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, entities.StatusPending.Valid())
	assert.True(t, entities.StatusCancelled.Valid())
	assert.False(t, entities.OrderStatus("UNKNOWN").Valid())
	assert.False(t, entities.OrderStatus("").Valid())
}

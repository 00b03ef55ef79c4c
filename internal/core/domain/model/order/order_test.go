package order_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCustomer(t *testing.T, organization string) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("Asel Nurlanovna", "asel@example.com", "+77010000001", organization)
	require.NoError(t, err)
	return customer
}

func makeItems(t *testing.T) []order.LineItem {
	t.Helper()
	first, err := order.NewLineItem("Paracetamol 500mg", "Blister of 20", 2, decimal.NewFromInt(1200))
	require.NoError(t, err)
	second, err := order.NewLineItem("Vitamin D3", "60 capsules", 1, decimal.NewFromInt(1300))
	require.NoError(t, err)
	return []order.LineItem{first, second}
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_placed_order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-1001", makeCustomer(t, ""),
			"12 Abay Ave", "Almaty", "+77010000001", "leave at door",
			"card", order.PaymentPending, makeItems(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPlaced, o.Status())
		assert.Equal(t, "ORD-1001", o.Number())
	})

	t.Run("requires_line_items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1001", makeCustomer(t, ""),
			"12 Abay Ave", "Almaty", "", "",
			"card", order.PaymentPending, nil)

		require.Error(t, err)
	})

	t.Run("rejects_unknown_payment_status", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1001", makeCustomer(t, ""),
			"12 Abay Ave", "Almaty", "", "",
			"card", order.PaymentStatus("settled"), makeItems(t))

		require.Error(t, err)
	})
}

func TestOrder_Subtotal(t *testing.T) {
	t.Run("sums_price_snapshots", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-1002", makeCustomer(t, ""),
			"12 Abay Ave", "Almaty", "", "",
			"card", order.PaymentPending, makeItems(t))
		require.NoError(t, err)

		// 2*1200 + 1*1300
		assert.True(t, o.Subtotal().Equal(decimal.NewFromInt(3700)))
	})
}

func TestOrder_MarkDelivered(t *testing.T) {
	t.Run("sets_delivered_status", func(t *testing.T) {
		o := placedOrder(t)

		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("is_idempotent", func(t *testing.T) {
		o := placedOrder(t)

		require.NoError(t, o.MarkDelivered())
		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("refuses_cancelled_order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1003", makeCustomer(t, ""),
			"12 Abay Ave", "Almaty", "", "",
			"card", order.PaymentPending, order.StatusCancelled, makeItems(t))
		require.NoError(t, err)

		require.Error(t, o.MarkDelivered())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})
}

func TestCustomer_IsOrganization(t *testing.T) {
	assert.False(t, makeCustomer(t, "").IsOrganization())
	assert.True(t, makeCustomer(t, "Dostyk Pharm LLP").IsOrganization())
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1002", makeCustomer(t, ""),
		"12 Abay Ave", "Almaty", "", "",
		"card", order.PaymentPending, makeItems(t))
	require.NoError(t, err)
	return o
}

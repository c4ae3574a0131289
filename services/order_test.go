package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petshop-admin/models"
	"petshop-admin/utils"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{models.OrderStatusPending, models.OrderStatusDispatched},
		{models.OrderStatusDispatched, models.OrderStatusDelivered},
		{models.OrderStatusPending, models.OrderStatusCancelled},
		{models.OrderStatusDispatched, models.OrderStatusCancelled},
	}
	for _, pair := range allowed {
		assert.True(t, CanTransition(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}

	forbidden := [][2]string{
		{models.OrderStatusPending, models.OrderStatusDelivered},
		{models.OrderStatusDelivered, models.OrderStatusCancelled},
		{models.OrderStatusDelivered, models.OrderStatusPending},
		{models.OrderStatusCancelled, models.OrderStatusDispatched},
		{models.OrderStatusDispatched, models.OrderStatusPending},
	}
	for _, pair := range forbidden {
		assert.False(t, CanTransition(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}
}

func TestOrderStatusUpdate(t *testing.T) {
	t.Run("DispatchStampsTimestamp", func(t *testing.T) {
		current := &models.Order{Status: models.OrderStatusPending}
		set, err := OrderStatusUpdate(current, Input{"status": models.OrderStatusDispatched})
		require.NoError(t, err)

		assert.Equal(t, models.OrderStatusDispatched, set["status"])
		assert.Contains(t, set, "dispatched_at")
		assert.NotContains(t, set, "tracking")
	})

	t.Run("DispatchRecordsTracking", func(t *testing.T) {
		current := &models.Order{Status: models.OrderStatusPending}
		set, err := OrderStatusUpdate(current, Input{
			"status":          models.OrderStatusDispatched,
			"carrier":         "TCS",
			"tracking_number": "TCS-991",
		})
		require.NoError(t, err)

		tracking, ok := set["tracking"].(models.TrackingInfo)
		require.True(t, ok)
		assert.Equal(t, "TCS", tracking.Carrier)
		assert.Equal(t, "TCS-991", tracking.TrackingNumber)
	})

	t.Run("CancelDefaultsReason", func(t *testing.T) {
		current := &models.Order{Status: models.OrderStatusPending}
		set, err := OrderStatusUpdate(current, Input{"status": models.OrderStatusCancelled})
		require.NoError(t, err)

		assert.Equal(t, DefaultCancellationReason, set["cancellation_reason"])
		assert.Contains(t, set, "cancelled_at")
	})

	t.Run("CancelKeepsGivenReason", func(t *testing.T) {
		current := &models.Order{Status: models.OrderStatusDispatched}
		set, err := OrderStatusUpdate(current, Input{
			"status": models.OrderStatusCancelled,
			"reason": "customer changed mind",
		})
		require.NoError(t, err)
		assert.Equal(t, "customer changed mind", set["cancellation_reason"])
	})

	t.Run("CancellingDeliveredRejected", func(t *testing.T) {
		current := &models.Order{Status: models.OrderStatusDelivered}
		_, err := OrderStatusUpdate(current, Input{"status": models.OrderStatusCancelled})

		var tErr *OrderTransitionError
		require.ErrorAs(t, err, &tErr)
		assert.Equal(t, models.OrderStatusDelivered, tErr.From)
		assert.Equal(t, models.OrderStatusCancelled, tErr.To)
	})

	t.Run("SkippingDispatchRejected", func(t *testing.T) {
		current := &models.Order{Status: models.OrderStatusPending}
		_, err := OrderStatusUpdate(current, Input{"status": models.OrderStatusDelivered})

		var tErr *OrderTransitionError
		assert.ErrorAs(t, err, &tErr)
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		current := &models.Order{Status: models.OrderStatusPending}
		_, err := OrderStatusUpdate(current, Input{"status": "Shipped"})

		var vErr *utils.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "status")
	})

	t.Run("MissingStatusRejected", func(t *testing.T) {
		current := &models.Order{Status: models.OrderStatusPending}
		_, err := OrderStatusUpdate(current, Input{})
		assert.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Dog Leash", Price: 24.99, Quantity: 2},
		{Name: "Cat Toy", Price: 5.00, Quantity: 1},
	}
	address := models.ShippingAddress{City: "Karachi"}

	t.Run("ComputesTotals", func(t *testing.T) {
		order, err := NewOrder(Input{"customer_name": "Ali", "shipping_fee": "10"}, items, address)
		require.NoError(t, err)

		assert.InDelta(t, 54.98, order.Subtotal, 0.001)
		assert.InDelta(t, 64.98, order.Total, 0.001)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Regexp(t, `^ORD-\d+$`, order.OrderNumber)
	})

	t.Run("EmptyItemsRejected", func(t *testing.T) {
		_, err := NewOrder(Input{"customer_name": "Ali"}, nil, address)
		assert.Error(t, err)
	})

	t.Run("MissingCustomerRejected", func(t *testing.T) {
		_, err := NewOrder(Input{}, items, address)
		assert.Error(t, err)
	})
}

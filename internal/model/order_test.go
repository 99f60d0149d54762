package model_test

import (
	"testing"

	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to model.OrderStatus }{
		{model.OrderStatusReceived, model.OrderStatusProcessing},
		{model.OrderStatusReceived, model.OrderStatusDelivered},
		{model.OrderStatusReceived, model.OrderStatusCancelled},
		{model.OrderStatusProcessing, model.OrderStatusDelivered},
		{model.OrderStatusProcessing, model.OrderStatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, model.CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to model.OrderStatus }{
		{model.OrderStatusProcessing, model.OrderStatusReceived},
		{model.OrderStatusDelivered, model.OrderStatusProcessing},
		{model.OrderStatusDelivered, model.OrderStatusCancelled},
		{model.OrderStatusCancelled, model.OrderStatusReceived},
		{model.OrderStatusCancelled, model.OrderStatusDelivered},
	}
	for _, tc := range denied {
		assert.False(t, model.CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range []string{"Order Received", "Processing", "Delivered", "Cancelled"} {
		assert.True(t, model.IsValidOrderStatus(status), status)
	}
	for _, status := range []string{"", "delivered", "Shipped"} {
		assert.False(t, model.IsValidOrderStatus(status), status)
	}
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{
		"Pending", "Payment Confirmed", "Ready", "Out for Delivery", "Completed", "Cancelled",
	} {
		status, ok := ParseOrderStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, valid, string(status))
	}

	_, ok := ParseOrderStatus("Shipped")
	assert.False(t, ok)
	_, ok = ParseOrderStatus("pending")
	assert.False(t, ok, "status names are case sensitive")
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{OrderStatusPending, OrderStatusPaymentConfirm},
		{OrderStatusPaymentConfirm, OrderStatusReady},
		{OrderStatusReady, OrderStatusOutForDelivery},
		{OrderStatusOutForDelivery, OrderStatusCompleted},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusPaymentConfirm, OrderStatusCancelled},
		{OrderStatusReady, OrderStatusCancelled},
		{OrderStatusOutForDelivery, OrderStatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to OrderStatus }{
		{OrderStatusPending, OrderStatusReady},
		{OrderStatusReady, OrderStatusCompleted},
		{OrderStatusPending, OrderStatusCompleted},
		{OrderStatusPaymentConfirm, OrderStatusPending},
		{OrderStatusCompleted, OrderStatusCancelled},
		{OrderStatusCompleted, OrderStatusPending},
		{OrderStatusCancelled, OrderStatusPending},
		{OrderStatusCancelled, OrderStatusCompleted},
		{OrderStatusPending, OrderStatusPending},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestSelectedAttributesRoundTrip(t *testing.T) {
	attrs := []SelectedAttribute{
		{Name: "Size", Value: "XL"},
		{Name: "Color", Value: "Red"},
		{Name: "Material", Value: "Cotton"},
	}

	encoded := EncodeSelectedAttributes(attrs)
	require.NotEmpty(t, encoded)

	decoded := DecodeSelectedAttributes(encoded)
	require.Len(t, decoded, 3)
	// Stored as a slice, so customer-chosen ordering survives.
	assert.Equal(t, attrs, decoded)
}

func TestSelectedAttributesEmpty(t *testing.T) {
	assert.Empty(t, EncodeSelectedAttributes(nil))
	assert.Nil(t, DecodeSelectedAttributes(""))
	assert.Nil(t, DecodeSelectedAttributes("not json"))
}

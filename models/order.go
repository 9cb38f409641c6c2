package models

import (
	"encoding/json"
	"time"
)

type OrderStatus string
type DeliveryType string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusPaymentConfirm OrderStatus = "Payment Confirmed"
	OrderStatusReady          OrderStatus = "Ready"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusCompleted      OrderStatus = "Completed"
	OrderStatusCancelled      OrderStatus = "Cancelled"

	DeliveryPickup   DeliveryType = "Pickup"
	DeliveryDelivery DeliveryType = "Delivery"
)

// statusTransitions is the explicit transition table enforced at the
// ledger boundary. Completed and Cancelled are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusPaymentConfirm, OrderStatusCancelled},
	OrderStatusPaymentConfirm: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:          {OrderStatusOutForDelivery, OrderStatusCancelled},
	OrderStatusOutForDelivery: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:      {},
	OrderStatusCancelled:      {},
}

// ParseOrderStatus maps a request string onto a known status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for status := range statusTransitions {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is immutable after creation except for Status. Delivery and
// customer fields are snapshots taken at checkout.
type Order struct {
	ID               uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber      string       `gorm:"uniqueIndex;not null" json:"order_number"` // ORD-<year>-<5-digit seq>
	UserID           uint         `gorm:"index;not null" json:"user_id"`
	TotalPrice       float64      `gorm:"not null" json:"total_price"`
	Status           OrderStatus  `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	DeliveryType     DeliveryType `gorm:"type:VARCHAR(10);default:'Pickup'" json:"delivery_type"`
	DeliveryLocation string       `json:"delivery_location"`
	CustomerName     string       `json:"customer_name"`
	CustomerPhone    string       `json:"customer_phone"`
	CustomerEmail    string       `json:"customer_email"`
	Items            []OrderItem  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CustomerLabel    string       `gorm:"->;-:migration" json:"customer_label,omitempty"` // joined account name for admin listing
	CreatedAt        time.Time    `json:"created_at"`
}

// OrderItem snapshots product id, quantity and unit price at purchase time;
// later catalog changes never touch it.
type OrderItem struct {
	ID                 uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID            uint    `gorm:"index;not null" json:"order_id"`
	ProductID          uint    `gorm:"not null" json:"product_id"`
	Quantity           int     `gorm:"not null" json:"quantity"`
	Price              float64 `gorm:"not null" json:"price"` // unit price at purchase
	SelectedAttributes string  `json:"-"`                     // serialized attribute selections
}

// SelectedAttribute is one chosen variant value on a line item. A slice
// keeps the display order the client sent, which a map would lose.
type SelectedAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func EncodeSelectedAttributes(attrs []SelectedAttribute) string {
	if len(attrs) == 0 {
		return ""
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return ""
	}
	return string(b)
}

func DecodeSelectedAttributes(raw string) []SelectedAttribute {
	if raw == "" {
		return nil
	}
	var attrs []SelectedAttribute
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		return nil
	}
	return attrs
}

// OrderCounter serializes order-number allocation: one row per calendar
// year, upsert-incremented inside the order transaction.
type OrderCounter struct {
	Year  int `gorm:"primaryKey"`
	Count int `gorm:"not null"`
}

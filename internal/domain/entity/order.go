package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderType selects how the customer receives the order.
type OrderType string

const (
	OrderTypeDineIn OrderType = "dine_in"
	OrderTypePickup OrderType = "pickup"
)

// Valid reports whether t is a known order type.
func (t OrderType) Valid() bool {
	return t == OrderTypeDineIn || t == OrderTypePickup
}

// OrderStatus tracks fulfillment progress. The nominal flow is
// pending -> confirmed -> ready -> complete, but admins may set any status at
// any time; no forward-only sequence is enforced.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusComplete  OrderStatus = "complete"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusReady, OrderStatusComplete:
		return true
	default:
		return false
	}
}

// Order is a customer's submission against one Event.
type Order struct {
	ID            uuid.UUID    `json:"id"`
	EventID       uuid.UUID    `json:"event_id"`
	CustomerName  string       `json:"customer_name"`
	CustomerPhone string       `json:"customer_phone,omitempty"`
	CustomerEmail string       `json:"customer_email,omitempty"`
	Type          OrderType    `json:"type"`
	PickupTime    string       `json:"pickup_time,omitempty"` // free-text preferred pickup time
	Notes         string       `json:"notes,omitempty"`
	Status        OrderStatus  `json:"status"`
	Total         float64      `json:"total"`
	EstimatedWait *int         `json:"estimated_wait_minutes,omitempty"` // advisory, absent when no item had a prep time
	Items         []*OrderItem `json:"items,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// OrderItem is a line-item snapshot belonging to one Order. Name and unit
// price are copied at order time so later menu edits never change historical
// totals.
type OrderItem struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	UnitPrice  float64   `json:"unit_price"`
	Quantity   int       `json:"quantity"` // always > 0 once persisted
}

// LineTotal returns unit price times quantity for this line.
func (i *OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

package usecase

import (
	"context"

	"fryfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderLineInput is one (menu item, quantity) selection in a cart.
type OrderLineInput struct {
	MenuItemID uuid.UUID
	Quantity   int
}

// PlaceOrderInput defines a customer's order submission.
type PlaceOrderInput struct {
	EventID       uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Type          entity.OrderType
	PickupTime    string
	Notes         string
	Lines         []OrderLineInput
}

// UpdateOrderStatusInput sets the fulfillment status of an order.
type UpdateOrderStatusInput struct {
	OrderID uuid.UUID
	Status  entity.OrderStatus
}

// --- Output DTOs ---

// PlaceOrderOutput returns the persisted order after placement.
type PlaceOrderOutput struct {
	Order *entity.Order
	// EmailSent reports whether a confirmation email went out. False when no
	// customer email was supplied or the send failed; either way the order
	// itself succeeded.
	EmailSent bool
}

// OrderUsecase defines the interface for order placement and fulfillment.
type OrderUsecase interface {
	// PlaceOrder validates and persists a customer order, then sends a
	// best-effort confirmation email when a customer email was supplied.
	// Order and line-item writes are sequential and not atomic: a failure
	// after the order row exists leaves it without items and is surfaced as
	// an error.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*PlaceOrderOutput, error)

	// GetOrder retrieves an order with its line items.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListEventOrders retrieves the orders (newest first) for an event the
	// actor manages.
	ListEventOrders(ctx context.Context, actor Actor, eventID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus sets any valid status on an order of an event the
	// actor manages. A transition to ready triggers a best-effort ready email
	// when the order carries a customer email; a send failure never blocks or
	// reverts the status change.
	UpdateOrderStatus(ctx context.Context, actor Actor, input *UpdateOrderStatusInput) (*entity.Order, error)
}

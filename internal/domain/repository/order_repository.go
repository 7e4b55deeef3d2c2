package repository

import (
	"context"

	"fryfinder/internal/domain/entity"
	"fryfinder/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
// Order and order-item creation are deliberately separate calls: the order
// placement flow is not atomic, and a partial failure leaves the order row in
// place and the failure is surfaced to the caller as an error.
type OrderRepository interface {
	// CreateOrder persists a new order record without its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// CreateOrderItems persists line-item snapshots for an order.
	CreateOrderItems(ctx context.Context, items []*entity.OrderItem) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrdersByEvent retrieves all orders (with items) for an event,
	// newest first.
	ListOrdersByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus sets the status of an order.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}

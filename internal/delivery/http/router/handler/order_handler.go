package handler

import (
	"log/slog"
	"net/http"

	"fryfinder/internal/delivery/http/response"
	"fryfinder/internal/domain/entity"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderLineRequest is one cart selection in an order submission.
type OrderLineRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity"`
}

// PlaceOrderRequest represents the request body for placing an order.
type PlaceOrderRequest struct {
	CustomerName  string             `json:"customer_name" validate:"required"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	CustomerEmail string             `json:"customer_email,omitempty" validate:"omitempty,email"`
	OrderType     string             `json:"order_type" validate:"required"`
	PickupTime    string             `json:"pickup_time,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	Items         []OrderLineRequest `json:"items"`
}

// PlaceOrder handles the public order submission for an event.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.PlaceOrderInput{
		EventID:       eventID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Type:          entity.OrderType(req.OrderType),
		PickupTime:    req.PickupTime,
		Notes:         req.Notes,
	}
	for _, line := range req.Items {
		menuItemID, err := uuid.Parse(line.MenuItemID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid menu item ID in cart")
		}
		input.Lines = append(input.Lines, usecase.OrderLineInput{
			MenuItemID: menuItemID,
			Quantity:   line.Quantity,
		})
	}

	output, err := h.orderUC.PlaceOrder(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Order placed successfully")
}

// GetOrder handles retrieving a single order with its items.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListEventOrders handles the admin listing of an event's orders.
func (h *OrderHandler) ListEventOrders(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	orders, err := h.orderUC.ListEventOrders(c.Request().Context(), actor, eventID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateOrderStatusRequest represents the request body for a status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus handles the admin status change on an order.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), actor, &usecase.UpdateOrderStatusInput{
		OrderID: orderID,
		Status:  entity.OrderStatus(req.Status),
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// getActor builds the acting admin from values the auth middleware set.
func (h *OrderHandler) getActor(c echo.Context) (usecase.Actor, error) {
	actor, ok := actorFromContext(c)
	if !ok {
		return usecase.Actor{}, response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin identity in token")
	}

	return actor, nil
}

// handleAppError handles application errors
func (h *OrderHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

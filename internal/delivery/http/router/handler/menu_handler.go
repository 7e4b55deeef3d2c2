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

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler holds dependencies for menu-related handlers.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler.
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// GetMenu handles the public menu view for an event.
// Query parameter order_type optionally narrows to dine_in or pickup items.
func (h *MenuHandler) GetMenu(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	input := &usecase.GetMenuInput{EventID: eventID}
	if raw := c.QueryParam("order_type"); raw != "" {
		orderType := entity.OrderType(raw)
		if !orderType.Valid() {
			return response.BadRequest(c, "INVALID_ORDER_TYPE", "Order type must be dine_in or pickup")
		}
		input.OrderType = &orderType
	}

	menu, err := h.menuUC.GetMenu(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, menu, "Menu retrieved successfully")
}

// MenuItemRequest represents the request body for creating or updating a menu item.
type MenuItemRequest struct {
	EventID     string   `json:"event_id,omitempty"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price" validate:"min=0"`
	Category    string   `json:"category,omitempty"`
	Available   bool     `json:"available"`
	PrepMinutes *int     `json:"prep_minutes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	DineInOnly  bool     `json:"dine_in_only"`
	PickupOnly  bool     `json:"pickup_only"`
}

// ListMenuItems handles the admin listing of every item on an event's menu.
func (h *MenuHandler) ListMenuItems(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	items, err := h.menuUC.ListMenuItems(c.Request().Context(), actor, eventID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Menu items retrieved successfully")
}

// CreateMenuItem handles adding a menu item to an event.
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	var req MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	item, err := h.menuUC.CreateMenuItem(c.Request().Context(), actor, &usecase.CreateMenuItemInput{
		EventID:     eventID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
		PrepMinutes: req.PrepMinutes,
		Tags:        req.Tags,
		DineInOnly:  req.DineInOnly,
		PickupOnly:  req.PickupOnly,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Menu item created successfully")
}

// UpdateMenuItem handles editing an existing menu item.
func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid menu item ID")
	}

	var req MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.menuUC.UpdateMenuItem(c.Request().Context(), actor, &usecase.UpdateMenuItemInput{
		MenuItemID:  itemID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
		PrepMinutes: req.PrepMinutes,
		Tags:        req.Tags,
		DineInOnly:  req.DineInOnly,
		PickupOnly:  req.PickupOnly,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Menu item updated successfully")
}

// DeleteMenuItem handles removing a menu item.
func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid menu item ID")
	}

	if err := h.menuUC.DeleteMenuItem(c.Request().Context(), actor, itemID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu item deleted successfully")
}

// CopyMenuRequest represents the request body for bulk-copying a menu.
type CopyMenuRequest struct {
	ToEventID string `json:"to_event_id" validate:"required"`
}

// CopyMenu handles copying every menu item from one event to another.
func (h *MenuHandler) CopyMenu(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	fromEventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	var req CopyMenuRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid copy input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	toEventID, err := uuid.Parse(req.ToEventID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid destination event ID")
	}

	copied, err := h.menuUC.CopyMenu(c.Request().Context(), actor, &usecase.CopyMenuInput{
		FromEventID: fromEventID,
		ToEventID:   toEventID,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"copied": copied}, "Menu copied successfully")
}

// getActor builds the acting admin from values the auth middleware set.
func (h *MenuHandler) getActor(c echo.Context) (usecase.Actor, error) {
	actor, ok := actorFromContext(c)
	if !ok {
		return usecase.Actor{}, response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin identity in token")
	}

	return actor, nil
}

// handleAppError handles application errors
func (h *MenuHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

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

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// LocationRequest represents the request body for creating or updating a location.
type LocationRequest struct {
	Name         string `json:"name" validate:"required"`
	Street       string `json:"street" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostalCode   string `json:"postal_code" validate:"required"`
	Organization string `json:"organization,omitempty"`
	Description  string `json:"description,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	ContactEmail string `json:"contact_email,omitempty" validate:"omitempty,email"`
	AdminID      string `json:"admin_id,omitempty"` // super-admin only
}

// ListLocations handles the public listing of every location.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	locations, err := h.locationUC.ListLocations(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// GetLocation handles retrieving a single public location.
func (h *LocationHandler) GetLocation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), id)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Location retrieved successfully")
}

// GetManagedLocation handles retrieving the location the admin owns.
func (h *LocationHandler) GetManagedLocation(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	location, err := h.locationUC.GetManagedLocation(c.Request().Context(), actor)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Location retrieved successfully")
}

// CreateLocation handles registering a new location.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateLocationInput{
		Name:         req.Name,
		Street:       req.Street,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Organization: entity.OrganizationType(req.Organization),
		Description:  req.Description,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
	}
	if req.AdminID != "" {
		adminID, err := uuid.Parse(req.AdminID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid admin ID")
		}
		input.AdminID = &adminID
	}

	location, err := h.locationUC.CreateLocation(c.Request().Context(), actor, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, location, "Location created successfully")
}

// UpdateLocation handles updating a managed location.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	location, err := h.locationUC.UpdateLocation(c.Request().Context(), actor, &usecase.UpdateLocationInput{
		LocationID:   locationID,
		Name:         req.Name,
		Street:       req.Street,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Organization: entity.OrganizationType(req.Organization),
		Description:  req.Description,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "Location updated successfully")
}

// getActor builds the acting admin from values the auth middleware set.
func (h *LocationHandler) getActor(c echo.Context) (usecase.Actor, error) {
	actor, ok := actorFromContext(c)
	if !ok {
		return usecase.Actor{}, response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin identity in token")
	}

	return actor, nil
}

// handleAppError handles application errors
func (h *LocationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

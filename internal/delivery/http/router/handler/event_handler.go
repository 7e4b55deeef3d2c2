// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fryfinder/internal/delivery/http/response"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// radiusOptions are the accepted "within N miles" values; zero means no cutoff.
var radiusOptions = map[float64]bool{0: true, 10: true, 25: true, 50: true, 100: true}

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Logger  *slog.Logger
}

// EventHandler holds dependencies for event-related handlers.
type EventHandler struct {
	eventUC usecase.EventUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler.
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		logger:  params.Logger,
	}
}

// SearchResultJSON is one event in a search response.
type SearchResultJSON struct {
	Event         any      `json:"event"`
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
}

// SearchEventsResponse wraps the search result list.
type SearchEventsResponse struct {
	Events         []SearchResultJSON `json:"events"`
	OriginResolved bool               `json:"origin_resolved"`
	Hint           string             `json:"hint,omitempty"`
}

// SearchEvents handles the public event search.
// Query parameters: date (YYYY-MM-DD), origin (postal code or "City, ST"),
// radius (one of 10/25/50/100 miles, empty for all).
func (h *EventHandler) SearchEvents(c echo.Context) error {
	input := &usecase.SearchEventsInput{
		Origin: c.QueryParam("origin"),
	}

	if raw := c.QueryParam("date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Date must be formatted YYYY-MM-DD")
		}
		input.Date = &date
	}

	if raw := c.QueryParam("radius"); raw != "" && raw != "all" {
		radius, err := parseFloat(raw)
		if err != nil || !radiusOptions[radius] {
			return response.BadRequest(c, "INVALID_RADIUS", "Radius must be one of 10, 25, 50, 100")
		}
		input.RadiusMiles = radius
	}

	output, err := h.eventUC.SearchEvents(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	resp := SearchEventsResponse{
		Events:         make([]SearchResultJSON, 0, len(output.Items)),
		OriginResolved: output.OriginResolved,
		Hint:           output.Hint,
	}
	for _, item := range output.Items {
		resp.Events = append(resp.Events, SearchResultJSON{
			Event:         item.Event,
			DistanceMiles: item.DistanceMiles,
		})
	}

	return response.Success(c, http.StatusOK, resp, "Events retrieved successfully")
}

// GetEvent handles retrieving a single public event.
func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	event, err := h.eventUC.GetEvent(c.Request().Context(), id)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event, "Event retrieved successfully")
}

// EventRequest represents the request body for creating or updating an event.
type EventRequest struct {
	LocationID      string `json:"location_id,omitempty"`
	Date            string `json:"date" validate:"required"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
	DineInAvailable bool   `json:"dine_in_available"`
	PickupAvailable bool   `json:"pickup_available"`
	Active          *bool  `json:"active,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// ListLocationEvents handles listing every event of a managed location.
func (h *EventHandler) ListLocationEvents(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	events, err := h.eventUC.ListLocationEvents(c.Request().Context(), actor, locationID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events, "Events retrieved successfully")
}

// CreateEvent handles scheduling a new event.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Date must be formatted YYYY-MM-DD")
	}

	event, err := h.eventUC.CreateEvent(c.Request().Context(), actor, &usecase.CreateEventInput{
		LocationID:      locationID,
		Date:            date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DineInAvailable: req.DineInAvailable,
		PickupAvailable: req.PickupAvailable,
		Notes:           req.Notes,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created successfully")
}

// UpdateEvent handles updating an existing event.
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Date must be formatted YYYY-MM-DD")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	event, err := h.eventUC.UpdateEvent(c.Request().Context(), actor, &usecase.UpdateEventInput{
		EventID:         eventID,
		Date:            date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DineInAvailable: req.DineInAvailable,
		PickupAvailable: req.PickupAvailable,
		Active:          active,
		Notes:           req.Notes,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event, "Event updated successfully")
}

// DeleteEvent handles removing an event.
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	if err := h.eventUC.DeleteEvent(c.Request().Context(), actor, eventID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Event deleted successfully")
}

// DuplicateEventRequest represents the request body for duplicating an event.
type DuplicateEventRequest struct {
	NewDate string `json:"new_date" validate:"required"`
}

// DuplicateEvent handles cloning an event and its menu onto a new date.
func (h *EventHandler) DuplicateEvent(c echo.Context) error {
	actor, err := h.getActor(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	var req DuplicateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid duplication input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	newDate, err := time.Parse(dateLayout, req.NewDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "New date must be formatted YYYY-MM-DD")
	}

	event, err := h.eventUC.DuplicateEvent(c.Request().Context(), actor, &usecase.DuplicateEventInput{
		EventID: eventID,
		NewDate: newDate,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, event, "Event duplicated successfully")
}

// getActor builds the acting admin from values the auth middleware set.
func (h *EventHandler) getActor(c echo.Context) (usecase.Actor, error) {
	actor, ok := actorFromContext(c)
	if !ok {
		return usecase.Actor{}, response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin identity in token")
	}

	return actor, nil
}

// handleAppError handles application errors
func (h *EventHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

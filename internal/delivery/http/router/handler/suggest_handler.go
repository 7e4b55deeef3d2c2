package handler

import (
	"log/slog"
	"net/http"

	"fryfinder/internal/delivery/http/response"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SuggestHandlerParams holds dependencies for SuggestHandler, injected by Fx.
type SuggestHandlerParams struct {
	fx.In

	SuggestUC usecase.SuggestUsecase
	Logger    *slog.Logger
}

// SuggestHandler holds dependencies for the city autocomplete handler.
type SuggestHandler struct {
	suggestUC usecase.SuggestUsecase
	logger    *slog.Logger
}

// NewSuggestHandler is the constructor for SuggestHandler.
func NewSuggestHandler(params SuggestHandlerParams) *SuggestHandler {
	return &SuggestHandler{
		suggestUC: params.SuggestUC,
		logger:    params.Logger,
	}
}

// SuggestCities handles the public city autocomplete.
// Query parameters: state (code or full name) and q (partial city, >=2 chars).
func (h *SuggestHandler) SuggestCities(c echo.Context) error {
	suggestions, err := h.suggestUC.SuggestCities(c.Request().Context(), &usecase.SuggestCitiesInput{
		State:   c.QueryParam("state"),
		Partial: c.QueryParam("q"),
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suggestions, "Suggestions retrieved successfully")
}

// handleAppError handles application errors
func (h *SuggestHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

package middleware

import (
	"log/slog"

	deliverycontext "fryfinder/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestMiddleware assigns each request an ID and a request-scoped logger
// carrying it, so use cases log with the correlating ID.
type RequestMiddleware struct {
	logger *slog.Logger
}

// NewRequestMiddleware creates a new request ID middleware.
func NewRequestMiddleware(logger *slog.Logger) *RequestMiddleware {
	return &RequestMiddleware{logger: logger}
}

// Handle injects the request ID and scoped logger into the request context.
// An inbound X-Request-Id header is honored, otherwise a UUID is generated.
func (m *RequestMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// Package context carries request-scoped values between the delivery layer
// and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyActorID is the key for storing the authenticated admin ID in context.
	KeyActorID ContextKey = "actor_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestID extracts the request ID from the context, or empty string.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithLogger returns a new context with the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault extracts the request-scoped logger from the context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithActorID returns a new context carrying the authenticated admin ID.
func WithActorID(ctx context.Context, adminID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyActorID, adminID)
}

// GetActorID extracts the authenticated admin ID from the context.
func GetActorID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyActorID).(uuid.UUID)

	return id, ok
}

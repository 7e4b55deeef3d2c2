package repository

import (
	"context"
	"time"

	"fryfinder/internal/domain/entity"
	"fryfinder/internal/errors"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the interface for event-related database operations.
type EventRepository interface {
	// CreateEvent persists a new event.
	CreateEvent(ctx context.Context, event *entity.Event) error

	// FindEventByID retrieves an event with its embedded location.
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// ListActiveEvents retrieves all active events with embedded locations,
	// ordered by date then creation time. When from is non-nil only events on
	// or after that date are returned.
	ListActiveEvents(ctx context.Context, from *time.Time) ([]*entity.Event, error)

	// ListEventsByLocation retrieves all events (including inactive) for a location.
	ListEventsByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Event, error)

	// UpdateEvent updates an existing event record.
	UpdateEvent(ctx context.Context, event *entity.Event) error

	// DeleteEvent removes an event by its ID.
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

package usecase

import (
	"context"
	"time"

	"fryfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SearchEventsInput defines the public event-search parameters.
type SearchEventsInput struct {
	// Date limits results to events on exactly this calendar date.
	Date *time.Time
	// Origin is a free-text reference point: a postal code or "City, ST".
	// Empty means no distance annotation or filtering.
	Origin string
	// RadiusMiles drops events farther than this once an origin resolved.
	// Zero means no radius cutoff.
	RadiusMiles float64
}

// CreateEventInput defines the data required to schedule a new event.
type CreateEventInput struct {
	LocationID      uuid.UUID
	Date            time.Time
	StartTime       string
	EndTime         string
	DineInAvailable bool
	PickupAvailable bool
	Notes           string
}

// UpdateEventInput defines the mutable fields of an existing event.
type UpdateEventInput struct {
	EventID         uuid.UUID
	Date            time.Time
	StartTime       string
	EndTime         string
	DineInAvailable bool
	PickupAvailable bool
	Active          bool
	Notes           string
}

// DuplicateEventInput clones an event and its menu onto a new date.
type DuplicateEventInput struct {
	EventID uuid.UUID
	NewDate time.Time
}

// --- Output DTOs ---

// SearchResultItem is one event in a search result, annotated with the
// distance from the resolved origin when one was available.
type SearchResultItem struct {
	Event         *entity.Event
	DistanceMiles *float64
}

// SearchEventsOutput is the ordered result of an event search.
type SearchEventsOutput struct {
	Items []*SearchResultItem
	// OriginResolved reports whether the origin mapped to coordinates.
	OriginResolved bool
	// Hint carries a user-facing message when the origin could not be
	// resolved for a recoverable reason (e.g. a bare city with no state).
	Hint string
}

// EventUsecase defines the interface for event discovery and management.
type EventUsecase interface {
	// SearchEvents filters and sorts active events by date, origin, and radius.
	SearchEvents(ctx context.Context, input *SearchEventsInput) (*SearchEventsOutput, error)

	// GetEvent retrieves a single event with its location.
	GetEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// ListLocationEvents retrieves every event (including inactive) for a
	// location the actor manages.
	ListLocationEvents(ctx context.Context, actor Actor, locationID uuid.UUID) ([]*entity.Event, error)

	// CreateEvent schedules a new event at a location the actor manages.
	CreateEvent(ctx context.Context, actor Actor, input *CreateEventInput) (*entity.Event, error)

	// UpdateEvent updates an event at a location the actor manages.
	UpdateEvent(ctx context.Context, actor Actor, input *UpdateEventInput) (*entity.Event, error)

	// DeleteEvent removes an event at a location the actor manages.
	DeleteEvent(ctx context.Context, actor Actor, id uuid.UUID) error

	// DuplicateEvent clones an event's fields and copies its menu items onto
	// a new event at the given date. The copy is not atomic: a failure
	// partway through leaves the new event with a partial menu and is
	// surfaced as an error.
	DuplicateEvent(ctx context.Context, actor Actor, input *DuplicateEventInput) (*entity.Event, error)
}

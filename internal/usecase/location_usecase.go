package usecase

import (
	"context"

	"fryfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateLocationInput defines the data required to register a location.
type CreateLocationInput struct {
	Name         string
	Street       string
	City         string
	State        string
	PostalCode   string
	Organization entity.OrganizationType
	Description  string
	ContactName  string
	ContactPhone string
	ContactEmail string
	// AdminID assigns an owner at creation time. Super-admins may leave it
	// nil to create an unowned location pending assignment.
	AdminID *uuid.UUID
}

// UpdateLocationInput defines the mutable fields of an existing location.
type UpdateLocationInput struct {
	LocationID   uuid.UUID
	Name         string
	Street       string
	City         string
	State        string
	PostalCode   string
	Organization entity.OrganizationType
	Description  string
	ContactName  string
	ContactPhone string
	ContactEmail string
}

// LocationUsecase defines the interface for location management.
// Locations are never hard-deleted.
type LocationUsecase interface {
	// ListLocations retrieves every location, ordered by name.
	ListLocations(ctx context.Context) ([]*entity.Location, error)

	// GetLocation retrieves a single location.
	GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// GetManagedLocation retrieves the location the actor owns.
	GetManagedLocation(ctx context.Context, actor Actor) (*entity.Location, error)

	// CreateLocation registers a location, geocoding its postal code
	// best-effort (coordinates stay nil when resolution fails). A non-super
	// actor becomes the owner and may own at most one location.
	CreateLocation(ctx context.Context, actor Actor, input *CreateLocationInput) (*entity.Location, error)

	// UpdateLocation updates a location the actor manages, re-geocoding the
	// postal code when it changed.
	UpdateLocation(ctx context.Context, actor Actor, input *UpdateLocationInput) (*entity.Location, error)
}

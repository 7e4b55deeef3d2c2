// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"fryfinder/internal/domain/entity"
	"fryfinder/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrAdminAlreadyOwnsLocation is returned when assigning a location to an admin who already owns one.
	ErrAdminAlreadyOwnsLocation = errors.New("admin already owns a location")
)

// LocationRepository defines the interface for location-related database operations.
type LocationRepository interface {
	// CreateLocation persists a new location.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves a location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindLocationByAdmin retrieves the location owned by the given admin.
	// Returns ErrLocationNotFound when the admin owns no location.
	FindLocationByAdmin(ctx context.Context, adminID uuid.UUID) (*entity.Location, error)

	// ListLocations retrieves all locations ordered by name.
	ListLocations(ctx context.Context) ([]*entity.Location, error)

	// UpdateLocation updates an existing location record.
	UpdateLocation(ctx context.Context, location *entity.Location) error
}

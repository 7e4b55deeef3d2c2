package repository

import (
	"context"

	"fryfinder/internal/domain/entity"
	"fryfinder/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for admin persistence.
var (
	// ErrAdminNotFound is returned when an admin account is not found.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrAdminEmailTaken is returned when registering an email that already exists.
	ErrAdminEmailTaken = errors.New("admin email already registered")
)

// AdminRepository defines the interface for admin-account database operations.
type AdminRepository interface {
	// CreateAdmin persists a new admin account.
	CreateAdmin(ctx context.Context, admin *entity.Admin) error

	// FindAdminByID retrieves an admin by its unique ID.
	FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindAdminByEmail retrieves an admin by email.
	FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
}

package usecase

import (
	"context"

	"fryfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterAdminInput defines the data required to sign up an admin.
type RegisterAdminInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for an admin to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterAdminOutput returns the newly created admin's basic information.
type RegisterAdminOutput struct {
	Admin *entity.Admin
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Admin        *entity.Admin
}

// AdminUsecase defines the interface for admin account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AdminUsecase interface {
	// Register creates a new admin account with a hashed password.
	Register(ctx context.Context, input *RegisterAdminInput) (*RegisterAdminOutput, error)

	// Login verifies credentials and issues access and refresh tokens.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CurrentAdmin retrieves the admin identified by a validated token.
	CurrentAdmin(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error)
}

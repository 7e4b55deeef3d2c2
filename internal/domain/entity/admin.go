package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role names carried in access-token claims.
const (
	RoleAdmin = "admin"
	RoleSuper = "super"
)

// Admin is a back-office user. A super-admin manages all locations; a regular
// admin owns at most one location (via Location.AdminID).
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	SuperAdmin   bool      `json:"super_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Roles returns the role claims for this admin's tokens.
func (a *Admin) Roles() []string {
	if a.SuperAdmin {
		return []string{RoleAdmin, RoleSuper}
	}

	return []string{RoleAdmin}
}

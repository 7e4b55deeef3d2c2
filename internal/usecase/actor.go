// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"fryfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated admin performing an operation.
// Super-admins manage every location; a regular admin is scoped to the
// location they own.
type Actor struct {
	AdminID uuid.UUID
	Super   bool
}

// CanManage reports whether the actor may mutate the given location and its
// events, menu items, and orders.
func (a Actor) CanManage(location *entity.Location) bool {
	if a.Super {
		return true
	}

	return location != nil && location.OwnedBy(a.AdminID)
}

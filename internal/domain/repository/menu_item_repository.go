package repository

import (
	"context"

	"fryfinder/internal/domain/entity"
	"fryfinder/internal/errors"

	"github.com/google/uuid"
)

// ErrMenuItemNotFound is returned when a menu item is not found.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItemRepository defines the interface for menu-item-related database operations.
type MenuItemRepository interface {
	// CreateMenuItem persists a new menu item.
	CreateMenuItem(ctx context.Context, item *entity.MenuItem) error

	// FindMenuItemByID retrieves a menu item by its unique ID.
	FindMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// ListMenuItemsByEvent retrieves all menu items for an event ordered by
	// category then name.
	ListMenuItemsByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.MenuItem, error)

	// FindMenuItemsByIDs retrieves the menu items with the given IDs scoped to one event.
	FindMenuItemsByIDs(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) ([]*entity.MenuItem, error)

	// UpdateMenuItem updates an existing menu item record.
	UpdateMenuItem(ctx context.Context, item *entity.MenuItem) error

	// DeleteMenuItem removes a menu item by its ID.
	DeleteMenuItem(ctx context.Context, id uuid.UUID) error
}

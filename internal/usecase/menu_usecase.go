package usecase

import (
	"context"

	"fryfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// GetMenuInput defines the parameters for the public menu view.
type GetMenuInput struct {
	EventID uuid.UUID
	// OrderType, when set, excludes items unavailable for that mode.
	OrderType *entity.OrderType
}

// CreateMenuItemInput defines the data required to add a menu item.
type CreateMenuItemInput struct {
	EventID     uuid.UUID
	Name        string
	Description string
	Price       float64
	Category    string
	Available   bool
	PrepMinutes *int
	Tags        []string
	DineInOnly  bool
	PickupOnly  bool
}

// UpdateMenuItemInput defines the mutable fields of an existing menu item.
type UpdateMenuItemInput struct {
	MenuItemID  uuid.UUID
	Name        string
	Description string
	Price       float64
	Category    string
	Available   bool
	PrepMinutes *int
	Tags        []string
	DineInOnly  bool
	PickupOnly  bool
}

// CopyMenuInput bulk-copies every menu item from one event to another.
type CopyMenuInput struct {
	FromEventID uuid.UUID
	ToEventID   uuid.UUID
}

// --- Output DTOs ---

// MenuCategoryGroup is one display group of menu items sharing a category.
type MenuCategoryGroup struct {
	Category string
	Items    []*entity.MenuItem
}

// MenuOutput is the grouped menu for an event, in canonical category order.
type MenuOutput struct {
	Groups []*MenuCategoryGroup
}

// MenuUsecase defines the interface for menu browsing and management.
type MenuUsecase interface {
	// GetMenu returns the available menu for an event, filtered by order type
	// when one is given and grouped by category in canonical order.
	GetMenu(ctx context.Context, input *GetMenuInput) (*MenuOutput, error)

	// ListMenuItems returns every menu item of an event the actor manages,
	// including unavailable ones.
	ListMenuItems(ctx context.Context, actor Actor, eventID uuid.UUID) ([]*entity.MenuItem, error)

	// CreateMenuItem adds a menu item to an event the actor manages.
	CreateMenuItem(ctx context.Context, actor Actor, input *CreateMenuItemInput) (*entity.MenuItem, error)

	// UpdateMenuItem updates a menu item of an event the actor manages.
	UpdateMenuItem(ctx context.Context, actor Actor, input *UpdateMenuItemInput) (*entity.MenuItem, error)

	// DeleteMenuItem removes a menu item of an event the actor manages.
	DeleteMenuItem(ctx context.Context, actor Actor, id uuid.UUID) error

	// CopyMenu copies all menu items from one event to another event the
	// actor manages, returning the number of items copied. Not atomic: a
	// failure partway through leaves a partial copy and is surfaced as an
	// error.
	CopyMenu(ctx context.Context, actor Actor, input *CopyMenuInput) (int, error)
}

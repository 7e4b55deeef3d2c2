package impl

import (
	"context"
	"log/slog"

	deliverycontext "fryfinder/internal/delivery/context"
	"fryfinder/internal/domain/entity"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/domain/repository"
	"fryfinder/internal/errors"
	"fryfinder/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// categoryOrder fixes the display order of menu groups. Categories outside
// this list fold into "other".
var categoryOrder = []string{
	entity.CategoryFish,
	entity.CategorySides,
	entity.CategoryDrinks,
	entity.CategoryDesserts,
	entity.CategoryOther,
}

// menuService implements the MenuUsecase interface.
type menuService struct {
	menuItemRepo repository.MenuItemRepository
	eventRepo    repository.EventRepository
	logger       *slog.Logger
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	MenuItemRepo repository.MenuItemRepository
	EventRepo    repository.EventRepository
	Logger       *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		menuItemRepo: params.MenuItemRepo,
		eventRepo:    params.EventRepo,
		logger:       params.Logger,
	}
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMenu returns the available menu for an event, filtered by order type
// when one is given and grouped by category in canonical order.
func (srv *menuService) GetMenu(ctx context.Context, input *usecase.GetMenuInput) (*usecase.MenuOutput, error) {
	if _, err := srv.eventRepo.FindEventByID(ctx, input.EventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to load event for menu")
	}

	items, err := srv.menuItemRepo.ListMenuItemsByEvent(ctx, input.EventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	available := make([]*entity.MenuItem, 0, len(items))
	for _, item := range items {
		if !item.Available {
			continue
		}
		available = append(available, item)
	}

	if input.OrderType != nil {
		available = FilterForOrderType(available, *input.OrderType)
	}

	return &usecase.MenuOutput{Groups: GroupByCategory(available)}, nil
}

// ListMenuItems returns every menu item of an event the actor manages.
func (srv *menuService) ListMenuItems(ctx context.Context, actor usecase.Actor, eventID uuid.UUID) ([]*entity.MenuItem, error) {
	if _, err := srv.managedEvent(ctx, actor, eventID); err != nil {
		return nil, err
	}

	items, err := srv.menuItemRepo.ListMenuItemsByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return items, nil
}

// CreateMenuItem adds a menu item to an event the actor manages.
func (srv *menuService) CreateMenuItem(ctx context.Context, actor usecase.Actor, input *usecase.CreateMenuItemInput) (*entity.MenuItem, error) {
	if _, err := srv.managedEvent(ctx, actor, input.EventID); err != nil {
		return nil, err
	}

	if err := validateMenuItemInput(input.Price, input.DineInOnly, input.PickupOnly); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		EventID:     input.EventID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Available:   input.Available,
		PrepMinutes: input.PrepMinutes,
		Tags:        input.Tags,
		DineInOnly:  input.DineInOnly,
		PickupOnly:  input.PickupOnly,
	}

	if err := srv.menuItemRepo.CreateMenuItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create menu item")
	}

	return item, nil
}

// UpdateMenuItem updates a menu item of an event the actor manages.
func (srv *menuService) UpdateMenuItem(ctx context.Context, actor usecase.Actor, input *usecase.UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := srv.menuItemRepo.FindMenuItemByID(ctx, input.MenuItemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to load menu item")
	}

	if _, err := srv.managedEvent(ctx, actor, item.EventID); err != nil {
		return nil, err
	}

	if err := validateMenuItemInput(input.Price, input.DineInOnly, input.PickupOnly); err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Price = input.Price
	item.Category = input.Category
	item.Available = input.Available
	item.PrepMinutes = input.PrepMinutes
	item.Tags = input.Tags
	item.DineInOnly = input.DineInOnly
	item.PickupOnly = input.PickupOnly

	if err := srv.menuItemRepo.UpdateMenuItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update menu item")
	}

	return item, nil
}

// DeleteMenuItem removes a menu item of an event the actor manages.
func (srv *menuService) DeleteMenuItem(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	item, err := srv.menuItemRepo.FindMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return domainerrors.ErrMenuItemNotFound
		}

		return errors.Wrap(err, "failed to load menu item")
	}

	if _, err := srv.managedEvent(ctx, actor, item.EventID); err != nil {
		return err
	}

	if err := srv.menuItemRepo.DeleteMenuItem(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete menu item")
	}

	return nil
}

// CopyMenu copies all menu items from one event to another. Sequential
// writes, no transaction: a failure partway leaves a partial copy.
func (srv *menuService) CopyMenu(ctx context.Context, actor usecase.Actor, input *usecase.CopyMenuInput) (int, error) {
	if _, err := srv.managedEvent(ctx, actor, input.FromEventID); err != nil {
		return 0, err
	}
	if _, err := srv.managedEvent(ctx, actor, input.ToEventID); err != nil {
		return 0, err
	}

	items, err := srv.menuItemRepo.ListMenuItemsByEvent(ctx, input.FromEventID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load menu items for copy")
	}

	copied := 0
	for _, item := range items {
		clone := *item
		clone.ID = uuid.Nil
		clone.EventID = input.ToEventID

		if err := srv.menuItemRepo.CreateMenuItem(ctx, &clone); err != nil {
			return copied, errors.Wrapf(err, "failed to copy menu item %q", item.Name)
		}
		copied++
	}

	srv.log(ctx).Info("menu copied",
		slog.String("from_event_id", input.FromEventID.String()),
		slog.String("to_event_id", input.ToEventID.String()),
		slog.Int("items", copied))

	return copied, nil
}

// managedEvent loads an event and verifies the actor manages its location.
func (srv *menuService) managedEvent(ctx context.Context, actor usecase.Actor, eventID uuid.UUID) (*entity.Event, error) {
	event, err := srv.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to load event")
	}

	if !actor.CanManage(event.Location) {
		return nil, domainerrors.ErrLocationOwnershipViolation
	}

	return event, nil
}

// validateMenuItemInput rejects negative prices and conflicting mode flags
// before any write happens.
func validateMenuItemInput(price float64, dineInOnly, pickupOnly bool) error {
	if price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if dineInOnly && pickupOnly {
		return domainerrors.ErrValidationFailed.WithDetails("dine-in-only and pickup-only are mutually exclusive")
	}

	return nil
}

// FilterForOrderType drops items unavailable for the given order type. Items
// with neither exclusivity flag pass for both types.
func FilterForOrderType(items []*entity.MenuItem, orderType entity.OrderType) []*entity.MenuItem {
	filtered := make([]*entity.MenuItem, 0, len(items))
	for _, item := range items {
		if item.AvailableFor(orderType) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// GroupByCategory buckets items into canonical display groups. Within a
// group the repository's category+name ordering is preserved. Empty groups
// are omitted.
func GroupByCategory(items []*entity.MenuItem) []*usecase.MenuCategoryGroup {
	buckets := make(map[string][]*entity.MenuItem, len(categoryOrder))
	for _, item := range items {
		category := item.Category
		if !knownCategory(category) {
			category = entity.CategoryOther
		}
		buckets[category] = append(buckets[category], item)
	}

	groups := make([]*usecase.MenuCategoryGroup, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		if bucket := buckets[category]; len(bucket) > 0 {
			groups = append(groups, &usecase.MenuCategoryGroup{
				Category: category,
				Items:    bucket,
			})
		}
	}

	return groups
}

func knownCategory(category string) bool {
	for _, known := range categoryOrder {
		if category == known {
			return true
		}
	}

	return false
}

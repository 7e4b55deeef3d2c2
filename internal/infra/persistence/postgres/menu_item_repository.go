package postgres

import (
	"context"
	"strings"

	"fryfinder/internal/domain/entity"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/domain/repository"
	"fryfinder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// menuItemRepository implements the repository.MenuItemRepository interface.
type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository is the constructor for menuItemRepository.
func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuItemRepository{db: db}
}

// CreateMenuItem persists a new menu item.
func (repo *menuItemRepository) CreateMenuItem(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEventNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindMenuItemByID retrieves a menu item by its unique ID.
func (repo *menuItemRepository) FindMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by ID")
	}

	return toMenuItemDomain(&itemM), nil
}

// ListMenuItemsByEvent retrieves all menu items for an event ordered by
// category then name.
func (repo *menuItemRepository) ListMenuItemsByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel
	err := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("category asc").
		Order("name asc").
		Find(&itemModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items by event")
	}

	return toMenuItemDomainList(itemModels), nil
}

// FindMenuItemsByIDs retrieves the menu items with the given IDs scoped to one event.
func (repo *menuItemRepository) FindMenuItemsByIDs(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) ([]*entity.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var itemModels []*model.MenuItemModel
	err := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Where("id IN ?", ids).
		Find(&itemModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find menu items by IDs")
	}

	return toMenuItemDomainList(itemModels), nil
}

// UpdateMenuItem updates an existing menu item record.
func (repo *menuItemRepository) UpdateMenuItem(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Save(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update menu item")
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// DeleteMenuItem removes a menu item by its ID.
func (repo *menuItemRepository) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MenuItemModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMenuItemDomain converts a GORM MenuItemModel to a domain MenuItem entity.
func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:          data.ID,
		EventID:     data.EventID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		Available:   data.Available,
		PrepMinutes: data.PrepMinutes,
		Tags:        splitTags(data.Tags),
		DineInOnly:  data.DineInOnly,
		PickupOnly:  data.PickupOnly,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toMenuItemDomainList(data []*model.MenuItemModel) []*entity.MenuItem {
	items := make([]*entity.MenuItem, 0, len(data))
	for _, itemM := range data {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items
}

// fromMenuItemDomain converts a domain MenuItem entity to a GORM MenuItemModel.
func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:          data.ID,
		EventID:     data.EventID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		Available:   data.Available,
		PrepMinutes: data.PrepMinutes,
		Tags:        strings.Join(data.Tags, ","),
		DineInOnly:  data.DineInOnly,
		PickupOnly:  data.PickupOnly,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// splitTags parses the comma-delimited tag column back into a slice.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

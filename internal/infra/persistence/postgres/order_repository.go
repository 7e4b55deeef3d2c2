package postgres

import (
	"context"

	"fryfinder/internal/domain/entity"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/domain/repository"
	"fryfinder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists a new order record without its items.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	orderM.Items = nil

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEventNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CreateOrderItems persists line-item snapshots for an order.
func (repo *orderRepository) CreateOrderItems(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, fromOrderItemDomain(item))
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	for i, itemM := range itemModels {
		items[i].ID = itemM.ID
	}

	return nil
}

// FindOrderByID retrieves an order with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ListOrdersByEvent retrieves all orders (with items) for an event, newest first.
func (repo *orderRepository) ListOrdersByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("event_id = ?", eventID).
		Order("created_at desc").
		Find(&orderModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by event")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateOrderStatus sets the status of an order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toOrderItemDomain(itemM))
	}

	return &entity.Order{
		ID:            data.ID,
		EventID:       data.EventID,
		CustomerName:  data.CustomerName,
		CustomerPhone: data.CustomerPhone,
		CustomerEmail: data.CustomerEmail,
		Type:          entity.OrderType(data.OrderType),
		PickupTime:    data.PickupTime,
		Notes:         data.Notes,
		Status:        entity.OrderStatus(data.Status),
		Total:         data.Total,
		EstimatedWait: data.EstimatedWait,
		Items:         items,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:         data.ID,
		OrderID:    data.OrderID,
		MenuItemID: data.MenuItemID,
		Name:       data.Name,
		UnitPrice:  data.UnitPrice,
		Quantity:   data.Quantity,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, fromOrderItemDomain(item))
	}

	return &model.OrderModel{
		ID:            data.ID,
		EventID:       data.EventID,
		CustomerName:  data.CustomerName,
		CustomerPhone: data.CustomerPhone,
		CustomerEmail: data.CustomerEmail,
		OrderType:     string(data.Type),
		PickupTime:    data.PickupTime,
		Notes:         data.Notes,
		Status:        string(data.Status),
		Total:         data.Total,
		EstimatedWait: data.EstimatedWait,
		Items:         items,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromOrderItemDomain converts a domain OrderItem entity to a GORM OrderItemModel.
func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:         data.ID,
		OrderID:    data.OrderID,
		MenuItemID: data.MenuItemID,
		Name:       data.Name,
		UnitPrice:  data.UnitPrice,
		Quantity:   data.Quantity,
	}
}

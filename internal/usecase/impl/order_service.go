package impl

import (
	"context"
	"log/slog"

	deliverycontext "fryfinder/internal/delivery/context"
	"fryfinder/internal/domain/entity"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/domain/repository"
	"fryfinder/internal/domain/service"
	"fryfinder/internal/errors"
	"fryfinder/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo    repository.OrderRepository
	eventRepo    repository.EventRepository
	menuItemRepo repository.MenuItemRepository
	mailer       service.Mailer
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	EventRepo    repository.EventRepository
	MenuItemRepo repository.MenuItemRepository
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:    params.OrderRepo,
		eventRepo:    params.EventRepo,
		menuItemRepo: params.MenuItemRepo,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates and persists a customer order, then sends a
// best-effort confirmation email. The order row and its item rows are
// written sequentially without a transaction: a failure after the order
// exists leaves it without items and surfaces as an error.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if input.CustomerName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("customer name is required")
	}
	if !input.Type.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order type must be dine_in or pickup")
	}

	event, err := srv.eventRepo.FindEventByID(ctx, input.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to load event for order")
	}

	if !event.Active || !event.SupportsOrderType(input.Type) {
		return nil, domainerrors.ErrOrderTypeUnavailable
	}

	lines, err := srv.resolveLines(ctx, event.ID, input.Type, input.Lines)
	if err != nil {
		return nil, err
	}

	total, wait := computeTotals(lines)

	order := &entity.Order{
		EventID:       event.ID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		Type:          input.Type,
		PickupTime:    input.PickupTime,
		Notes:         input.Notes,
		Status:        entity.OrderStatusPending,
		Total:         total,
		EstimatedWait: wait,
	}

	if err := srv.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	items := make([]*entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, &entity.OrderItem{
			OrderID:    order.ID,
			MenuItemID: line.item.ID,
			Name:       line.item.Name,
			UnitPrice:  line.item.Price,
			Quantity:   line.quantity,
		})
	}

	if err := srv.orderRepo.CreateOrderItems(ctx, items); err != nil {
		// The order row already exists; the partial state stays in place.
		return nil, errors.Wrap(err, "failed to create order items")
	}
	order.Items = items

	emailSent := srv.sendConfirmation(ctx, event, order)

	srv.log(ctx).Info("order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("event_id", event.ID.String()),
		slog.Float64("total", order.Total),
		slog.Int("lines", len(items)),
		slog.Bool("email_sent", emailSent))

	return &usecase.PlaceOrderOutput{Order: order, EmailSent: emailSent}, nil
}

// orderLine pairs a priced menu item with the requested quantity.
type orderLine struct {
	item     *entity.MenuItem
	quantity int
}

// resolveLines maps cart selections to menu items, dropping non-positive
// quantities and selections hidden for the chosen order type. An unknown
// menu item ID is a validation failure; an empty resulting cart is allowed.
func (srv *orderService) resolveLines(ctx context.Context, eventID uuid.UUID, orderType entity.OrderType, inputs []usecase.OrderLineInput) ([]orderLine, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, line := range inputs {
		if line.Quantity > 0 {
			ids = append(ids, line.MenuItemID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	items, err := srv.menuItemRepo.FindMenuItemsByIDs(ctx, eventID, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load menu items for order")
	}

	byID := make(map[uuid.UUID]*entity.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	lines := make([]orderLine, 0, len(inputs))
	for _, line := range inputs {
		if line.Quantity <= 0 {
			continue
		}

		item, ok := byID[line.MenuItemID]
		if !ok {
			return nil, domainerrors.ErrMenuItemNotFound.WithDetails("a selected item does not belong to this event")
		}

		// Selections hidden for the chosen order type drop out silently.
		if !item.Available || !item.AvailableFor(orderType) {
			continue
		}

		lines = append(lines, orderLine{item: item, quantity: line.Quantity})
	}

	return lines, nil
}

// sendConfirmation emails the order summary when a customer email was
// supplied. Failures are logged and never fail the placement.
func (srv *orderService) sendConfirmation(ctx context.Context, event *entity.Event, order *entity.Order) bool {
	if order.CustomerEmail == "" {
		return false
	}

	locationName := ""
	if event.Location != nil {
		locationName = event.Location.Name
	}

	confirmation := &service.OrderConfirmation{
		LocationName:  locationName,
		EventDate:     event.Date,
		Total:         order.Total,
		EstimatedWait: order.EstimatedWait,
		PickupTime:    order.PickupTime,
	}
	for _, item := range order.Items {
		confirmation.Lines = append(confirmation.Lines, service.ConfirmationLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if err := srv.mailer.SendOrderConfirmation(ctx, order.CustomerEmail, confirmation); err != nil {
		srv.log(ctx).Warn("order confirmation email failed",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err))

		return false
	}

	return true
}

// GetOrder retrieves an order with its line items.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// ListEventOrders retrieves the orders for an event the actor manages.
func (srv *orderService) ListEventOrders(ctx context.Context, actor usecase.Actor, eventID uuid.UUID) ([]*entity.Order, error) {
	if _, err := srv.managedEvent(ctx, actor, eventID); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListOrdersByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list event orders")
	}

	return orders, nil
}

// UpdateOrderStatus sets any valid status on an order. A transition to ready
// triggers a best-effort ready email when the order has a customer email; a
// send failure never blocks or reverts the change.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, actor usecase.Actor, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !input.Status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status")
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	event, err := srv.managedEvent(ctx, actor, order.EventID)
	if err != nil {
		return nil, err
	}

	if err := srv.orderRepo.UpdateOrderStatus(ctx, order.ID, input.Status); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	becameReady := input.Status == entity.OrderStatusReady && order.Status != entity.OrderStatusReady
	order.Status = input.Status

	if becameReady && order.CustomerEmail != "" {
		locationName := ""
		if event.Location != nil {
			locationName = event.Location.Name
		}

		if err := srv.mailer.SendOrderReady(ctx, order.CustomerEmail, locationName); err != nil {
			srv.log(ctx).Warn("order ready email failed",
				slog.String("order_id", order.ID.String()),
				slog.Any("error", err))
		}
	}

	return order, nil
}

// managedEvent loads an event and verifies the actor manages its location.
func (srv *orderService) managedEvent(ctx context.Context, actor usecase.Actor, eventID uuid.UUID) (*entity.Event, error) {
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

// computeTotals derives the order total and estimated wait from priced
// lines. Wait is the maximum positive prep time among selected items, nil
// when no item specifies one.
func computeTotals(lines []orderLine) (total float64, wait *int) {
	for _, line := range lines {
		total += line.item.Price * float64(line.quantity)

		if line.item.PrepMinutes == nil || *line.item.PrepMinutes <= 0 {
			continue
		}
		if wait == nil || *line.item.PrepMinutes > *wait {
			minutes := *line.item.PrepMinutes
			wait = &minutes
		}
	}

	return total, wait
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fryfinder/internal/domain/entity"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/domain/service"
	mockRepo "fryfinder/internal/mocks/repository"
	mockSvc "fryfinder/internal/mocks/service"
	"fryfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	orderRepo    *mockRepo.MockOrderRepository
	eventRepo    *mockRepo.MockEventRepository
	menuItemRepo *mockRepo.MockMenuItemRepository
	mailer       *mockSvc.MockMailer
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	menuItemRepo := mockRepo.NewMockMenuItemRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		OrderRepo:    orderRepo,
		EventRepo:    eventRepo,
		MenuItemRepo: menuItemRepo,
		Mailer:       mailer,
		Logger:       logger,
	})

	return orderServiceFixtures{
		service:      service,
		orderRepo:    orderRepo,
		eventRepo:    eventRepo,
		menuItemRepo: menuItemRepo,
		mailer:       mailer,
	}
}

func pickupEvent() *entity.Event {
	return &entity.Event{
		ID:              uuid.New(),
		LocationID:      uuid.New(),
		Date:            time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		PickupAvailable: true,
		Active:          true,
		Location: &entity.Location{
			ID:   uuid.New(),
			Name: "St. Cletus Parish",
		},
	}
}

func intPtr(v int) *int { return &v }

func TestOrderService_PlaceOrder_TotalsAndWait(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	event := pickupEvent()

	cod := &entity.MenuItem{
		ID: uuid.New(), EventID: event.ID, Name: "Fried Cod",
		Price: 5.00, Available: true, PrepMinutes: intPtr(10),
	}
	slaw := &entity.MenuItem{
		ID: uuid.New(), EventID: event.ID, Name: "Coleslaw",
		Price: 3.50, Available: true, PrepMinutes: intPtr(20),
	}

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	fx.menuItemRepo.EXPECT().
		FindMenuItemsByIDs(ctx, event.ID, []uuid.UUID{cod.ID, slaw.ID}).
		Return([]*entity.MenuItem{cod, slaw}, nil)

	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	fx.orderRepo.EXPECT().
		CreateOrderItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).
		Return(nil)

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		EventID:      event.ID,
		CustomerName: "Pat Fisher",
		Type:         entity.OrderTypePickup,
		Lines: []usecase.OrderLineInput{
			{MenuItemID: cod.ID, Quantity: 2},
			{MenuItemID: slaw.ID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.InDelta(t, 13.50, output.Order.Total, 0.001)
	require.NotNil(t, output.Order.EstimatedWait)
	assert.Equal(t, 20, *output.Order.EstimatedWait)
	assert.Equal(t, entity.OrderStatusPending, output.Order.Status)
	assert.False(t, output.EmailSent)
	require.Len(t, output.Order.Items, 2)
	assert.Equal(t, "Fried Cod", output.Order.Items[0].Name)
	assert.InDelta(t, 5.00, output.Order.Items[0].UnitPrice, 0.001)
}

func TestOrderService_PlaceOrder_NoPrepTimesMeansNoWait(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	event := pickupEvent()

	soda := &entity.MenuItem{
		ID: uuid.New(), EventID: event.ID, Name: "Soda",
		Price: 1.50, Available: true,
	}

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	fx.menuItemRepo.EXPECT().
		FindMenuItemsByIDs(ctx, event.ID, []uuid.UUID{soda.ID}).
		Return([]*entity.MenuItem{soda}, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.orderRepo.EXPECT().CreateOrderItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		EventID:      event.ID,
		CustomerName: "Pat Fisher",
		Type:         entity.OrderTypePickup,
		Lines:        []usecase.OrderLineInput{{MenuItemID: soda.ID, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Nil(t, output.Order.EstimatedWait)
}

func TestOrderService_PlaceOrder_DropsHiddenAndZeroQuantityLines(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	event := pickupEvent()

	dineInOnly := &entity.MenuItem{
		ID: uuid.New(), EventID: event.ID, Name: "Table Special",
		Price: 9.00, Available: true, DineInOnly: true,
	}
	unavailable := &entity.MenuItem{
		ID: uuid.New(), EventID: event.ID, Name: "Sold Out",
		Price: 6.00, Available: false,
	}
	cod := &entity.MenuItem{
		ID: uuid.New(), EventID: event.ID, Name: "Fried Cod",
		Price: 5.00, Available: true,
	}

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	// The zero-quantity line never reaches the lookup.
	fx.menuItemRepo.EXPECT().
		FindMenuItemsByIDs(ctx, event.ID, []uuid.UUID{dineInOnly.ID, unavailable.ID, cod.ID}).
		Return([]*entity.MenuItem{dineInOnly, unavailable, cod}, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.orderRepo.EXPECT().
		CreateOrderItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).
		Run(func(ctx context.Context, items []*entity.OrderItem) {
			require.Len(t, items, 1)
			assert.Equal(t, cod.ID, items[0].MenuItemID)
		}).
		Return(nil)

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		EventID:      event.ID,
		CustomerName: "Pat Fisher",
		Type:         entity.OrderTypePickup,
		Lines: []usecase.OrderLineInput{
			{MenuItemID: dineInOnly.ID, Quantity: 1},
			{MenuItemID: unavailable.ID, Quantity: 2},
			{MenuItemID: cod.ID, Quantity: 1},
			{MenuItemID: uuid.New(), Quantity: 0},
		},
	})

	require.NoError(t, err)
	assert.InDelta(t, 5.00, output.Order.Total, 0.001)
}

func TestOrderService_PlaceOrder_UnknownItemRejected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	event := pickupEvent()
	unknownID := uuid.New()

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	fx.menuItemRepo.EXPECT().
		FindMenuItemsByIDs(ctx, event.ID, []uuid.UUID{unknownID}).
		Return(nil, nil)

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		EventID:      event.ID,
		CustomerName: "Pat Fisher",
		Type:         entity.OrderTypePickup,
		Lines:        []usecase.OrderLineInput{{MenuItemID: unknownID, Quantity: 1}},
	})

	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrMenuItemNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_PlaceOrder_UnsupportedTypeRejected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	event := pickupEvent()
	event.PickupAvailable = false
	event.DineInAvailable = true

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		EventID:      event.ID,
		CustomerName: "Pat Fisher",
		Type:         entity.OrderTypePickup,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderTypeUnavailable))
}

func TestOrderService_PlaceOrder_InactiveEventRejected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	event := pickupEvent()
	event.Active = false

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		EventID:      event.ID,
		CustomerName: "Pat Fisher",
		Type:         entity.OrderTypePickup,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderTypeUnavailable))
}

func TestOrderService_PlaceOrder_MissingNameRejected(t *testing.T) {
	fx := createTestOrderService(t)

	output, err := fx.service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		EventID: uuid.New(),
		Type:    entity.OrderTypePickup,
	})

	assert.Nil(t, output)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_PlaceOrder_EmptyCartAllowed(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	event := pickupEvent()

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.orderRepo.EXPECT().CreateOrderItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		EventID:      event.ID,
		CustomerName: "Pat Fisher",
		Type:         entity.OrderTypePickup,
		Lines:        []usecase.OrderLineInput{{MenuItemID: uuid.New(), Quantity: 0}},
	})

	require.NoError(t, err)
	assert.Zero(t, output.Order.Total)
	assert.Nil(t, output.Order.EstimatedWait)
	assert.Empty(t, output.Order.Items)
}

func TestOrderService_PlaceOrder_ConfirmationEmailSent(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	event := pickupEvent()

	cod := &entity.MenuItem{
		ID: uuid.New(), EventID: event.ID, Name: "Fried Cod",
		Price: 5.00, Available: true,
	}

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	fx.menuItemRepo.EXPECT().
		FindMenuItemsByIDs(ctx, event.ID, []uuid.UUID{cod.ID}).
		Return([]*entity.MenuItem{cod}, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.orderRepo.EXPECT().CreateOrderItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)

	fx.mailer.EXPECT().
		SendOrderConfirmation(ctx, "pat@example.com", mock.AnythingOfType("*service.OrderConfirmation")).
		Run(func(ctx context.Context, to string, confirmation *service.OrderConfirmation) {
			assert.Equal(t, "St. Cletus Parish", confirmation.LocationName)
			require.Len(t, confirmation.Lines, 1)
			assert.Equal(t, "Fried Cod", confirmation.Lines[0].Name)
		}).
		Return(nil)

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		EventID:       event.ID,
		CustomerName:  "Pat Fisher",
		CustomerEmail: "pat@example.com",
		Type:          entity.OrderTypePickup,
		Lines:         []usecase.OrderLineInput{{MenuItemID: cod.ID, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.True(t, output.EmailSent)
}

func TestOrderService_PlaceOrder_EmailFailureDoesNotFailOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	event := pickupEvent()

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.orderRepo.EXPECT().CreateOrderItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).Return(nil)

	fx.mailer.EXPECT().
		SendOrderConfirmation(ctx, "pat@example.com", mock.AnythingOfType("*service.OrderConfirmation")).
		Return(errors.New("smtp unreachable"))

	output, err := fx.service.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		EventID:       event.ID,
		CustomerName:  "Pat Fisher",
		CustomerEmail: "pat@example.com",
		Type:          entity.OrderTypePickup,
	})

	require.NoError(t, err)
	assert.False(t, output.EmailSent)
}

func managedOrderEvent(adminID uuid.UUID) *entity.Event {
	event := pickupEvent()
	event.Location.AdminID = &adminID

	return event
}

func TestOrderService_UpdateOrderStatus_ReadySendsEmail(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	adminID := uuid.New()
	actor := usecase.Actor{AdminID: adminID}
	event := managedOrderEvent(adminID)

	order := &entity.Order{
		ID:            uuid.New(),
		EventID:       event.ID,
		CustomerEmail: "pat@example.com",
		Status:        entity.OrderStatusConfirmed,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusReady).Return(nil)
	fx.mailer.EXPECT().SendOrderReady(ctx, "pat@example.com", "St. Cletus Parish").Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, actor, &usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		Status:  entity.OrderStatusReady,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReady, updated.Status)
}

func TestOrderService_UpdateOrderStatus_AlreadyReadySendsNothing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	adminID := uuid.New()
	actor := usecase.Actor{AdminID: adminID}
	event := managedOrderEvent(adminID)

	order := &entity.Order{
		ID:            uuid.New(),
		EventID:       event.ID,
		CustomerEmail: "pat@example.com",
		Status:        entity.OrderStatusReady,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusReady).Return(nil)

	_, err := fx.service.UpdateOrderStatus(ctx, actor, &usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		Status:  entity.OrderStatusReady,
	})

	require.NoError(t, err)
}

func TestOrderService_UpdateOrderStatus_NoEmailAddressSendsNothing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	adminID := uuid.New()
	actor := usecase.Actor{AdminID: adminID}
	event := managedOrderEvent(adminID)

	order := &entity.Order{
		ID:      uuid.New(),
		EventID: event.ID,
		Status:  entity.OrderStatusPending,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusReady).Return(nil)

	_, err := fx.service.UpdateOrderStatus(ctx, actor, &usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		Status:  entity.OrderStatusReady,
	})

	require.NoError(t, err)
}

func TestOrderService_UpdateOrderStatus_ReadyEmailFailureKeptNonFatal(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	adminID := uuid.New()
	actor := usecase.Actor{AdminID: adminID}
	event := managedOrderEvent(adminID)

	order := &entity.Order{
		ID:            uuid.New(),
		EventID:       event.ID,
		CustomerEmail: "pat@example.com",
		Status:        entity.OrderStatusPending,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusReady).Return(nil)
	fx.mailer.EXPECT().SendOrderReady(ctx, "pat@example.com", "St. Cletus Parish").Return(errors.New("smtp unreachable"))

	updated, err := fx.service.UpdateOrderStatus(ctx, actor, &usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		Status:  entity.OrderStatusReady,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReady, updated.Status)
}

func TestOrderService_UpdateOrderStatus_BackwardsTransitionAllowed(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	adminID := uuid.New()
	actor := usecase.Actor{AdminID: adminID}
	event := managedOrderEvent(adminID)

	order := &entity.Order{
		ID:      uuid.New(),
		EventID: event.ID,
		Status:  entity.OrderStatusComplete,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending).Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, actor, &usecase.UpdateOrderStatusInput{
		OrderID: order.ID,
		Status:  entity.OrderStatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, updated.Status)
}

func TestOrderService_UpdateOrderStatus_UnknownStatusRejected(t *testing.T) {
	fx := createTestOrderService(t)

	updated, err := fx.service.UpdateOrderStatus(context.Background(), usecase.Actor{AdminID: uuid.New()}, &usecase.UpdateOrderStatusInput{
		OrderID: uuid.New(),
		Status:  entity.OrderStatus("shipped"),
	})

	assert.Nil(t, updated)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_ListEventOrders_ForeignEventRejected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	actor := usecase.Actor{AdminID: uuid.New()}
	event := managedOrderEvent(ownerID)

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)

	orders, err := fx.service.ListEventOrders(ctx, actor, event.ID)

	assert.Nil(t, orders)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationOwnershipViolation))
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fryfinder/internal/domain/entity"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/domain/repository"
	mockRepo "fryfinder/internal/mocks/repository"
	"fryfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// menuServiceFixtures holds all test dependencies for menu service tests.
type menuServiceFixtures struct {
	service      usecase.MenuUsecase
	menuItemRepo *mockRepo.MockMenuItemRepository
	eventRepo    *mockRepo.MockEventRepository
}

func createTestMenuService(t *testing.T) menuServiceFixtures {
	menuItemRepo := mockRepo.NewMockMenuItemRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMenuService(MenuServiceParams{
		MenuItemRepo: menuItemRepo,
		EventRepo:    eventRepo,
		Logger:       logger,
	})

	return menuServiceFixtures{
		service:      service,
		menuItemRepo: menuItemRepo,
		eventRepo:    eventRepo,
	}
}

func menuEvent(adminID uuid.UUID) *entity.Event {
	return &entity.Event{
		ID:         uuid.New(),
		LocationID: uuid.New(),
		Date:       time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		Active:     true,
		Location: &entity.Location{
			ID:      uuid.New(),
			AdminID: &adminID,
		},
	}
}

func TestMenuService_GetMenu_GroupsAndFilters(t *testing.T) {
	fx := createTestMenuService(t)

	ctx := context.Background()
	event := menuEvent(uuid.New())

	cod := &entity.MenuItem{ID: uuid.New(), EventID: event.ID, Name: "Fried Cod", Category: entity.CategoryFish, Available: true}
	slaw := &entity.MenuItem{ID: uuid.New(), EventID: event.ID, Name: "Coleslaw", Category: entity.CategorySides, Available: true}
	hidden := &entity.MenuItem{ID: uuid.New(), EventID: event.ID, Name: "Sold Out", Category: entity.CategoryFish, Available: false}
	dineInOnly := &entity.MenuItem{ID: uuid.New(), EventID: event.ID, Name: "Table Special", Category: entity.CategoryFish, Available: true, DineInOnly: true}
	oddball := &entity.MenuItem{ID: uuid.New(), EventID: event.ID, Name: "Raffle Ticket", Category: "merch", Available: true}

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	fx.menuItemRepo.EXPECT().
		ListMenuItemsByEvent(ctx, event.ID).
		Return([]*entity.MenuItem{cod, slaw, hidden, dineInOnly, oddball}, nil)

	orderType := entity.OrderTypePickup
	output, err := fx.service.GetMenu(ctx, &usecase.GetMenuInput{
		EventID:   event.ID,
		OrderType: &orderType,
	})

	require.NoError(t, err)
	require.Len(t, output.Groups, 3)

	assert.Equal(t, entity.CategoryFish, output.Groups[0].Category)
	require.Len(t, output.Groups[0].Items, 1)
	assert.Equal(t, "Fried Cod", output.Groups[0].Items[0].Name)

	assert.Equal(t, entity.CategorySides, output.Groups[1].Category)

	// Unknown categories fold into "other".
	assert.Equal(t, entity.CategoryOther, output.Groups[2].Category)
	require.Len(t, output.Groups[2].Items, 1)
	assert.Equal(t, "Raffle Ticket", output.Groups[2].Items[0].Name)
}

func TestMenuService_GetMenu_EventNotFound(t *testing.T) {
	fx := createTestMenuService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.eventRepo.EXPECT().FindEventByID(ctx, id).Return(nil, repository.ErrEventNotFound)

	output, err := fx.service.GetMenu(ctx, &usecase.GetMenuInput{EventID: id})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEventNotFound))
}

func TestMenuService_CreateMenuItem_NegativePriceRejected(t *testing.T) {
	fx := createTestMenuService(t)

	ctx := context.Background()
	adminID := uuid.New()
	event := menuEvent(adminID)
	actor := usecase.Actor{AdminID: adminID}

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)

	item, err := fx.service.CreateMenuItem(ctx, actor, &usecase.CreateMenuItemInput{
		EventID:  event.ID,
		Name:     "Fried Cod",
		Price:    -1,
		Category: entity.CategoryFish,
	})

	assert.Nil(t, item)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestMenuService_CreateMenuItem_ConflictingFlagsRejected(t *testing.T) {
	fx := createTestMenuService(t)

	ctx := context.Background()
	adminID := uuid.New()
	event := menuEvent(adminID)
	actor := usecase.Actor{AdminID: adminID}

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)

	item, err := fx.service.CreateMenuItem(ctx, actor, &usecase.CreateMenuItemInput{
		EventID:    event.ID,
		Name:       "Fried Cod",
		Price:      12,
		Category:   entity.CategoryFish,
		DineInOnly: true,
		PickupOnly: true,
	})

	assert.Nil(t, item)
	assert.Error(t, err)
}

func TestMenuService_CreateMenuItem_Success(t *testing.T) {
	fx := createTestMenuService(t)

	ctx := context.Background()
	adminID := uuid.New()
	event := menuEvent(adminID)
	actor := usecase.Actor{AdminID: adminID}

	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)
	fx.menuItemRepo.EXPECT().
		CreateMenuItem(ctx, mock.AnythingOfType("*entity.MenuItem")).
		Run(func(ctx context.Context, item *entity.MenuItem) {
			item.ID = uuid.New()
		}).
		Return(nil)

	item, err := fx.service.CreateMenuItem(ctx, actor, &usecase.CreateMenuItemInput{
		EventID:   event.ID,
		Name:      "Fried Cod",
		Price:     12,
		Category:  entity.CategoryFish,
		Available: true,
		Tags:      []string{"Gluten Free"},
	})

	require.NoError(t, err)
	assert.Equal(t, event.ID, item.EventID)
	assert.Equal(t, []string{"Gluten Free"}, item.Tags)
}

func TestMenuService_DeleteMenuItem_ForeignEventRejected(t *testing.T) {
	fx := createTestMenuService(t)

	ctx := context.Background()
	event := menuEvent(uuid.New())
	actor := usecase.Actor{AdminID: uuid.New()}

	item := &entity.MenuItem{ID: uuid.New(), EventID: event.ID}

	fx.menuItemRepo.EXPECT().FindMenuItemByID(ctx, item.ID).Return(item, nil)
	fx.eventRepo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil)

	err := fx.service.DeleteMenuItem(ctx, actor, item.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrLocationOwnershipViolation))
}

func TestMenuService_CopyMenu_CopiesAllItems(t *testing.T) {
	fx := createTestMenuService(t)

	ctx := context.Background()
	adminID := uuid.New()
	actor := usecase.Actor{AdminID: adminID}
	from := menuEvent(adminID)
	to := menuEvent(adminID)

	items := []*entity.MenuItem{
		{ID: uuid.New(), EventID: from.ID, Name: "Fried Cod", Price: 12},
		{ID: uuid.New(), EventID: from.ID, Name: "Coleslaw", Price: 3.5},
		{ID: uuid.New(), EventID: from.ID, Name: "Soda", Price: 1.5},
	}

	fx.eventRepo.EXPECT().FindEventByID(ctx, from.ID).Return(from, nil)
	fx.eventRepo.EXPECT().FindEventByID(ctx, to.ID).Return(to, nil)
	fx.menuItemRepo.EXPECT().ListMenuItemsByEvent(ctx, from.ID).Return(items, nil)
	fx.menuItemRepo.EXPECT().
		CreateMenuItem(ctx, mock.AnythingOfType("*entity.MenuItem")).
		Run(func(ctx context.Context, item *entity.MenuItem) {
			assert.Equal(t, to.ID, item.EventID)
			assert.Equal(t, uuid.Nil, item.ID)
		}).
		Return(nil).
		Times(3)

	copied, err := fx.service.CopyMenu(ctx, actor, &usecase.CopyMenuInput{
		FromEventID: from.ID,
		ToEventID:   to.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, copied)
}

func TestMenuService_CopyMenu_TargetMustBeManaged(t *testing.T) {
	fx := createTestMenuService(t)

	ctx := context.Background()
	adminID := uuid.New()
	actor := usecase.Actor{AdminID: adminID}
	from := menuEvent(adminID)
	to := menuEvent(uuid.New())

	fx.eventRepo.EXPECT().FindEventByID(ctx, from.ID).Return(from, nil)
	fx.eventRepo.EXPECT().FindEventByID(ctx, to.ID).Return(to, nil)

	copied, err := fx.service.CopyMenu(ctx, actor, &usecase.CopyMenuInput{
		FromEventID: from.ID,
		ToEventID:   to.ID,
	})

	assert.Zero(t, copied)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationOwnershipViolation))
}

func TestGroupByCategory_EmptyGroupsOmitted(t *testing.T) {
	items := []*entity.MenuItem{
		{Name: "Brownie", Category: entity.CategoryDesserts},
	}

	groups := GroupByCategory(items)

	require.Len(t, groups, 1)
	assert.Equal(t, entity.CategoryDesserts, groups[0].Category)
}

func TestFilterForOrderType_BothModesPass(t *testing.T) {
	both := &entity.MenuItem{Name: "Fried Cod"}
	pickupOnly := &entity.MenuItem{Name: "Family Pack", PickupOnly: true}
	dineInOnly := &entity.MenuItem{Name: "Table Special", DineInOnly: true}

	dineIn := FilterForOrderType([]*entity.MenuItem{both, pickupOnly, dineInOnly}, entity.OrderTypeDineIn)
	require.Len(t, dineIn, 2)
	assert.Equal(t, "Fried Cod", dineIn[0].Name)
	assert.Equal(t, "Table Special", dineIn[1].Name)

	pickup := FilterForOrderType([]*entity.MenuItem{both, pickupOnly, dineInOnly}, entity.OrderTypePickup)
	require.Len(t, pickup, 2)
	assert.Equal(t, "Fried Cod", pickup[0].Name)
	assert.Equal(t, "Family Pack", pickup[1].Name)
}

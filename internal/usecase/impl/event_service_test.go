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
	mockSvc "fryfinder/internal/mocks/service"
	"fryfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// eventServiceFixtures holds all test dependencies for event service tests.
type eventServiceFixtures struct {
	service      usecase.EventUsecase
	eventRepo    *mockRepo.MockEventRepository
	locationRepo *mockRepo.MockLocationRepository
	menuItemRepo *mockRepo.MockMenuItemRepository
	geocoder     *mockSvc.MockGeocoder
}

func createTestEventService(t *testing.T) eventServiceFixtures {
	eventRepo := mockRepo.NewMockEventRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	menuItemRepo := mockRepo.NewMockMenuItemRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewEventService(EventServiceParams{
		EventRepo:    eventRepo,
		LocationRepo: locationRepo,
		MenuItemRepo: menuItemRepo,
		Geocoder:     geocoder,
		Logger:       logger,
	})

	return eventServiceFixtures{
		service:      service,
		eventRepo:    eventRepo,
		locationRepo: locationRepo,
		menuItemRepo: menuItemRepo,
		geocoder:     geocoder,
	}
}

func eventAt(city, state string, lat, lng float64) *entity.Event {
	return &entity.Event{
		ID:         uuid.New(),
		LocationID: uuid.New(),
		Date:       time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		Active:     true,
		Location: &entity.Location{
			ID:          uuid.New(),
			Name:        city + " Parish",
			City:        city,
			State:       state,
			Coordinates: &entity.Coordinates{Latitude: lat, Longitude: lng},
		},
	}
}

func TestEventService_SearchEvents_NoOrigin(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	events := []*entity.Event{
		eventAt("Saint Louis", "MO", 38.6270, -90.1994),
		eventAt("Chicago", "IL", 41.8781, -87.6298),
	}

	fx.eventRepo.EXPECT().
		ListActiveEvents(ctx, mock.AnythingOfType("*time.Time")).
		Return(events, nil)

	output, err := fx.service.SearchEvents(ctx, &usecase.SearchEventsInput{})

	require.NoError(t, err)
	assert.False(t, output.OriginResolved)
	assert.Empty(t, output.Hint)
	require.Len(t, output.Items, 2)
	assert.Nil(t, output.Items[0].DistanceMiles)
	assert.Equal(t, events[0].ID, output.Items[0].Event.ID)
}

func TestEventService_SearchEvents_ExactDateFilter(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	date := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	onDate := eventAt("Saint Louis", "MO", 38.6270, -90.1994)
	later := eventAt("Saint Louis", "MO", 38.6270, -90.1994)
	later.Date = date.AddDate(0, 0, 7)

	fx.eventRepo.EXPECT().
		ListActiveEvents(ctx, &date).
		Return([]*entity.Event{onDate, later}, nil)

	output, err := fx.service.SearchEvents(ctx, &usecase.SearchEventsInput{Date: &date})

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, onDate.ID, output.Items[0].Event.ID)
}

func TestEventService_SearchEvents_PostalOriginSortsByDistance(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	far := eventAt("Chicago", "IL", 41.8781, -87.6298)
	near := eventAt("Saint Charles", "MO", 38.7881, -90.4974)
	noCoords := eventAt("Columbia", "MO", 0, 0)
	noCoords.Location.Coordinates = nil

	fx.eventRepo.EXPECT().
		ListActiveEvents(ctx, mock.AnythingOfType("*time.Time")).
		Return([]*entity.Event{far, near, noCoords}, nil)

	// Downtown Saint Louis.
	fx.geocoder.EXPECT().
		ResolvePostalCode(ctx, "63101").
		Return(&entity.Coordinates{Latitude: 38.6270, Longitude: -90.1994})

	output, err := fx.service.SearchEvents(ctx, &usecase.SearchEventsInput{Origin: "63101"})

	require.NoError(t, err)
	assert.True(t, output.OriginResolved)
	require.Len(t, output.Items, 3)
	assert.Equal(t, near.ID, output.Items[0].Event.ID)
	assert.Equal(t, far.ID, output.Items[1].Event.ID)
	// Events without coordinates always sort last and carry no distance.
	assert.Equal(t, noCoords.ID, output.Items[2].Event.ID)
	assert.Nil(t, output.Items[2].DistanceMiles)

	require.NotNil(t, output.Items[0].DistanceMiles)
	require.NotNil(t, output.Items[1].DistanceMiles)
	assert.Less(t, *output.Items[0].DistanceMiles, *output.Items[1].DistanceMiles)
}

func TestEventService_SearchEvents_RadiusFilter(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	near := eventAt("Clayton", "MO", 38.6426, -90.3237)
	far := eventAt("Chicago", "IL", 41.8781, -87.6298)
	noCoords := eventAt("Columbia", "MO", 0, 0)
	noCoords.Location.Coordinates = nil

	fx.eventRepo.EXPECT().
		ListActiveEvents(ctx, mock.AnythingOfType("*time.Time")).
		Return([]*entity.Event{far, near, noCoords}, nil)

	fx.geocoder.EXPECT().
		ResolvePostalCode(ctx, "63101").
		Return(&entity.Coordinates{Latitude: 38.6270, Longitude: -90.1994})

	output, err := fx.service.SearchEvents(ctx, &usecase.SearchEventsInput{
		Origin:      "63101",
		RadiusMiles: 10,
	})

	require.NoError(t, err)
	// Clayton is ~7 miles out; Chicago and the coordinate-less event drop.
	require.Len(t, output.Items, 1)
	assert.Equal(t, near.ID, output.Items[0].Event.ID)
}

func TestEventService_SearchEvents_EqualDistancesKeepOriginalOrder(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	first := eventAt("Saint Louis", "MO", 38.6270, -90.1994)
	second := eventAt("Saint Louis", "MO", 38.6270, -90.1994)
	third := eventAt("Saint Louis", "MO", 38.6270, -90.1994)

	fx.eventRepo.EXPECT().
		ListActiveEvents(ctx, mock.AnythingOfType("*time.Time")).
		Return([]*entity.Event{first, second, third}, nil)

	fx.geocoder.EXPECT().
		ResolvePostalCode(ctx, "63101").
		Return(&entity.Coordinates{Latitude: 38.6270, Longitude: -90.1994})

	output, err := fx.service.SearchEvents(ctx, &usecase.SearchEventsInput{Origin: "63101"})

	require.NoError(t, err)
	require.Len(t, output.Items, 3)
	assert.Equal(t, first.ID, output.Items[0].Event.ID)
	assert.Equal(t, second.ID, output.Items[1].Event.ID)
	assert.Equal(t, third.ID, output.Items[2].Event.ID)
}

func TestEventService_SearchEvents_CityWithStateResolves(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	event := eventAt("Saint Louis", "MO", 38.6270, -90.1994)

	fx.eventRepo.EXPECT().
		ListActiveEvents(ctx, mock.AnythingOfType("*time.Time")).
		Return([]*entity.Event{event}, nil)

	fx.geocoder.EXPECT().
		ResolveCity(ctx, "St. Louis", "MO").
		Return(&entity.Coordinates{Latitude: 38.6270, Longitude: -90.1994})

	output, err := fx.service.SearchEvents(ctx, &usecase.SearchEventsInput{Origin: "St. Louis, MO"})

	require.NoError(t, err)
	assert.True(t, output.OriginResolved)
	require.Len(t, output.Items, 1)
	require.NotNil(t, output.Items[0].DistanceMiles)
	assert.InDelta(t, 0, *output.Items[0].DistanceMiles, 0.01)
}

func TestEventService_SearchEvents_BareCityBorrowsEventState(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	event := eventAt("Saint Louis", "MO", 38.6270, -90.1994)

	fx.eventRepo.EXPECT().
		ListActiveEvents(ctx, mock.AnythingOfType("*time.Time")).
		Return([]*entity.Event{event}, nil)

	// "st louis" fuzzily matches the event's city, so its state fills in.
	fx.geocoder.EXPECT().
		ResolveCity(ctx, "st louis", "MO").
		Return(&entity.Coordinates{Latitude: 38.6270, Longitude: -90.1994})

	output, err := fx.service.SearchEvents(ctx, &usecase.SearchEventsInput{Origin: "st louis"})

	require.NoError(t, err)
	assert.True(t, output.OriginResolved)
}

func TestEventService_SearchEvents_BareCityWithoutStateHints(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	event := eventAt("Saint Louis", "MO", 38.6270, -90.1994)

	fx.eventRepo.EXPECT().
		ListActiveEvents(ctx, mock.AnythingOfType("*time.Time")).
		Return([]*entity.Event{event}, nil)

	output, err := fx.service.SearchEvents(ctx, &usecase.SearchEventsInput{Origin: "Peoria"})

	require.NoError(t, err)
	assert.False(t, output.OriginResolved)
	assert.Contains(t, output.Hint, "Peoria")
	require.Len(t, output.Items, 1)
	assert.Nil(t, output.Items[0].DistanceMiles)
}

func TestEventService_SearchEvents_UnresolvedPostalKeepsPlainListing(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	event := eventAt("Saint Louis", "MO", 38.6270, -90.1994)

	fx.eventRepo.EXPECT().
		ListActiveEvents(ctx, mock.AnythingOfType("*time.Time")).
		Return([]*entity.Event{event}, nil)

	fx.geocoder.EXPECT().
		ResolvePostalCode(ctx, "00000").
		Return(nil)

	output, err := fx.service.SearchEvents(ctx, &usecase.SearchEventsInput{Origin: "00000", RadiusMiles: 25})

	require.NoError(t, err)
	assert.False(t, output.OriginResolved)
	// No origin means no radius cutoff either.
	require.Len(t, output.Items, 1)
}

func TestEventService_GetEvent_NotFound(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.eventRepo.EXPECT().
		FindEventByID(ctx, id).
		Return(nil, repository.ErrEventNotFound)

	event, err := fx.service.GetEvent(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, event)
	assert.True(t, errors.Is(err, domainerrors.ErrEventNotFound))
}

func TestEventService_CreateEvent_OwnLocation(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	adminID := uuid.New()
	locationID := uuid.New()
	actor := usecase.Actor{AdminID: adminID}

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(&entity.Location{ID: locationID, AdminID: &adminID}, nil)

	fx.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.Event")).
		Run(func(ctx context.Context, event *entity.Event) {
			event.ID = uuid.New()
		}).
		Return(nil)

	event, err := fx.service.CreateEvent(ctx, actor, &usecase.CreateEventInput{
		LocationID:      locationID,
		Date:            time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		PickupAvailable: true,
	})

	require.NoError(t, err)
	assert.True(t, event.Active)
	assert.Equal(t, locationID, event.LocationID)
}

func TestEventService_CreateEvent_ForeignLocationRejected(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	locationID := uuid.New()
	actor := usecase.Actor{AdminID: uuid.New()}

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(&entity.Location{ID: locationID, AdminID: &ownerID}, nil)

	event, err := fx.service.CreateEvent(ctx, actor, &usecase.CreateEventInput{
		LocationID: locationID,
		Date:       time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
	})

	assert.Error(t, err)
	assert.Nil(t, event)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationOwnershipViolation))
}

func TestEventService_CreateEvent_SuperAdminAnyLocation(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	locationID := uuid.New()
	actor := usecase.Actor{AdminID: uuid.New(), Super: true}

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(&entity.Location{ID: locationID, AdminID: &ownerID}, nil)

	fx.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.Event")).
		Return(nil)

	_, err := fx.service.CreateEvent(ctx, actor, &usecase.CreateEventInput{
		LocationID: locationID,
		Date:       time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
}

func TestEventService_DuplicateEvent_CopiesMenu(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	adminID := uuid.New()
	actor := usecase.Actor{AdminID: adminID}

	source := eventAt("Saint Louis", "MO", 38.6270, -90.1994)
	source.Location.AdminID = &adminID
	source.StartTime = "16:00"
	source.DineInAvailable = true

	newDate := source.Date.AddDate(0, 0, 7)
	items := []*entity.MenuItem{
		{ID: uuid.New(), EventID: source.ID, Name: "Fried Cod", Price: 12},
		{ID: uuid.New(), EventID: source.ID, Name: "Hush Puppies", Price: 4},
	}

	fx.eventRepo.EXPECT().
		FindEventByID(ctx, source.ID).
		Return(source, nil)

	var cloneID uuid.UUID
	fx.eventRepo.EXPECT().
		CreateEvent(ctx, mock.AnythingOfType("*entity.Event")).
		Run(func(ctx context.Context, event *entity.Event) {
			event.ID = uuid.New()
			cloneID = event.ID
		}).
		Return(nil)

	fx.menuItemRepo.EXPECT().
		ListMenuItemsByEvent(ctx, source.ID).
		Return(items, nil)

	fx.menuItemRepo.EXPECT().
		CreateMenuItem(ctx, mock.AnythingOfType("*entity.MenuItem")).
		Run(func(ctx context.Context, item *entity.MenuItem) {
			assert.Equal(t, uuid.Nil, item.ID)
			assert.Equal(t, cloneID, item.EventID)
		}).
		Return(nil).
		Times(2)

	clone, err := fx.service.DuplicateEvent(ctx, actor, &usecase.DuplicateEventInput{
		EventID: source.ID,
		NewDate: newDate,
	})

	require.NoError(t, err)
	assert.Equal(t, newDate, clone.Date)
	assert.Equal(t, source.StartTime, clone.StartTime)
	assert.True(t, clone.Active)
	assert.NotEqual(t, source.ID, clone.ID)
}

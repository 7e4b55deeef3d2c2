package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	locationRepo *mockRepo.MockLocationRepository
	geocoder     *mockSvc.MockGeocoder
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewLocationService(LocationServiceParams{
		LocationRepo: locationRepo,
		Geocoder:     geocoder,
		Logger:       logger,
	})

	return locationServiceFixtures{
		service:      service,
		locationRepo: locationRepo,
		geocoder:     geocoder,
	}
}

func locationInput() *usecase.CreateLocationInput {
	return &usecase.CreateLocationInput{
		Name:       "St. Cletus Parish",
		Street:     "2705 Zumbehl Rd",
		City:       "Saint Charles",
		State:      "Missouri",
		PostalCode: "63301",
	}
}

func TestLocationService_CreateLocation_RegularAdminBecomesOwner(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	actor := usecase.Actor{AdminID: adminID}

	fx.geocoder.EXPECT().
		ResolvePostalCode(ctx, "63301").
		Return(&entity.Coordinates{Latitude: 38.8003, Longitude: -90.5259})

	fx.locationRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.Location")).
		Run(func(ctx context.Context, location *entity.Location) {
			location.ID = uuid.New()
		}).
		Return(nil)

	location, err := fx.service.CreateLocation(ctx, actor, locationInput())

	require.NoError(t, err)
	require.NotNil(t, location.AdminID)
	assert.Equal(t, adminID, *location.AdminID)
	// Full state names are stored as their two-letter code.
	assert.Equal(t, "MO", location.State)
	assert.Equal(t, entity.OrganizationOther, location.Organization)
	require.NotNil(t, location.Coordinates)
	assert.InDelta(t, 38.8003, location.Coordinates.Latitude, 0.0001)
}

func TestLocationService_CreateLocation_SuperAdminAssignsOwner(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	actor := usecase.Actor{AdminID: uuid.New(), Super: true}
	ownerID := uuid.New()

	input := locationInput()
	input.AdminID = &ownerID
	input.Organization = entity.OrganizationChurch

	fx.geocoder.EXPECT().ResolvePostalCode(ctx, "63301").Return(nil)
	fx.locationRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)

	location, err := fx.service.CreateLocation(ctx, actor, input)

	require.NoError(t, err)
	require.NotNil(t, location.AdminID)
	assert.Equal(t, ownerID, *location.AdminID)
	assert.Equal(t, entity.OrganizationChurch, location.Organization)
	// A failed geocode is not fatal; the location just has no coordinates.
	assert.Nil(t, location.Coordinates)
}

func TestLocationService_CreateLocation_SecondLocationRejected(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	actor := usecase.Actor{AdminID: uuid.New()}

	fx.geocoder.EXPECT().ResolvePostalCode(ctx, "63301").Return(nil)
	fx.locationRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.Location")).
		Return(repository.ErrAdminAlreadyOwnsLocation)

	location, err := fx.service.CreateLocation(ctx, actor, locationInput())

	assert.Nil(t, location)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationAlreadyOwned))
}

func TestLocationService_CreateLocation_UnknownStateRejected(t *testing.T) {
	fx := createTestLocationService(t)

	input := locationInput()
	input.State = "Atlantis"

	location, err := fx.service.CreateLocation(context.Background(), usecase.Actor{AdminID: uuid.New()}, input)

	assert.Nil(t, location)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestLocationService_CreateLocation_ShortPostalCodeRejected(t *testing.T) {
	fx := createTestLocationService(t)

	input := locationInput()
	input.PostalCode = "633"

	location, err := fx.service.CreateLocation(context.Background(), usecase.Actor{AdminID: uuid.New()}, input)

	assert.Nil(t, location)
	assert.Error(t, err)
}

func TestLocationService_UpdateLocation_RegeocodesOnPostalChange(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	actor := usecase.Actor{AdminID: adminID}

	existing := &entity.Location{
		ID:          uuid.New(),
		Name:        "St. Cletus Parish",
		State:       "MO",
		PostalCode:  "63301",
		Coordinates: &entity.Coordinates{Latitude: 38.8003, Longitude: -90.5259},
		AdminID:     &adminID,
	}

	fx.locationRepo.EXPECT().FindLocationByID(ctx, existing.ID).Return(existing, nil)
	fx.geocoder.EXPECT().
		ResolvePostalCode(ctx, "63044").
		Return(&entity.Coordinates{Latitude: 38.7709, Longitude: -90.4232})
	fx.locationRepo.EXPECT().UpdateLocation(ctx, mock.AnythingOfType("*entity.Location")).Return(nil)

	updated, err := fx.service.UpdateLocation(ctx, actor, &usecase.UpdateLocationInput{
		LocationID: existing.ID,
		Name:       "St. Cletus Parish",
		City:       "Bridgeton",
		State:      "MO",
		PostalCode: "63044",
	})

	require.NoError(t, err)
	require.NotNil(t, updated.Coordinates)
	assert.InDelta(t, 38.7709, updated.Coordinates.Latitude, 0.0001)
}

func TestLocationService_UpdateLocation_SamePostalSkipsGeocode(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	actor := usecase.Actor{AdminID: adminID}

	existing := &entity.Location{
		ID:          uuid.New(),
		Name:        "St. Cletus Parish",
		State:       "MO",
		PostalCode:  "63301",
		Coordinates: &entity.Coordinates{Latitude: 38.8003, Longitude: -90.5259},
		AdminID:     &adminID,
	}

	fx.locationRepo.EXPECT().FindLocationByID(ctx, existing.ID).Return(existing, nil)
	fx.locationRepo.EXPECT().UpdateLocation(ctx, mock.AnythingOfType("*entity.Location")).Return(nil)

	updated, err := fx.service.UpdateLocation(ctx, actor, &usecase.UpdateLocationInput{
		LocationID: existing.ID,
		Name:       "St. Cletus Catholic Church",
		State:      "MO",
		PostalCode: "63301",
	})

	require.NoError(t, err)
	assert.Equal(t, "St. Cletus Catholic Church", updated.Name)
	require.NotNil(t, updated.Coordinates)
	assert.InDelta(t, 38.8003, updated.Coordinates.Latitude, 0.0001)
}

func TestLocationService_UpdateLocation_ForeignLocationRejected(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	actor := usecase.Actor{AdminID: uuid.New()}

	existing := &entity.Location{
		ID:         uuid.New(),
		State:      "MO",
		PostalCode: "63301",
		AdminID:    &ownerID,
	}

	fx.locationRepo.EXPECT().FindLocationByID(ctx, existing.ID).Return(existing, nil)

	updated, err := fx.service.UpdateLocation(ctx, actor, &usecase.UpdateLocationInput{
		LocationID: existing.ID,
		State:      "MO",
		PostalCode: "63301",
	})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationOwnershipViolation))
}

func TestLocationService_GetManagedLocation_NoneOwned(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	actor := usecase.Actor{AdminID: uuid.New()}

	fx.locationRepo.EXPECT().
		FindLocationByAdmin(ctx, actor.AdminID).
		Return(nil, repository.ErrLocationNotFound)

	location, err := fx.service.GetManagedLocation(ctx, actor)

	assert.Nil(t, location)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}

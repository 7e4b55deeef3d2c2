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
	"fryfinder/internal/geo"
	"fryfinder/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	geocoder     service.Geocoder
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	Geocoder     service.Geocoder
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		geocoder:     params.Geocoder,
		logger:       params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListLocations retrieves every location, ordered by name.
func (srv *locationService) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	locations, err := srv.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return locations, nil
}

// GetLocation retrieves a single location.
func (srv *locationService) GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := srv.locationRepo.FindLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to get location")
	}

	return location, nil
}

// GetManagedLocation retrieves the location the actor owns.
func (srv *locationService) GetManagedLocation(ctx context.Context, actor usecase.Actor) (*entity.Location, error) {
	location, err := srv.locationRepo.FindLocationByAdmin(ctx, actor.AdminID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to get managed location")
	}

	return location, nil
}

// CreateLocation registers a location. A non-super actor becomes the owner;
// super-admins may assign any owner or none. The postal code is geocoded
// best-effort and coordinates stay nil when resolution fails.
func (srv *locationService) CreateLocation(ctx context.Context, actor usecase.Actor, input *usecase.CreateLocationInput) (*entity.Location, error) {
	stateCode, err := normalizedAddress(input.State, input.PostalCode)
	if err != nil {
		return nil, err
	}

	adminID := input.AdminID
	if !actor.Super {
		// Regular admins always own what they create.
		id := actor.AdminID
		adminID = &id
	}

	organization := input.Organization
	if organization == "" {
		organization = entity.OrganizationOther
	}

	location := &entity.Location{
		Name:         input.Name,
		Street:       input.Street,
		City:         input.City,
		State:        stateCode,
		PostalCode:   input.PostalCode,
		Coordinates:  srv.geocoder.ResolvePostalCode(ctx, input.PostalCode),
		Organization: organization,
		Description:  input.Description,
		ContactName:  input.ContactName,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		AdminID:      adminID,
	}

	if location.Coordinates == nil {
		srv.log(ctx).Warn("postal code did not geocode, storing location without coordinates",
			slog.String("postal_code", input.PostalCode))
	}

	if err := srv.locationRepo.CreateLocation(ctx, location); err != nil {
		if errors.Is(err, repository.ErrAdminAlreadyOwnsLocation) {
			return nil, domainerrors.ErrLocationAlreadyOwned
		}

		return nil, errors.Wrap(err, "failed to create location")
	}

	return location, nil
}

// UpdateLocation updates a location the actor manages, re-geocoding the
// postal code when it changed.
func (srv *locationService) UpdateLocation(ctx context.Context, actor usecase.Actor, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	location, err := srv.locationRepo.FindLocationByID(ctx, input.LocationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to load location")
	}

	if !actor.CanManage(location) {
		return nil, domainerrors.ErrLocationOwnershipViolation
	}

	stateCode, err := normalizedAddress(input.State, input.PostalCode)
	if err != nil {
		return nil, err
	}

	if input.PostalCode != location.PostalCode {
		location.Coordinates = srv.geocoder.ResolvePostalCode(ctx, input.PostalCode)
		if location.Coordinates == nil {
			srv.log(ctx).Warn("postal code did not geocode, clearing coordinates",
				slog.String("postal_code", input.PostalCode))
		}
	}

	location.Name = input.Name
	location.Street = input.Street
	location.City = input.City
	location.State = stateCode
	location.PostalCode = input.PostalCode
	if input.Organization != "" {
		location.Organization = input.Organization
	}
	location.Description = input.Description
	location.ContactName = input.ContactName
	location.ContactPhone = input.ContactPhone
	location.ContactEmail = input.ContactEmail

	if err := srv.locationRepo.UpdateLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to update location")
	}

	return location, nil
}

// normalizedAddress rejects unknown states and malformed postal codes before
// any external call, returning the two-letter state code for storage.
func normalizedAddress(state, postalCode string) (string, error) {
	code, ok := geo.StateCode(state)
	if !ok {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown state")
	}
	if len(digitsOnly(postalCode)) < minPostalDigits {
		return "", domainerrors.ErrValidationFailed.WithDetails("postal code must contain five digits")
	}

	return code, nil
}

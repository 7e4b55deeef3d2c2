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

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// CreateLocation persists a new location.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAdminAlreadyOwnsLocation
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByID retrieves a location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocationByAdmin retrieves the location owned by the given admin.
func (repo *locationRepository) FindLocationByAdmin(ctx context.Context, adminID uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		First(&locationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by admin")
	}

	return toLocationDomain(&locationM), nil
}

// ListLocations retrieves all locations ordered by name.
func (repo *locationRepository) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel
	err := repo.db.WithContext(ctx).
		Order("name asc").
		Find(&locationModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// UpdateLocation updates an existing location record.
func (repo *locationRepository) UpdateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Save(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAdminAlreadyOwnsLocation
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	var coordinates *entity.Coordinates
	if data.Latitude != nil && data.Longitude != nil {
		coordinates = &entity.Coordinates{
			Latitude:  *data.Latitude,
			Longitude: *data.Longitude,
		}
	}

	return &entity.Location{
		ID:           data.ID,
		Name:         data.Name,
		Street:       data.Street,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Coordinates:  coordinates,
		Organization: entity.OrganizationType(data.Organization),
		Description:  data.Description,
		ContactName:  data.ContactName,
		ContactPhone: data.ContactPhone,
		ContactEmail: data.ContactEmail,
		AdminID:      data.AdminID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	var latitude, longitude *float64
	if data.Coordinates != nil {
		lat := data.Coordinates.Latitude
		lng := data.Coordinates.Longitude
		latitude = &lat
		longitude = &lng
	}

	return &model.LocationModel{
		ID:           data.ID,
		Name:         data.Name,
		Street:       data.Street,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Latitude:     latitude,
		Longitude:    longitude,
		Organization: string(data.Organization),
		Description:  data.Description,
		ContactName:  data.ContactName,
		ContactPhone: data.ContactPhone,
		ContactEmail: data.ContactEmail,
		AdminID:      data.AdminID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

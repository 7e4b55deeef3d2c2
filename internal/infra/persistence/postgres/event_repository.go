package postgres

import (
	"context"
	"time"

	"fryfinder/internal/domain/entity"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/domain/repository"
	"fryfinder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// CreateEvent persists a new event.
func (repo *eventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindEventByID retrieves an event with its embedded location.
func (repo *eventRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel
	err := repo.db.WithContext(ctx).
		Preload("Location").
		Where("id = ?", id).
		First(&eventM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&eventM), nil
}

// ListActiveEvents retrieves all active events with embedded locations,
// ordered by date then creation time.
func (repo *eventRepository) ListActiveEvents(ctx context.Context, from *time.Time) ([]*entity.Event, error) {
	query := repo.db.WithContext(ctx).
		Preload("Location").
		Where("active = ?", true)

	if from != nil {
		query = query.Where("date >= ?", *from)
	}

	var eventModels []*model.EventModel
	err := query.
		Order("date asc").
		Order("created_at asc").
		Find(&eventModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list active events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// ListEventsByLocation retrieves all events for a location, including
// inactive ones, newest date first.
func (repo *eventRepository) ListEventsByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Event, error) {
	var eventModels []*model.EventModel
	err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("date desc").
		Find(&eventModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list events by location")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// UpdateEvent updates an existing event record.
func (repo *eventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Save(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update event")
	}

	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// DeleteEvent removes an event by its ID.
func (repo *eventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EventModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM EventModel to a domain Event entity.
func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:              data.ID,
		LocationID:      data.LocationID,
		Location:        toLocationDomain(data.Location),
		Date:            data.Date,
		StartTime:       data.StartTime,
		EndTime:         data.EndTime,
		DineInAvailable: data.DineInAvailable,
		PickupAvailable: data.PickupAvailable,
		Active:          data.Active,
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromEventDomain converts a domain Event entity to a GORM EventModel.
// The embedded Location is never written back through the event.
func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:              data.ID,
		LocationID:      data.LocationID,
		Date:            data.Date,
		StartTime:       data.StartTime,
		EndTime:         data.EndTime,
		DineInAvailable: data.DineInAvailable,
		PickupAvailable: data.PickupAvailable,
		Active:          data.Active,
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

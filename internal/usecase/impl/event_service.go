// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

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

// minPostalDigits is the digit count that routes an origin to postal lookup.
const minPostalDigits = 5

// eventService implements the EventUsecase interface.
type eventService struct {
	eventRepo    repository.EventRepository
	locationRepo repository.LocationRepository
	menuItemRepo repository.MenuItemRepository
	geocoder     service.Geocoder
	logger       *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo    repository.EventRepository
	LocationRepo repository.LocationRepository
	MenuItemRepo repository.MenuItemRepository
	Geocoder     service.Geocoder
	Logger       *slog.Logger
}

// NewEventService is the constructor for eventService. It receives all dependencies as interfaces.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo:    params.EventRepo,
		locationRepo: params.LocationRepo,
		menuItemRepo: params.MenuItemRepo,
		geocoder:     params.Geocoder,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchEvents filters and sorts active events by date, origin, and radius.
// Without an explicit date the listing covers today onward.
func (srv *eventService) SearchEvents(ctx context.Context, input *usecase.SearchEventsInput) (*usecase.SearchEventsOutput, error) {
	from := input.Date
	if from == nil {
		today := startOfToday()
		from = &today
	}

	events, err := srv.eventRepo.ListActiveEvents(ctx, from)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load events for search")
	}

	// The repository's from filter is a lower bound; an exact-date search
	// additionally drops events on later dates.
	if input.Date != nil {
		filtered := events[:0]
		for _, event := range events {
			if sameDay(event.Date, *input.Date) {
				filtered = append(filtered, event)
			}
		}
		events = filtered
	}

	origin, hint := srv.resolveOrigin(ctx, input.Origin, events)
	if origin == nil {
		return &usecase.SearchEventsOutput{
			Items:          plainResults(events),
			OriginResolved: false,
			Hint:           hint,
		}, nil
	}

	items := make([]*usecase.SearchResultItem, 0, len(events))
	for _, event := range events {
		distance := math.Inf(1)
		if event.Location != nil && event.Location.Coordinates != nil {
			coords := event.Location.Coordinates
			distance = geo.HaversineMiles(origin.Latitude, origin.Longitude, coords.Latitude, coords.Longitude)
		}

		item := &usecase.SearchResultItem{Event: event}
		if !math.IsInf(distance, 1) {
			d := distance
			item.DistanceMiles = &d
		}
		items = append(items, item)
	}

	// Stable so that equidistant events keep their original relative order.
	sort.SliceStable(items, func(i, j int) bool {
		return resultDistance(items[i]) < resultDistance(items[j])
	})

	if input.RadiusMiles > 0 {
		within := items[:0]
		for _, item := range items {
			if resultDistance(item) <= input.RadiusMiles {
				within = append(within, item)
			}
		}
		items = within
	}

	return &usecase.SearchEventsOutput{
		Items:          items,
		OriginResolved: true,
	}, nil
}

// resolveOrigin maps the free-text origin to coordinates. A nil result means
// no distance annotation happens; hint carries a user-facing explanation when
// the input was understandable but unresolvable.
func (srv *eventService) resolveOrigin(ctx context.Context, origin string, events []*entity.Event) (*entity.Coordinates, string) {
	query := strings.TrimSpace(origin)
	if query == "" {
		return nil, ""
	}

	// Postal path first: the digits decide, not the presence of letters.
	if digits := digitsOnly(query); len(digits) >= minPostalDigits {
		return srv.geocoder.ResolvePostalCode(ctx, query), ""
	}

	city, state := splitCityState(query)
	if state == "" {
		state = srv.stateFromMatchingEvent(city, events)
	}
	if state == "" {
		srv.log(ctx).Info("origin city has no resolvable state", slog.String("origin", origin))

		return nil, "Add a state to your search, like \"" + city + ", MO\"."
	}

	return srv.geocoder.ResolveCity(ctx, city, state), ""
}

// stateFromMatchingEvent falls back to the state of the first event whose
// location city fuzzily matches the queried city.
func (srv *eventService) stateFromMatchingEvent(city string, events []*entity.Event) string {
	for _, event := range events {
		if event.Location == nil {
			continue
		}
		if geo.CitiesMatch(event.Location.City, city) {
			return event.Location.State
		}
	}

	return ""
}

// GetEvent retrieves a single event with its location.
func (srv *eventService) GetEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := srv.eventRepo.FindEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to get event")
	}

	return event, nil
}

// ListLocationEvents retrieves every event for a location the actor manages.
func (srv *eventService) ListLocationEvents(ctx context.Context, actor usecase.Actor, locationID uuid.UUID) ([]*entity.Event, error) {
	if _, err := srv.managedLocation(ctx, actor, locationID); err != nil {
		return nil, err
	}

	events, err := srv.eventRepo.ListEventsByLocation(ctx, locationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list location events")
	}

	return events, nil
}

// CreateEvent schedules a new event at a location the actor manages.
func (srv *eventService) CreateEvent(ctx context.Context, actor usecase.Actor, input *usecase.CreateEventInput) (*entity.Event, error) {
	if _, err := srv.managedLocation(ctx, actor, input.LocationID); err != nil {
		return nil, err
	}

	event := &entity.Event{
		LocationID:      input.LocationID,
		Date:            input.Date,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		DineInAvailable: input.DineInAvailable,
		PickupAvailable: input.PickupAvailable,
		Active:          true,
		Notes:           input.Notes,
	}

	if err := srv.eventRepo.CreateEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Info("event created",
		slog.String("event_id", event.ID.String()),
		slog.String("location_id", event.LocationID.String()))

	return event, nil
}

// UpdateEvent updates an event at a location the actor manages.
func (srv *eventService) UpdateEvent(ctx context.Context, actor usecase.Actor, input *usecase.UpdateEventInput) (*entity.Event, error) {
	event, err := srv.managedEvent(ctx, actor, input.EventID)
	if err != nil {
		return nil, err
	}

	event.Date = input.Date
	event.StartTime = input.StartTime
	event.EndTime = input.EndTime
	event.DineInAvailable = input.DineInAvailable
	event.PickupAvailable = input.PickupAvailable
	event.Active = input.Active
	event.Notes = input.Notes

	if err := srv.eventRepo.UpdateEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to update event")
	}

	return event, nil
}

// DeleteEvent removes an event at a location the actor manages.
func (srv *eventService) DeleteEvent(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if _, err := srv.managedEvent(ctx, actor, id); err != nil {
		return err
	}

	if err := srv.eventRepo.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound
		}

		return errors.Wrap(err, "failed to delete event")
	}

	return nil
}

// DuplicateEvent clones an event's fields and copies its menu items onto a
// new event at the given date. The copy runs as sequential writes without a
// transaction; a failure partway through leaves the new event with a partial
// menu and surfaces as an error.
func (srv *eventService) DuplicateEvent(ctx context.Context, actor usecase.Actor, input *usecase.DuplicateEventInput) (*entity.Event, error) {
	source, err := srv.managedEvent(ctx, actor, input.EventID)
	if err != nil {
		return nil, err
	}

	clone := &entity.Event{
		LocationID:      source.LocationID,
		Date:            input.NewDate,
		StartTime:       source.StartTime,
		EndTime:         source.EndTime,
		DineInAvailable: source.DineInAvailable,
		PickupAvailable: source.PickupAvailable,
		Active:          true,
		Notes:           source.Notes,
	}

	if err := srv.eventRepo.CreateEvent(ctx, clone); err != nil {
		return nil, errors.Wrap(err, "failed to create duplicated event")
	}

	items, err := srv.menuItemRepo.ListMenuItemsByEvent(ctx, source.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load menu items for duplication")
	}

	for _, item := range items {
		copied := *item
		copied.ID = uuid.Nil
		copied.EventID = clone.ID

		if err := srv.menuItemRepo.CreateMenuItem(ctx, &copied); err != nil {
			return nil, errors.Wrapf(err, "failed to copy menu item %q to duplicated event", item.Name)
		}
	}

	srv.log(ctx).Info("event duplicated",
		slog.String("source_event_id", source.ID.String()),
		slog.String("new_event_id", clone.ID.String()),
		slog.Int("menu_items_copied", len(items)))

	return clone, nil
}

// managedEvent loads an event and verifies the actor manages its location.
func (srv *eventService) managedEvent(ctx context.Context, actor usecase.Actor, eventID uuid.UUID) (*entity.Event, error) {
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

// managedLocation loads a location and verifies the actor manages it.
func (srv *eventService) managedLocation(ctx context.Context, actor usecase.Actor, locationID uuid.UUID) (*entity.Location, error) {
	location, err := srv.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to load location")
	}

	if !actor.CanManage(location) {
		return nil, domainerrors.ErrLocationOwnershipViolation
	}

	return location, nil
}

// --- Helpers ---

// resultDistance returns the annotated distance or the sort sentinel for
// items without coordinates, which always sort last.
func resultDistance(item *usecase.SearchResultItem) float64 {
	if item.DistanceMiles == nil {
		return math.Inf(1)
	}

	return *item.DistanceMiles
}

// plainResults wraps events without distance annotation, preserving order.
func plainResults(events []*entity.Event) []*usecase.SearchResultItem {
	items := make([]*usecase.SearchResultItem, 0, len(events))
	for _, event := range events {
		items = append(items, &usecase.SearchResultItem{Event: event})
	}

	return items
}

// startOfToday returns midnight UTC of the current date, matching how event
// dates are stored.
func startOfToday() time.Time {
	now := time.Now().UTC()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// sameDay reports whether two timestamps fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// digitsOnly strips every non-digit character.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// splitCityState parses "City, ST" input. The state part may be a full name;
// resolution to a code happens in the geocoder. Missing comma means no state.
func splitCityState(query string) (city, state string) {
	parts := strings.SplitN(query, ",", 2)
	city = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		state = strings.TrimSpace(parts[1])
	}

	return city, state
}

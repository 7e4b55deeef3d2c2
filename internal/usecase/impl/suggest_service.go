package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	deliverycontext "fryfinder/internal/delivery/context"
	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/domain/service"
	"fryfinder/internal/geo"
	"fryfinder/internal/usecase"

	"go.uber.org/fx"
)

// minPartialLength is the shortest partial string worth suggesting for.
const minPartialLength = 2

// fallbackCities lists major cities for the states where the free lookup
// API misses common local searches. Served from memory, filtered like any
// other batch.
var fallbackCities = map[string][]string{
	"MO": {
		"Saint Louis", "Kansas City", "Springfield", "Columbia",
		"Independence", "Jefferson City", "Saint Charles", "Saint Peters",
		"Florissant", "Chesterfield", "Wentzville", "Wildwood",
		"University City", "Ballwin", "Kirkwood", "Maryland Heights",
		"Hazelwood", "Webster Groves", "Ofallon", "Arnold", "Oakville",
	},
	"IL": {
		"Chicago", "Springfield", "Peoria", "Rockford", "Naperville",
		"Joliet", "Elgin", "Waukegan", "Champaign", "Bloomington",
		"Decatur", "Belleville", "Ofallon", "Granite City", "Alton",
		"Edwardsville", "Collinsville", "Fairview Heights", "Godfrey",
	},
}

// suggestService implements the SuggestUsecase interface.
type suggestService struct {
	geocoder service.Geocoder
	logger   *slog.Logger
}

// SuggestServiceParams holds dependencies for SuggestService, injected by Fx.
type SuggestServiceParams struct {
	fx.In

	Geocoder service.Geocoder
	Logger   *slog.Logger
}

// NewSuggestService is the constructor for suggestService.
func NewSuggestService(params SuggestServiceParams) usecase.SuggestUsecase {
	return &suggestService{
		geocoder: params.Geocoder,
		logger:   params.Logger,
	}
}

func (srv *suggestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SuggestCities returns deduplicated (city, state) suggestions matching the
// partial string. The fallback list and one lookup per generated search
// variation contribute candidates; every batch is re-filtered by fuzzy
// containment against the original partial. Lookups run concurrently and a
// failing variation yields an empty batch without affecting the others.
func (srv *suggestService) SuggestCities(ctx context.Context, input *usecase.SuggestCitiesInput) ([]service.CitySuggestion, error) {
	partial := strings.TrimSpace(input.Partial)
	if len(partial) < minPartialLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("partial city must be at least two characters")
	}

	stateCode, ok := geo.StateCode(input.State)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown state")
	}

	var suggestions []service.CitySuggestion
	for _, city := range fallbackCities[stateCode] {
		if geo.CitiesMatch(city, partial) {
			suggestions = append(suggestions, service.CitySuggestion{City: city, State: stateCode})
		}
	}

	variations := geo.SearchVariations(partial)
	batches := make([][]service.CitySuggestion, len(variations))

	var wg sync.WaitGroup
	for i, variation := range variations {
		wg.Add(1)
		go func(i int, variation string) {
			defer wg.Done()
			// The geocoder degrades to empty on failure, so one slow or
			// broken variation only costs its own batch.
			batches[i] = srv.geocoder.SuggestCities(ctx, stateCode, variation)
		}(i, variation)
	}
	wg.Wait()

	for _, batch := range batches {
		for _, candidate := range batch {
			if geo.CitiesMatch(candidate.City, partial) {
				suggestions = append(suggestions, candidate)
			}
		}
	}

	suggestions = dedupeSuggestions(suggestions)
	sort.SliceStable(suggestions, func(i, j int) bool {
		return strings.ToLower(suggestions[i].City) < strings.ToLower(suggestions[j].City)
	})

	srv.log(ctx).Debug("city suggestions built",
		slog.String("state", stateCode),
		slog.String("partial", partial),
		slog.Int("variations", len(variations)),
		slog.Int("results", len(suggestions)))

	return suggestions, nil
}

// dedupeSuggestions removes duplicate (city, state) pairs, keeping first
// occurrence order.
func dedupeSuggestions(suggestions []service.CitySuggestion) []service.CitySuggestion {
	seen := make(map[string]bool, len(suggestions))
	deduped := make([]service.CitySuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		key := strings.ToLower(s.City) + "|" + strings.ToUpper(s.State)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, s)
	}

	return deduped
}

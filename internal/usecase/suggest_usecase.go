package usecase

import (
	"context"

	"fryfinder/internal/domain/service"
)

// SuggestCitiesInput defines the city autocomplete parameters.
// Both fields are required; Partial must be at least two characters.
type SuggestCitiesInput struct {
	State   string // two-letter code or full state name
	Partial string
}

// SuggestUsecase defines the interface for city autocomplete.
type SuggestUsecase interface {
	// SuggestCities returns deduplicated (city, state) suggestions matching
	// the partial string, combining a fallback list of known cities with
	// concurrent lookups of generated search variations. Sorted
	// case-insensitively by city name.
	SuggestCities(ctx context.Context, input *SuggestCitiesInput) ([]service.CitySuggestion, error)
}

package service

import (
	"context"

	"fryfinder/internal/domain/entity"
)

// CitySuggestion is one autocomplete candidate returned by the lookup API.
type CitySuggestion struct {
	City  string `json:"city"`
	State string `json:"state"` // two-letter state code
}

// Geocoder defines the external postal lookup collaborator.
// Every method is best-effort: lookup failures (network, non-success status,
// missing place data) degrade to a nil/empty result and are never surfaced as
// errors. Callers treat absent coordinates as "cannot filter or sort by
// distance for this input".
type Geocoder interface {
	// ResolvePostalCode maps a 5-digit US postal code to coordinates.
	// Non-digit characters are stripped first; inputs with fewer than five
	// remaining digits resolve to nil.
	ResolvePostalCode(ctx context.Context, code string) *entity.Coordinates

	// ResolveCity maps a city plus state (2-letter code or full name) to the
	// centroid of the first matching place.
	ResolveCity(ctx context.Context, city, state string) *entity.Coordinates

	// SuggestCities returns candidate (city, state) pairs for a partial city
	// string within a state. Empty on any failure.
	SuggestCities(ctx context.Context, state, partial string) []CitySuggestion
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "fryfinder/internal/domain/errors"
	"fryfinder/internal/domain/service"
	mockSvc "fryfinder/internal/mocks/service"
	"fryfinder/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// suggestServiceFixtures holds all test dependencies for suggest service tests.
type suggestServiceFixtures struct {
	service  usecase.SuggestUsecase
	geocoder *mockSvc.MockGeocoder
}

func createTestSuggestService(t *testing.T) suggestServiceFixtures {
	geocoder := mockSvc.NewMockGeocoder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSuggestService(SuggestServiceParams{
		Geocoder: geocoder,
		Logger:   logger,
	})

	return suggestServiceFixtures{
		service:  service,
		geocoder: geocoder,
	}
}

func TestSuggestService_SuggestCities_MergesFallbackAndLookups(t *testing.T) {
	fx := createTestSuggestService(t)

	ctx := context.Background()

	// "saint ch" generates the literal and its contraction "st ch".
	fx.geocoder.EXPECT().
		SuggestCities(ctx, "MO", mock.AnythingOfType("string")).
		Return([]service.CitySuggestion{
			{City: "Saint Charles", State: "MO"},
			{City: "Jefferson City", State: "MO"},
		})

	suggestions, err := fx.service.SuggestCities(ctx, &usecase.SuggestCitiesInput{
		State:   "Missouri",
		Partial: "saint ch",
	})

	require.NoError(t, err)

	// The fallback list contributes Saint Charles too; the duplicate
	// collapses and the unrelated lookup noise is filtered out.
	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.City)
	}
	assert.Contains(t, names, "Saint Charles")
	assert.NotContains(t, names, "Jefferson City")

	seen := make(map[string]int)
	for _, name := range names {
		seen[name]++
	}
	assert.Equal(t, 1, seen["Saint Charles"])
}

func TestSuggestService_SuggestCities_SortedCaseInsensitively(t *testing.T) {
	fx := createTestSuggestService(t)

	ctx := context.Background()

	fx.geocoder.EXPECT().
		SuggestCities(ctx, "IL", mock.AnythingOfType("string")).
		Return([]service.CitySuggestion{
			{City: "springfield gardens", State: "IL"},
		})

	suggestions, err := fx.service.SuggestCities(ctx, &usecase.SuggestCitiesInput{
		State:   "IL",
		Partial: "spring",
	})

	require.NoError(t, err)
	require.NotEmpty(t, suggestions)

	for i := 1; i < len(suggestions); i++ {
		assert.LessOrEqual(t,
			strings.ToLower(suggestions[i-1].City),
			strings.ToLower(suggestions[i].City))
	}
}

func TestSuggestService_SuggestCities_ShortPartialRejected(t *testing.T) {
	fx := createTestSuggestService(t)

	suggestions, err := fx.service.SuggestCities(context.Background(), &usecase.SuggestCitiesInput{
		State:   "MO",
		Partial: " s ",
	})

	assert.Nil(t, suggestions)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestSuggestService_SuggestCities_UnknownStateRejected(t *testing.T) {
	fx := createTestSuggestService(t)

	suggestions, err := fx.service.SuggestCities(context.Background(), &usecase.SuggestCitiesInput{
		State:   "ZZ",
		Partial: "spring",
	})

	assert.Nil(t, suggestions)
	assert.Error(t, err)
}

func TestSuggestService_SuggestCities_EmptyLookupStillServesFallback(t *testing.T) {
	fx := createTestSuggestService(t)

	ctx := context.Background()

	fx.geocoder.EXPECT().
		SuggestCities(ctx, "MO", mock.AnythingOfType("string")).
		Return(nil)

	suggestions, err := fx.service.SuggestCities(ctx, &usecase.SuggestCitiesInput{
		State:   "MO",
		Partial: "kansas",
	})

	require.NoError(t, err)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Kansas City", suggestions[0].City)
	assert.Equal(t, "MO", suggestions[0].State)
}

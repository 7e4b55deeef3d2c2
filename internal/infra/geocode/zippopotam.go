// Package geocode implements the postal lookup collaborator against a
// Zippopotam-style public API. Every lookup is best-effort: failures degrade
// to "no result" and are never returned as errors.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fryfinder/config"
	"fryfinder/internal/domain/entity"
	"fryfinder/internal/domain/service"
	"fryfinder/internal/geo"
)

const defaultLookupTimeout = 10 * time.Second

// zippopotamClient resolves US postal codes and city names to coordinates.
type zippopotamClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// lookupResponse mirrors the wire shape of the lookup API. Latitude and
// longitude arrive as strings.
type lookupResponse struct {
	Places []struct {
		PlaceName         string `json:"place name"`
		Latitude          string `json:"latitude"`
		Longitude         string `json:"longitude"`
		StateAbbreviation string `json:"state abbreviation"`
	} `json:"places"`
	StateAbbreviation string `json:"state abbreviation"`
}

// NewZippopotamClient is the constructor for zippopotamClient.
func NewZippopotamClient(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	baseURL := "https://api.zippopotam.us"
	timeout := defaultLookupTimeout
	if cfg.Geocode != nil {
		if cfg.Geocode.BaseURL != "" {
			baseURL = strings.TrimRight(cfg.Geocode.BaseURL, "/")
		}
		if cfg.Geocode.Timeout > 0 {
			timeout = cfg.Geocode.Timeout
		}
	}

	return &zippopotamClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ResolvePostalCode maps a 5-digit US postal code to coordinates.
func (c *zippopotamClient) ResolvePostalCode(ctx context.Context, code string) *entity.Coordinates {
	digits := stripNonDigits(code)
	if len(digits) < 5 {
		return nil
	}
	digits = digits[:5]

	result := c.fetch(ctx, c.baseURL+"/us/"+digits)
	if result == nil || len(result.Places) == 0 {
		return nil
	}

	return parseCoordinates(result.Places[0].Latitude, result.Places[0].Longitude)
}

// ResolveCity maps a city plus state to the centroid of the first matching place.
func (c *zippopotamClient) ResolveCity(ctx context.Context, city, state string) *entity.Coordinates {
	stateCode, ok := geo.StateCode(state)
	if !ok || strings.TrimSpace(city) == "" {
		return nil
	}

	result := c.fetch(ctx, c.baseURL+"/us/"+strings.ToLower(stateCode)+"/"+url.PathEscape(strings.TrimSpace(city)))
	if result == nil || len(result.Places) == 0 {
		return nil
	}

	return parseCoordinates(result.Places[0].Latitude, result.Places[0].Longitude)
}

// SuggestCities returns candidate (city, state) pairs matching a partial city string.
func (c *zippopotamClient) SuggestCities(ctx context.Context, state, partial string) []service.CitySuggestion {
	stateCode, ok := geo.StateCode(state)
	if !ok || strings.TrimSpace(partial) == "" {
		return nil
	}

	result := c.fetch(ctx, c.baseURL+"/us/"+strings.ToLower(stateCode)+"/"+url.PathEscape(strings.TrimSpace(partial)))
	if result == nil {
		return nil
	}

	suggestions := make([]service.CitySuggestion, 0, len(result.Places))
	for _, place := range result.Places {
		if place.PlaceName == "" {
			continue
		}

		suggestionState := place.StateAbbreviation
		if suggestionState == "" {
			suggestionState = result.StateAbbreviation
		}
		if suggestionState == "" {
			suggestionState = stateCode
		}

		suggestions = append(suggestions, service.CitySuggestion{
			City:  place.PlaceName,
			State: suggestionState,
		})
	}

	return suggestions
}

// fetch performs one lookup request, returning nil on any failure.
func (c *zippopotamClient) fetch(ctx context.Context, lookupURL string) *lookupResponse {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		c.logger.Warn("geocode request build failed", slog.String("url", lookupURL), slog.Any("error", err))

		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("geocode lookup failed", slog.String("url", lookupURL), slog.Any("error", err))

		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// 404 is the API's normal answer for an unknown code or city.
		if resp.StatusCode != http.StatusNotFound {
			c.logger.Warn("geocode lookup returned non-success status",
				slog.String("url", lookupURL),
				slog.Int("status", resp.StatusCode),
			)
		}

		return nil
	}

	var result lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Warn("geocode response decode failed", slog.String("url", lookupURL), slog.Any("error", err))

		return nil
	}

	return &result
}

func stripNonDigits(s string) string {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	return digits.String()
}

func parseCoordinates(latitude, longitude string) *entity.Coordinates {
	lat, errLat := strconv.ParseFloat(latitude, 64)
	lng, errLng := strconv.ParseFloat(longitude, 64)
	if errLat != nil || errLng != nil {
		return nil
	}

	return &entity.Coordinates{Latitude: lat, Longitude: lng}
}

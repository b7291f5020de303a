package location

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"weather-tools/internal/config"
	"weather-tools/internal/providers/nominatim"
	"weather-tools/internal/types"
)

// ErrNotFound indicates the place description did not resolve to any location.
// Transport-level failures are returned as distinct wrapped errors so callers
// can tell a missing place from an unreachable geocoder.
var ErrNotFound = errors.New("location not found")

// Service resolves free-text place descriptions to coordinates
type Service interface {
	// Resolve converts a city/state/country description into coordinates and
	// the geocoder's canonical display name
	Resolve(city, state, country string) (*types.ResolvedLocation, error)
}

// GeocodeProvider defines the interface for forward geocoding providers
type GeocodeProvider interface {
	Search(query string) (*nominatim.SearchResult, error)
}

// locationService implements the Service interface
type locationService struct {
	geocoder GeocodeProvider
	logger   *slog.Logger
}

// NewLocationService creates a new location service with the real geocoding client
func NewLocationService(cfg *config.Config, logger *slog.Logger) Service {
	client := nominatim.NewClientWithOptions(
		cfg.Geocoding.BaseURL,
		cfg.Geocoding.UserAgent,
		cfg.GeocodingTimeout(),
	)
	return NewLocationServiceWithProvider(client, logger)
}

// NewLocationServiceWithProvider creates a new location service with a custom provider
// This is useful for testing with mock providers
func NewLocationServiceWithProvider(geocoder GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		geocoder: geocoder,
		logger:   logger.With("component", "location-service"),
	}
}

// Resolve geocodes the given place description via the provider
func (s *locationService) Resolve(city, state, country string) (*types.ResolvedLocation, error) {
	query := buildQuery(city, state, country)

	s.logger.Debug("geocoding place", "query", query)

	result, err := s.geocoder.Search(query)
	if err != nil {
		if errors.Is(err, nominatim.ErrNoMatch) {
			s.logger.Debug("no match for place", "query", query)
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}

	latitude, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude %q: %w", result.Lat, err)
	}
	longitude, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude %q: %w", result.Lon, err)
	}

	s.logger.Debug("resolved place",
		"query", query,
		"latitude", latitude,
		"longitude", longitude,
		"display_name", result.DisplayName,
	)

	return &types.ResolvedLocation{
		Coordinates: types.NewCoords(latitude, longitude),
		DisplayName: result.DisplayName,
	}, nil
}

// buildQuery joins the non-empty place components with ", " separators
func buildQuery(city, state, country string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{city, state, country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

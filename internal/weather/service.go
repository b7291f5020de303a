package weather

import (
	"errors"
	"fmt"
	"log/slog"
	"weather-tools/internal/config"
	"weather-tools/internal/location"
	"weather-tools/internal/providers/openmeteo"
)

// ErrNoForecastData indicates the provider responded without usable
// current-conditions data
var ErrNoForecastData = errors.New("no forecast data available")

// ForecastProvider defines the interface for weather forecast providers
type ForecastProvider interface {
	// GetForecast fetches current conditions and a daily forecast for the
	// given coordinates and day count
	GetForecast(latitude, longitude float64, forecastDays int) (*openmeteo.ForecastAPIResponse, error)
}

// Service exposes the weather lookup operations
type Service interface {
	// GetWeatherByPlace resolves a place description and fetches its weather.
	// An unresolvable place yields a well-formed sentinel result, not an error.
	GetWeatherByPlace(city, state, country string, days int) (*WeatherResult, error)

	// GetWeatherByCoordinates fetches weather for the given coordinates
	GetWeatherByCoordinates(latitude, longitude float64, days int) (*WeatherResult, error)

	// GetAlerts reports active weather alerts for a US state.
	// Placeholder: no alerts API is integrated yet, so it always reports zero.
	GetAlerts(state string) *AlertsSummary
}

type weatherService struct {
	forecastProvider ForecastProvider
	locationService  location.Service
	logger           *slog.Logger
}

// NewWeatherService creates a weather service with real provider clients
func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	return NewWeatherServiceWithProviders(
		openmeteo.NewForecastClientWithOptions(cfg.Forecast.BaseURL, cfg.ForecastTimeout()),
		location.NewLocationService(cfg, logger),
		logger,
	)
}

// NewWeatherServiceWithProviders creates a weather service with custom providers
// This is useful for testing with mock providers
func NewWeatherServiceWithProviders(
	forecastProvider ForecastProvider,
	locationService location.Service,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		locationService:  locationService,
		logger:           logger.With("component", "weather-service"),
	}
}

// GetWeatherByPlace geocodes the place and fetches its forecast. Both a
// genuine no-match and a geocoder transport failure map onto the same
// sentinel result; the transport cause is logged so it stays diagnosable.
func (s *weatherService) GetWeatherByPlace(city, state, country string, days int) (*WeatherResult, error) {
	resolved, err := s.locationService.Resolve(city, state, country)
	if err != nil {
		if !errors.Is(err, location.ErrNotFound) {
			s.logger.Warn("geocoding failed",
				"city", city,
				"state", state,
				"country", country,
				"error", err,
			)
		}
		return notFoundResult(city, state, country), nil
	}

	return s.lookup(
		resolved.Coordinates.Latitude,
		resolved.Coordinates.Longitude,
		days,
		resolved.DisplayName,
	)
}

// GetWeatherByCoordinates fetches the forecast directly, labeling the result
// with the supplied coordinates
func (s *weatherService) GetWeatherByCoordinates(latitude, longitude float64, days int) (*WeatherResult, error) {
	label := fmt.Sprintf("coordinates (%v, %v)", latitude, longitude)
	return s.lookup(latitude, longitude, days, label)
}

// GetAlerts always reports zero active alerts until a real alerts API is wired in
func (s *weatherService) GetAlerts(state string) *AlertsSummary {
	return &AlertsSummary{
		Result:      fmt.Sprintf("No active weather alerts for %s", state),
		State:       state,
		AlertsCount: 0,
	}
}

func (s *weatherService) lookup(latitude, longitude float64, days int, label string) (*WeatherResult, error) {
	apiResponse, err := s.forecastProvider.GetForecast(latitude, longitude, days)
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	result := mapForecastResponse(apiResponse, label)
	if result == nil {
		return nil, ErrNoForecastData
	}

	return result, nil
}

// notFoundResult builds the sentinel response for an unresolvable place so
// the caller always receives a schema-conforming result
func notFoundResult(city, state, country string) *WeatherResult {
	place := city
	if state != "" {
		place += ", " + state
	}
	if country != "" {
		place += ", " + country
	}

	return &WeatherResult{
		Location: fmt.Sprintf("Error: Could not find coordinates for %s. Please check the location name and try again.", place),
		Current: CurrentConditions{
			Conditions: "Location not found",
			Units:      map[string]string{},
		},
		Forecast: []DailyForecast{},
	}
}

package tools

import (
	"encoding/json"
	"fmt"

	"weather-tools/internal/weather"
)

// defaultCountry is applied when a get_weather call omits the country.
const defaultCountry = "USA"

// GetWeatherTool looks up weather for a named place.
type GetWeatherTool struct {
	service     weather.Service
	defaultDays int
}

var _ ToolExecutor = (*GetWeatherTool)(nil)

func NewGetWeatherTool(service weather.Service, defaultDays int) *GetWeatherTool {
	return &GetWeatherTool{
		service:     service,
		defaultDays: defaultDays,
	}
}

func (t *GetWeatherTool) Definition() Tool {
	return NewFunctionTool(
		"get_weather",
		"Get current weather and a multi-day forecast for a city",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"city": {
					Type:        "string",
					Description: "City name, e.g. 'Los Angeles'",
				},
				"state": {
					Type:        "string",
					Description: "State name or code, e.g. 'CA' or 'California'",
				},
				"country": {
					Type:        "string",
					Description: "Country name (default: USA)",
				},
				"days": {
					Type:        "integer",
					Description: "Number of forecast days (1-16)",
				},
			},
			Required: []string{"city"},
		},
	)
}

func (t *GetWeatherTool) Execute(arguments string) (string, error) {
	var args struct {
		City    string `json:"city"`
		State   string `json:"state"`
		Country string `json:"country"`
		Days    int    `json:"days"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if args.City == "" {
		return "", fmt.Errorf("%w: city is required", ErrInvalidArguments)
	}
	if args.Country == "" {
		args.Country = defaultCountry
	}
	if args.Days == 0 {
		args.Days = t.defaultDays
	}

	result, err := t.service.GetWeatherByPlace(args.City, args.State, args.Country, args.Days)
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// GetWeatherByCoordinatesTool looks up weather for explicit coordinates.
type GetWeatherByCoordinatesTool struct {
	service     weather.Service
	defaultDays int
}

var _ ToolExecutor = (*GetWeatherByCoordinatesTool)(nil)

func NewGetWeatherByCoordinatesTool(service weather.Service, defaultDays int) *GetWeatherByCoordinatesTool {
	return &GetWeatherByCoordinatesTool{
		service:     service,
		defaultDays: defaultDays,
	}
}

func (t *GetWeatherByCoordinatesTool) Definition() Tool {
	return NewFunctionTool(
		"get_weather_by_coordinates",
		"Get current weather and a multi-day forecast for specific coordinates",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"latitude": {
					Type:        "number",
					Description: "Location latitude in decimal degrees",
				},
				"longitude": {
					Type:        "number",
					Description: "Location longitude in decimal degrees",
				},
				"days": {
					Type:        "integer",
					Description: "Number of forecast days (1-16)",
				},
			},
			Required: []string{"latitude", "longitude"},
		},
	)
}

func (t *GetWeatherByCoordinatesTool) Execute(arguments string) (string, error) {
	var args struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Days      int      `json:"days"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if args.Latitude == nil || args.Longitude == nil {
		return "", fmt.Errorf("%w: latitude and longitude are required", ErrInvalidArguments)
	}
	if args.Days == 0 {
		args.Days = t.defaultDays
	}

	result, err := t.service.GetWeatherByCoordinates(*args.Latitude, *args.Longitude, args.Days)
	if err != nil {
		return "", err
	}
	return marshalResult(result)
}

// GetAlertsTool reports active weather alerts for a US state.
type GetAlertsTool struct {
	service weather.Service
}

var _ ToolExecutor = (*GetAlertsTool)(nil)

func NewGetAlertsTool(service weather.Service) *GetAlertsTool {
	return &GetAlertsTool{service: service}
}

func (t *GetAlertsTool) Definition() Tool {
	return NewFunctionTool(
		"get_alerts",
		"Get weather alerts for a US state",
		JSONSchema{
			Type: "object",
			Properties: map[string]*JSONSchema{
				"state": {
					Type:        "string",
					Description: "Two-letter US state code, e.g. CA or NY",
				},
			},
			Required: []string{"state"},
		},
	)
}

func (t *GetAlertsTool) Execute(arguments string) (string, error) {
	var args struct {
		State string `json:"state"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if args.State == "" {
		return "", fmt.Errorf("%w: state is required", ErrInvalidArguments)
	}

	return marshalResult(t.service.GetAlerts(args.State))
}

func marshalResult(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return string(data), nil
}

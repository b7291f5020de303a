package tools

import (
	"encoding/json"
	"errors"
	"testing"

	"weather-tools/internal/weather"
)

// fakeWeatherService records the arguments of the last call and returns a
// canned result.
type fakeWeatherService struct {
	result *weather.WeatherResult
	err    error

	gotCity    string
	gotState   string
	gotCountry string
	gotDays    int
	gotLat     float64
	gotLon     float64
}

func (f *fakeWeatherService) GetWeatherByPlace(city, state, country string, days int) (*weather.WeatherResult, error) {
	f.gotCity, f.gotState, f.gotCountry, f.gotDays = city, state, country, days
	return f.result, f.err
}

func (f *fakeWeatherService) GetWeatherByCoordinates(latitude, longitude float64, days int) (*weather.WeatherResult, error) {
	f.gotLat, f.gotLon, f.gotDays = latitude, longitude, days
	return f.result, f.err
}

func (f *fakeWeatherService) GetAlerts(state string) *weather.AlertsSummary {
	return &weather.AlertsSummary{
		Result:      "No active weather alerts for " + state,
		State:       state,
		AlertsCount: 0,
	}
}

func sampleResult() *weather.WeatherResult {
	return &weather.WeatherResult{
		Location:  "Los Angeles",
		Latitude:  34.05,
		Longitude: -118.24,
		Current: weather.CurrentConditions{
			Temperature: 22.4,
			Conditions:  "Mainly clear",
			Units:       map[string]string{"temperature": "°C"},
		},
		Forecast: []weather.DailyForecast{},
	}
}

func TestGetWeatherTool_Execute(t *testing.T) {
	svc := &fakeWeatherService{result: sampleResult()}
	tool := NewGetWeatherTool(svc, 7)

	out, err := tool.Execute(`{"city": "Los Angeles", "state": "CA"}`)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	// Defaults applied for omitted country and days
	if svc.gotCountry != "USA" {
		t.Errorf("country = %q, want USA", svc.gotCountry)
	}
	if svc.gotDays != 7 {
		t.Errorf("days = %d, want default 7", svc.gotDays)
	}
	if svc.gotCity != "Los Angeles" || svc.gotState != "CA" {
		t.Errorf("place = (%q, %q)", svc.gotCity, svc.gotState)
	}

	var result weather.WeatherResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("tool result is not valid JSON: %v", err)
	}
	if result.Location != "Los Angeles" {
		t.Errorf("result location = %q", result.Location)
	}
}

func TestGetWeatherTool_Execute_ExplicitArguments(t *testing.T) {
	svc := &fakeWeatherService{result: sampleResult()}
	tool := NewGetWeatherTool(svc, 7)

	if _, err := tool.Execute(`{"city": "Paris", "country": "France", "days": 3}`); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if svc.gotCountry != "France" {
		t.Errorf("country = %q, want France", svc.gotCountry)
	}
	if svc.gotDays != 3 {
		t.Errorf("days = %d, want 3", svc.gotDays)
	}
}

func TestGetWeatherTool_Execute_InvalidArguments(t *testing.T) {
	tool := NewGetWeatherTool(&fakeWeatherService{}, 7)

	tests := []struct {
		name string
		args string
	}{
		{"malformed JSON", `{city:`},
		{"missing city", `{"state": "CA"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tool.Execute(tt.args)
			if !errors.Is(err, ErrInvalidArguments) {
				t.Errorf("error = %v, want ErrInvalidArguments", err)
			}
		})
	}
}

func TestGetWeatherByCoordinatesTool_Execute(t *testing.T) {
	svc := &fakeWeatherService{result: sampleResult()}
	tool := NewGetWeatherByCoordinatesTool(svc, 7)

	if _, err := tool.Execute(`{"latitude": 34.05, "longitude": -118.24, "days": 3}`); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if svc.gotLat != 34.05 || svc.gotLon != -118.24 {
		t.Errorf("coordinates = (%v, %v), want (34.05, -118.24)", svc.gotLat, svc.gotLon)
	}
	if svc.gotDays != 3 {
		t.Errorf("days = %d, want 3", svc.gotDays)
	}
}

func TestGetWeatherByCoordinatesTool_Execute_MissingCoordinates(t *testing.T) {
	tool := NewGetWeatherByCoordinatesTool(&fakeWeatherService{}, 7)

	_, err := tool.Execute(`{"latitude": 34.05}`)
	if !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("error = %v, want ErrInvalidArguments", err)
	}
}

func TestGetAlertsTool_Execute(t *testing.T) {
	tool := NewGetAlertsTool(&fakeWeatherService{})

	out, err := tool.Execute(`{"state": "CA"}`)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	var alerts weather.AlertsSummary
	if err := json.Unmarshal([]byte(out), &alerts); err != nil {
		t.Fatalf("tool result is not valid JSON: %v", err)
	}
	if alerts.Result != "No active weather alerts for CA" {
		t.Errorf("Result = %q", alerts.Result)
	}
	if alerts.State != "CA" || alerts.AlertsCount != 0 {
		t.Errorf("alerts = %+v", alerts)
	}
}

func TestManager_Execute(t *testing.T) {
	svc := &fakeWeatherService{result: sampleResult()}

	manager := NewManager()
	manager.Register(NewGetWeatherTool(svc, 7))
	manager.Register(NewGetWeatherByCoordinatesTool(svc, 7))
	manager.Register(NewGetAlertsTool(svc))

	if defs := manager.Definitions(); len(defs) != 3 {
		t.Errorf("Definitions length = %d, want 3", len(defs))
	}

	if _, err := manager.Execute("get_alerts", `{"state": "NY"}`); err != nil {
		t.Errorf("Execute(get_alerts) returned error: %v", err)
	}

	_, err := manager.Execute("get_tides", `{}`)
	if !errors.Is(err, ErrUnknownTool) {
		t.Errorf("error = %v, want ErrUnknownTool", err)
	}
}

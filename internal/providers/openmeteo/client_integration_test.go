//go:build integration

package openmeteo

import (
	"encoding/json"
	"testing"
)

func TestForecastClient_GetForecast_Integration(t *testing.T) {
	// Test coordinates: downtown Los Angeles
	lat := 34.05
	lon := -118.24

	client := NewForecastClient()

	t.Logf("Making API call to Open-Meteo forecast API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.GetForecast(lat, lon, 7)
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.Current == nil {
		t.Fatal("Current block is nil")
	}
	if resp.Current.Temperature2M == nil {
		t.Error("Temperature2M is nil")
	}
	if resp.Current.WeatherCode == nil {
		t.Error("WeatherCode is nil")
	}
	if resp.Daily == nil {
		t.Fatal("Daily block is nil")
	}
	if len(resp.Daily.Time) != 7 {
		t.Errorf("Expected 7 daily entries, got %d", len(resp.Daily.Time))
	}
	if len(resp.Daily.WeatherCode) != len(resp.Daily.Time) {
		t.Errorf("weather_code length %d does not match time length %d",
			len(resp.Daily.WeatherCode), len(resp.Daily.Time))
	}

	t.Log("✓ API call successful, response structure valid")
}

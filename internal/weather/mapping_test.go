package weather

import (
	"testing"

	"weather-tools/internal/providers/openmeteo"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func fullResponse() *openmeteo.ForecastAPIResponse {
	return &openmeteo.ForecastAPIResponse{
		Latitude:  34.05,
		Longitude: -118.24,
		Current: &openmeteo.CurrentWeather{
			Temperature2M:       floatPtr(22.4),
			RelativeHumidity2M:  floatPtr(55),
			ApparentTemperature: floatPtr(23.1),
			Precipitation:       floatPtr(0.3),
			WeatherCode:         intPtr(61),
			WindSpeed10M:        floatPtr(9.7),
		},
		CurrentUnits: &openmeteo.CurrentWeatherUnits{
			Temperature2M:       "°F",
			RelativeHumidity2M:  "%",
			ApparentTemperature: "°F",
			Precipitation:       "inch",
			WindSpeed10M:        "mp/h",
		},
		Daily: &openmeteo.DailySeries{
			Time:             []string{"2026-08-24", "2026-08-25", "2026-08-26"},
			WeatherCode:      []int{1, 2, 3},
			Temperature2MMax: []float64{28.1, 27.5, 26.9},
			Temperature2MMin: []float64{17.2, 16.8, 16.5},
			PrecipitationSum: []float64{0, 0.2, 1.4},
		},
	}
}

func TestMapForecastResponse(t *testing.T) {
	result := mapForecastResponse(fullResponse(), "Los Angeles, California, United States")

	if result == nil {
		t.Fatal("mapForecastResponse returned nil for a full payload")
	}
	if result.Location != "Los Angeles, California, United States" {
		t.Errorf("Location = %q", result.Location)
	}
	if result.Latitude != 34.05 || result.Longitude != -118.24 {
		t.Errorf("coordinates = (%v, %v), want (34.05, -118.24)", result.Latitude, result.Longitude)
	}

	if result.Current.Temperature != 22.4 {
		t.Errorf("Temperature = %v, want 22.4", result.Current.Temperature)
	}
	if result.Current.FeelsLike != 23.1 {
		t.Errorf("FeelsLike = %v, want 23.1", result.Current.FeelsLike)
	}
	if result.Current.Humidity != 55 {
		t.Errorf("Humidity = %v, want 55", result.Current.Humidity)
	}
	if result.Current.WindSpeed != 9.7 {
		t.Errorf("WindSpeed = %v, want 9.7", result.Current.WindSpeed)
	}
	if result.Current.Precipitation != 0.3 {
		t.Errorf("Precipitation = %v, want 0.3", result.Current.Precipitation)
	}
	if result.Current.Conditions != "Slight rain" {
		t.Errorf("Conditions = %q, want %q", result.Current.Conditions, "Slight rain")
	}
	if result.Current.Units["temperature"] != "°F" {
		t.Errorf("temperature unit = %q, want °F", result.Current.Units["temperature"])
	}
	if result.Current.Units["precipitation"] != "inch" {
		t.Errorf("precipitation unit = %q, want inch", result.Current.Units["precipitation"])
	}

	if len(result.Forecast) != 3 {
		t.Fatalf("Forecast length = %d, want 3", len(result.Forecast))
	}
	first := result.Forecast[0]
	if first.Date != "2026-08-24" {
		t.Errorf("Date = %q, want 2026-08-24", first.Date)
	}
	if first.MinTemp != 17.2 || first.MaxTemp != 28.1 {
		t.Errorf("temps = (%v, %v), want (17.2, 28.1)", first.MinTemp, first.MaxTemp)
	}
	if first.Conditions != "Mainly clear" {
		t.Errorf("Conditions = %q, want %q", first.Conditions, "Mainly clear")
	}
}

func TestMapForecastResponse_AbsentPayload(t *testing.T) {
	if result := mapForecastResponse(nil, "anywhere"); result != nil {
		t.Errorf("expected nil for absent payload, got %+v", result)
	}

	noCurrent := &openmeteo.ForecastAPIResponse{Latitude: 34.05, Longitude: -118.24}
	if result := mapForecastResponse(noCurrent, "anywhere"); result != nil {
		t.Errorf("expected nil for payload without current block, got %+v", result)
	}
}

func TestMapForecastResponse_MissingCurrentFields(t *testing.T) {
	resp := &openmeteo.ForecastAPIResponse{
		Latitude:  34.05,
		Longitude: -118.24,
		Current:   &openmeteo.CurrentWeather{},
	}

	result := mapForecastResponse(resp, "somewhere")
	if result == nil {
		t.Fatal("mapForecastResponse returned nil")
	}

	if result.Current.Temperature != 0 || result.Current.FeelsLike != 0 ||
		result.Current.Humidity != 0 || result.Current.WindSpeed != 0 ||
		result.Current.Precipitation != 0 {
		t.Errorf("missing scalars should zero-fill, got %+v", result.Current)
	}
	// Missing weather code defaults to 0
	if result.Current.Conditions != "Clear sky" {
		t.Errorf("Conditions = %q, want %q", result.Current.Conditions, "Clear sky")
	}
	if len(result.Forecast) != 0 {
		t.Errorf("Forecast length = %d, want 0", len(result.Forecast))
	}
}

func TestMapForecastResponse_UnitFallbacks(t *testing.T) {
	resp := &openmeteo.ForecastAPIResponse{
		Current: &openmeteo.CurrentWeather{Temperature2M: floatPtr(20)},
	}

	result := mapForecastResponse(resp, "somewhere")
	if result == nil {
		t.Fatal("mapForecastResponse returned nil")
	}

	expected := map[string]string{
		"temperature":   "°C",
		"feels_like":    "°C",
		"humidity":      "%",
		"wind_speed":    "km/h",
		"precipitation": "mm",
	}
	for field, unit := range expected {
		if result.Current.Units[field] != unit {
			t.Errorf("unit for %s = %q, want %q", field, result.Current.Units[field], unit)
		}
	}
}

func TestMapDailySeries_WeatherCodeBoundsLength(t *testing.T) {
	daily := &openmeteo.DailySeries{
		Time:             []string{"2026-08-24", "2026-08-25", "2026-08-26", "2026-08-27", "2026-08-28"},
		WeatherCode:      []int{0, 1, 2},
		Temperature2MMax: []float64{28, 27, 26, 25, 24},
		Temperature2MMin: []float64{17, 16, 15, 14, 13},
		PrecipitationSum: []float64{0, 0, 0, 0, 0},
	}

	forecast := mapDailySeries(daily)
	if len(forecast) != 3 {
		t.Fatalf("forecast length = %d, want 3 (bounded by weather_code)", len(forecast))
	}
	if forecast[2].Date != "2026-08-26" {
		t.Errorf("last date = %q, want 2026-08-26", forecast[2].Date)
	}
}

func TestMapDailySeries_ShortSeriesZeroFill(t *testing.T) {
	daily := &openmeteo.DailySeries{
		Time:             []string{"2026-08-24", "2026-08-25"},
		WeatherCode:      []int{0, 1},
		Temperature2MMax: []float64{28},
		Temperature2MMin: []float64{},
		// precipitation_sum absent entirely
	}

	forecast := mapDailySeries(daily)
	if len(forecast) != 2 {
		t.Fatalf("forecast length = %d, want 2", len(forecast))
	}
	for i, day := range forecast {
		if day.Precipitation != 0 {
			t.Errorf("day %d Precipitation = %v, want 0", i, day.Precipitation)
		}
		if day.MinTemp != 0 {
			t.Errorf("day %d MinTemp = %v, want 0", i, day.MinTemp)
		}
	}
	if forecast[0].MaxTemp != 28 {
		t.Errorf("day 0 MaxTemp = %v, want 28", forecast[0].MaxTemp)
	}
	if forecast[1].MaxTemp != 0 {
		t.Errorf("day 1 MaxTemp = %v, want 0", forecast[1].MaxTemp)
	}
}

func TestMapDailySeries_NilSeries(t *testing.T) {
	forecast := mapDailySeries(nil)
	if forecast == nil {
		t.Fatal("mapDailySeries(nil) should return an empty slice, not nil")
	}
	if len(forecast) != 0 {
		t.Errorf("forecast length = %d, want 0", len(forecast))
	}
}

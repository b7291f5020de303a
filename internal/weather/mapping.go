package weather

import (
	"weather-tools/internal/providers/openmeteo"
	"weather-tools/internal/types"
)

// currentUnitDefaults is the single fallback table consulted when the
// provider omits a unit string for a current-conditions field.
var currentUnitDefaults = map[string]string{
	"temperature":   "°C",
	"feels_like":    "°C",
	"humidity":      "%",
	"wind_speed":    "km/h",
	"precipitation": "mm",
}

// mapForecastResponse translates a raw provider payload into the stable
// output schema. Returns nil when the payload or its current block is absent,
// meaning there is no data to show. Missing scalars degrade to zero values
// and a missing weather code is treated as code 0.
func mapForecastResponse(resp *openmeteo.ForecastAPIResponse, locationLabel string) *WeatherResult {
	if resp == nil || resp.Current == nil {
		return nil
	}

	current := resp.Current

	code := 0
	if current.WeatherCode != nil {
		code = *current.WeatherCode
	}

	return &WeatherResult{
		Location:  locationLabel,
		Latitude:  resp.Latitude,
		Longitude: resp.Longitude,
		Current: CurrentConditions{
			Temperature:   floatValue(current.Temperature2M),
			FeelsLike:     floatValue(current.ApparentTemperature),
			Humidity:      floatValue(current.RelativeHumidity2M),
			WindSpeed:     floatValue(current.WindSpeed10M),
			Precipitation: floatValue(current.Precipitation),
			Conditions:    types.GetWeatherDescription(code),
			Units:         mapCurrentUnits(resp.CurrentUnits),
		},
		Forecast: mapDailySeries(resp.Daily),
	}
}

// mapDailySeries emits one entry per date while the index stays within the
// weather-code series; dates without a code are dropped. Shorter temperature
// and precipitation series zero-fill per entry.
func mapDailySeries(daily *openmeteo.DailySeries) []DailyForecast {
	forecast := []DailyForecast{}
	if daily == nil {
		return forecast
	}

	for i, date := range daily.Time {
		if i >= len(daily.WeatherCode) {
			break
		}
		forecast = append(forecast, DailyForecast{
			Date:          date,
			MinTemp:       floatAt(daily.Temperature2MMin, i),
			MaxTemp:       floatAt(daily.Temperature2MMax, i),
			Precipitation: floatAt(daily.PrecipitationSum, i),
			Conditions:    types.GetWeatherDescription(daily.WeatherCode[i]),
		})
	}

	return forecast
}

// mapCurrentUnits starts from the fallback table and overlays any unit
// strings the provider supplied
func mapCurrentUnits(units *openmeteo.CurrentWeatherUnits) map[string]string {
	out := make(map[string]string, len(currentUnitDefaults))
	for field, fallback := range currentUnitDefaults {
		out[field] = fallback
	}
	if units == nil {
		return out
	}

	overlay := map[string]string{
		"temperature":   units.Temperature2M,
		"feels_like":    units.ApparentTemperature,
		"humidity":      units.RelativeHumidity2M,
		"wind_speed":    units.WindSpeed10M,
		"precipitation": units.Precipitation,
	}
	for field, unit := range overlay {
		if unit != "" {
			out[field] = unit
		}
	}

	return out
}

func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func floatAt(series []float64, i int) float64 {
	if i >= len(series) {
		return 0
	}
	return series[i]
}

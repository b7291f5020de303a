package openmeteo

// ForecastAPIResponse is the Open-Meteo forecast payload for a single point.
// Current-block scalars are pointers and daily series are parallel arrays, so
// fields the provider omitted stay representable and mapping can degrade to
// defaults instead of failing.
type ForecastAPIResponse struct {
	Latitude     float64              `json:"latitude"`
	Longitude    float64              `json:"longitude"`
	Timezone     string               `json:"timezone"`
	Elevation    float64              `json:"elevation"`
	Current      *CurrentWeather      `json:"current"`
	CurrentUnits *CurrentWeatherUnits `json:"current_units"`
	Daily        *DailySeries         `json:"daily"`
}

// CurrentWeather holds the requested current-conditions variables.
type CurrentWeather struct {
	Time                string   `json:"time"`
	Interval            int      `json:"interval"`
	Temperature2M       *float64 `json:"temperature_2m"`
	RelativeHumidity2M  *float64 `json:"relative_humidity_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	Precipitation       *float64 `json:"precipitation"`
	WeatherCode         *int     `json:"weather_code"`
	WindSpeed10M        *float64 `json:"wind_speed_10m"`
}

// CurrentWeatherUnits carries the unit strings for the current block.
type CurrentWeatherUnits struct {
	Temperature2M       string `json:"temperature_2m"`
	RelativeHumidity2M  string `json:"relative_humidity_2m"`
	ApparentTemperature string `json:"apparent_temperature"`
	Precipitation       string `json:"precipitation"`
	WindSpeed10M        string `json:"wind_speed_10m"`
}

// DailySeries holds the per-day forecast variables as parallel arrays keyed
// by the Time sequence.
type DailySeries struct {
	Time             []string  `json:"time"`
	WeatherCode      []int     `json:"weather_code"`
	Temperature2MMax []float64 `json:"temperature_2m_max"`
	Temperature2MMin []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
}

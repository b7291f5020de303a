package weather

// CurrentConditions describes the current weather at a location. All
// measurement fields are always present in the output; values the provider
// omitted are zero-filled and units fall back to provider defaults.
type CurrentConditions struct {
	Temperature   float64           `json:"temperature"`
	FeelsLike     float64           `json:"feels_like"`
	Humidity      float64           `json:"humidity"`
	WindSpeed     float64           `json:"wind_speed"`
	Precipitation float64           `json:"precipitation"`
	Conditions    string            `json:"conditions"`
	Units         map[string]string `json:"units"`
}

// DailyForecast is a single day of the forecast sequence
type DailyForecast struct {
	Date          string  `json:"date"`
	MinTemp       float64 `json:"min_temp"`
	MaxTemp       float64 `json:"max_temp"`
	Precipitation float64 `json:"precipitation"`
	Conditions    string  `json:"conditions"`
}

// WeatherResult is the complete caller-visible weather response
type WeatherResult struct {
	Location  string            `json:"location"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Current   CurrentConditions `json:"current"`
	Forecast  []DailyForecast   `json:"forecast"`
}

// AlertsSummary reports active weather alerts for a US state
type AlertsSummary struct {
	Result      string `json:"result"`
	State       string `json:"state"`
	AlertsCount int    `json:"alerts_count"`
}

package types

// WeatherCode represents a WMO weather code
type WeatherCode int

// Weather represents weather conditions with a code and description
type Weather struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// Weather code constants
const (
	ClearSky               WeatherCode = 0
	MainlyClear            WeatherCode = 1
	PartlyCloudy           WeatherCode = 2
	Overcast               WeatherCode = 3
	Fog                    WeatherCode = 45
	DepositingRimeFog      WeatherCode = 48
	DrizzleLight           WeatherCode = 51
	DrizzleModerate        WeatherCode = 53
	DrizzleDense           WeatherCode = 55
	FreezingDrizzleLight   WeatherCode = 56
	FreezingDrizzleDense   WeatherCode = 57
	RainSlight             WeatherCode = 61
	RainModerate           WeatherCode = 63
	RainHeavy              WeatherCode = 65
	FreezingRainLight      WeatherCode = 66
	FreezingRainHeavy      WeatherCode = 67
	SnowFallSlight         WeatherCode = 71
	SnowFallModerate       WeatherCode = 73
	SnowFallHeavy          WeatherCode = 75
	SnowGrains             WeatherCode = 77
	RainShowersSlight      WeatherCode = 80
	RainShowersModerate    WeatherCode = 81
	RainShowersViolent     WeatherCode = 82
	SnowShowersSlight      WeatherCode = 85
	SnowShowersHeavy       WeatherCode = 86
	Thunderstorm           WeatherCode = 95
	ThunderstormSlightHail WeatherCode = 96
	ThunderstormHeavyHail  WeatherCode = 99
)

// weatherDescriptions maps weather codes to their descriptions
var weatherDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// GetWeatherDescription returns the description for a given weather code
func GetWeatherDescription(code int) string {
	if desc, ok := weatherDescriptions[code]; ok {
		return desc
	}
	return "Unknown"
}

// NewWeather creates a Weather instance from a weather code
func NewWeather(code int) Weather {
	return Weather{
		Code:        code,
		Description: GetWeatherDescription(code),
	}
}

package openmeteo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=34.05&longitude=-118.24&current=temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m&daily=weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum&timezone=auto&forecast_days=7
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
	defaultTimeout  = 10 * time.Second

	// Forecast day bounds supported by the provider
	MinForecastDays = 1
	MaxForecastDays = 16
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewForecastClient() *ForecastClient {
	return NewForecastClientWithOptions(baseForecastURL, defaultTimeout)
}

// NewForecastClientWithOptions creates a client against a custom endpoint,
// useful for configuration overrides and tests.
func NewForecastClientWithOptions(baseURL string, timeout time.Duration) *ForecastClient {
	return &ForecastClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// GetForecast fetches current conditions and a daily forecast for the given
// coordinates. forecastDays is clamped to the provider's supported [1,16]
// range before the request is built.
func (c *ForecastClient) GetForecast(latitude, longitude float64, forecastDays int) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	forecastDays = min(max(forecastDays, MinForecastDays), MaxForecastDays)

	currentVars := []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"precipitation",
		"weather_code",
		"wind_speed_10m",
	}

	dailyVars := []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	u.RawQuery = q.Encode()

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

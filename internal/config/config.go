package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Geocoding GeocodingConfig
	Forecast  ForecastConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	ForecastDays int // Default number of days to forecast when a tool call omits it
}

// GeocodingConfig holds settings for the geocoding provider
type GeocodingConfig struct {
	BaseURL        string
	TimeoutSeconds int
	UserAgent      string
}

// ForecastConfig holds settings for the weather forecast provider
type ForecastConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.weather-tools")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("app.forecastDays", 7)
	viper.SetDefault("geocoding.baseURL", "https://nominatim.openstreetmap.org/search")
	viper.SetDefault("geocoding.timeoutSeconds", 15)
	viper.SetDefault("geocoding.userAgent", "weather-tools/1.0")
	viper.SetDefault("forecast.baseURL", "https://api.open-meteo.com/v1/forecast")
	viper.SetDefault("forecast.timeoutSeconds", 10)

	// Read from environment variables
	viper.SetEnvPrefix("WEATHER_TOOLS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// GeocodingTimeout returns the geocoding call timeout as a duration
func (c *Config) GeocodingTimeout() time.Duration {
	return time.Duration(c.Geocoding.TimeoutSeconds) * time.Second
}

// ForecastTimeout returns the forecast call timeout as a duration
func (c *Config) ForecastTimeout() time.Duration {
	return time.Duration(c.Forecast.TimeoutSeconds) * time.Second
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

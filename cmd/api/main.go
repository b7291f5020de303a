package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g main.go -o ../../docs --parseDependency

import (
	"log"
	"log/slog"
	"weather-tools/internal/config"

	_ "weather-tools/docs" // Import generated docs
)

// @title Weather Tools API
// @version 1.0
// @description Weather lookup tools for agent protocols: place and coordinate forecasts plus a weather alerts stub.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Create app
	app := NewApp(cfg, logger)

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}

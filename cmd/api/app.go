package main

import (
	"log/slog"
	"weather-tools/internal/config"
	"weather-tools/internal/tools"
	"weather-tools/internal/weather"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	weatherService weather.Service
	toolManager    *tools.Manager
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Initialize weather service and register the tool set
	weatherSvc := weather.NewWeatherService(cfg, logger)

	toolManager := tools.NewManager()
	toolManager.Register(tools.NewGetWeatherTool(weatherSvc, cfg.App.ForecastDays))
	toolManager.Register(tools.NewGetWeatherByCoordinatesTool(weatherSvc, cfg.App.ForecastDays))
	toolManager.Register(tools.NewGetAlertsTool(weatherSvc))

	app := &App{
		router:         router,
		logger:         logger,
		weatherService: weatherSvc,
		toolManager:    toolManager,
		cfg:            cfg,
	}

	logger.Info("application initialized", "tools", len(toolManager.Definitions()))

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

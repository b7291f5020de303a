package main

import (
	"errors"
	"io"
	"net/http"

	"weather-tools/internal/tools"

	"github.com/gin-gonic/gin"
)

// ListToolsResponse wraps the registered tool definitions
type ListToolsResponse struct {
	Tools []tools.Tool `json:"tools"`
}

// handleListTools godoc
// @Summary List available tools
// @Description Return the definitions of all registered weather tools
// @Tags tools
// @Produce json
// @Success 200 {object} ListToolsResponse
// @Router /v1/tools [get]
func (app *App) handleListTools(c *gin.Context) {
	c.JSON(http.StatusOK, ListToolsResponse{
		Tools: app.toolManager.Definitions(),
	})
}

// handleCallTool godoc
// @Summary Call a tool
// @Description Execute a registered tool by name. The request body is the JSON arguments object for the tool; the response body is the tool's JSON result.
// @Tags tools
// @Accept json
// @Produce json
// @Param name path string true "Tool name" example(get_weather)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /v1/tools/{name} [post]
func (app *App) handleCallTool(c *gin.Context) {
	name := c.Param("name")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	// An empty body means a call with no arguments
	if len(body) == 0 {
		body = []byte("{}")
	}

	result, err := app.toolManager.Execute(name, string(body))
	if err != nil {
		switch {
		case errors.Is(err, tools.ErrUnknownTool):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, tools.ErrInvalidArguments):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			app.logger.Error("tool execution failed", "tool", name, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "tool execution failed"})
		}
		return
	}

	c.Data(http.StatusOK, "application/json", []byte(result))
}

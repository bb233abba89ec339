package routes

import (
	"net/http"
	"time"

	"github.com/lexgraph/lexgraph/internal/server/middleware"
	"github.com/lexgraph/lexgraph/pkg/common"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service health. It runs a minimal processing pass
// so a broken annotation sidecar shows up here instead of on the first
// real request.
func HealthHandler(c echo.Context) error {
	type healthResponse struct {
		Status         string          `json:"status"`
		Timestamp      string          `json:"timestamp"`
		Components     map[string]bool `json:"components"`
		TestProcessing bool            `json:"test_processing"`
		Error          string          `json:"error,omitempty"`
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	result := app.Processor.Process(ctx, "Test sentence.", common.Options{
		BasicPreprocessing: true,
	})

	components := map[string]bool{
		"annotator":   app.Annotator != nil,
		"sentiment":   true,
		"readability": true,
		"refiner":     app.AiClient != nil,
	}

	if !result.Success {
		return c.JSON(http.StatusInternalServerError, healthResponse{
			Status:         "unhealthy",
			Timestamp:      time.Now().Format(time.RFC3339),
			Components:     components,
			TestProcessing: false,
			Error:          result.Error,
		})
	}

	return c.JSON(http.StatusOK, healthResponse{
		Status:         "healthy",
		Timestamp:      time.Now().Format(time.RFC3339),
		Components:     components,
		TestProcessing: true,
	})
}

package server

import (
	"github.com/lexgraph/lexgraph/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	apiRoutes.GET("/health", routes.HealthHandler)

	// Processing routes
	apiRoutes.POST("/process-advanced", routes.ProcessAdvancedHandler)
	apiRoutes.POST("/process-enhanced", routes.ProcessEnhancedHandler)

	// Single-analysis routes
	apiRoutes.POST("/keywords-only", routes.KeywordsOnlyHandler)
	apiRoutes.POST("/entities-only", routes.EntitiesOnlyHandler)
	apiRoutes.POST("/sentiment-only", routes.SentimentOnlyHandler)
}

package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/lexgraph/lexgraph/internal/server/middleware"
	"github.com/lexgraph/lexgraph/pkg/common"
	"github.com/lexgraph/lexgraph/pkg/nlp"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// EntitiesOnlyHandler extracts deduplicated named entities without running
// the rest of the pipeline.
func EntitiesOnlyHandler(c echo.Context) error {
	type entitiesOnlyBody struct {
		Text string `json:"text" validate:"required"`
	}

	type entitiesOnlyResponse struct {
		Entities    []common.Entity `json:"entities"`
		Count       int             `json:"count"`
		EntityTypes []string        `json:"entity_types"`
		ProcessedAt string          `json:"processed_at"`
		Error       string          `json:"error,omitempty"`
	}

	data := new(entitiesOnlyBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, entitiesOnlyResponse{
			Error: "Invalid request body",
		})
	}
	data.Text = strings.TrimSpace(data.Text)
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, entitiesOnlyResponse{
			Error: "No text provided",
		})
	}
	if err := nlp.ValidateInput(data.Text); err != nil {
		return c.JSON(http.StatusBadRequest, entitiesOnlyResponse{
			Error: err.Error(),
		})
	}

	app := c.(*middleware.AppContext).App
	doc, err := app.Annotator.Annotate(c.Request().Context(), data.Text)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, entitiesOnlyResponse{
			Error: err.Error(),
		})
	}

	entities := nlp.DedupeEntities(doc.Entities)

	typeSeen := make(map[string]bool)
	entityTypes := make([]string, 0)
	for _, entity := range entities {
		if !typeSeen[entity.Label] {
			typeSeen[entity.Label] = true
			entityTypes = append(entityTypes, entity.Label)
		}
	}

	return c.JSON(http.StatusOK, entitiesOnlyResponse{
		Entities:    entities,
		Count:       len(entities),
		EntityTypes: entityTypes,
		ProcessedAt: time.Now().Format(time.RFC3339),
	})
}

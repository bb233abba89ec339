package routes

import (
	"net/http"
	"strings"

	"github.com/lexgraph/lexgraph/internal/server/middleware"
	"github.com/lexgraph/lexgraph/pkg/common"
	"github.com/lexgraph/lexgraph/pkg/logger"
	"github.com/lexgraph/lexgraph/pkg/nlp"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// ProcessAdvancedHandler runs the base analysis pipeline and returns the
// graph-building lists. Unspecified options fall back to the streamlined
// knowledge graph defaults.
func ProcessAdvancedHandler(c echo.Context) error {
	type processAdvancedBody struct {
		Text    string       `json:"text" validate:"required"`
		Options *optionFlags `json:"options"`
	}

	type processAdvancedResponse struct {
		Entities      []common.Entity       `json:"entities"`
		Keywords      []common.Keyword      `json:"keywords"`
		Relationships []common.Relationship `json:"relationships"`
		Error         string                `json:"error,omitempty"`
	}

	data := new(processAdvancedBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, processAdvancedResponse{
			Error: "Invalid request body",
		})
	}
	data.Text = strings.TrimSpace(data.Text)
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, processAdvancedResponse{
			Error: "No text provided for processing",
		})
	}
	if err := nlp.ValidateInput(data.Text); err != nil {
		return c.JSON(http.StatusBadRequest, processAdvancedResponse{
			Error: err.Error(),
		})
	}

	opts := data.Options.apply(common.DefaultOptions())

	logger.Info("[API] Processing text",
		"chars", len(data.Text),
		"words", len(strings.Fields(data.Text)),
	)

	app := c.(*middleware.AppContext).App
	result := app.Processor.Process(c.Request().Context(), data.Text, opts)
	if !result.Success {
		return c.JSON(http.StatusInternalServerError, processAdvancedResponse{
			Error: result.Error,
		})
	}

	return c.JSON(http.StatusOK, processAdvancedResponse{
		Entities:      result.Entities,
		Keywords:      result.Keywords,
		Relationships: result.Relationships,
	})
}

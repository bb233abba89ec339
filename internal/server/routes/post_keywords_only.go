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

// KeywordsOnlyHandler extracts ranked keywords without running the rest of
// the pipeline.
func KeywordsOnlyHandler(c echo.Context) error {
	type keywordsOnlyBody struct {
		Text        string `json:"text" validate:"required"`
		MaxKeywords int    `json:"max_keywords" validate:"omitempty,min=1"`
	}

	type keywordsOnlyResponse struct {
		Keywords    []common.Keyword `json:"keywords"`
		Count       int              `json:"count"`
		ProcessedAt string           `json:"processed_at"`
		Error       string           `json:"error,omitempty"`
	}

	data := new(keywordsOnlyBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, keywordsOnlyResponse{
			Error: "Invalid request body",
		})
	}
	data.Text = strings.TrimSpace(data.Text)
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, keywordsOnlyResponse{
			Error: "No text provided",
		})
	}
	if err := nlp.ValidateInput(data.Text); err != nil {
		return c.JSON(http.StatusBadRequest, keywordsOnlyResponse{
			Error: err.Error(),
		})
	}

	app := c.(*middleware.AppContext).App
	doc, err := app.Annotator.Annotate(c.Request().Context(), data.Text)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, keywordsOnlyResponse{
			Error: err.Error(),
		})
	}

	keywords := nlp.ExtractKeywords(doc, data.MaxKeywords)
	return c.JSON(http.StatusOK, keywordsOnlyResponse{
		Keywords:    keywords,
		Count:       len(keywords),
		ProcessedAt: time.Now().Format(time.RFC3339),
	})
}

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

// SentimentOnlyHandler runs sentiment analysis without the rest of the
// pipeline.
func SentimentOnlyHandler(c echo.Context) error {
	type sentimentOnlyBody struct {
		Text string `json:"text" validate:"required"`
	}

	type sentimentOnlyResponse struct {
		Sentiment   *common.Sentiment `json:"sentiment,omitempty"`
		ProcessedAt string            `json:"processed_at"`
		Error       string            `json:"error,omitempty"`
	}

	data := new(sentimentOnlyBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, sentimentOnlyResponse{
			Error: "Invalid request body",
		})
	}
	data.Text = strings.TrimSpace(data.Text)
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, sentimentOnlyResponse{
			Error: "No text provided",
		})
	}
	if err := nlp.ValidateInput(data.Text); err != nil {
		return c.JSON(http.StatusBadRequest, sentimentOnlyResponse{
			Error: err.Error(),
		})
	}

	app := c.(*middleware.AppContext).App
	sentiment := nlp.AnalyzeSentiment(app.Polarity, data.Text)
	return c.JSON(http.StatusOK, sentimentOnlyResponse{
		Sentiment:   sentiment,
		ProcessedAt: time.Now().Format(time.RFC3339),
	})
}

package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/lexgraph/lexgraph/internal/server/middleware"
	"github.com/lexgraph/lexgraph/internal/util"
	"github.com/lexgraph/lexgraph/pkg/annotate"
	"github.com/lexgraph/lexgraph/pkg/logger"
	"github.com/lexgraph/lexgraph/pkg/polarity"
	"github.com/lexgraph/lexgraph/pkg/readability"

	"github.com/go-playground/validator"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	annotator := annotate.NewHTTPClient(annotate.NewHTTPClientParams{
		BaseURL: util.GetEnvString("ANNOTATOR_URL", "http://localhost:9000"),
		Timeout: time.Duration(util.GetEnvNumeric("ANNOTATOR_TIMEOUT_SEC", 30)) * time.Second,
	})
	polarityScorer := polarity.NewLexiconScorer()
	readabilityScorer := readability.NewFleschScorer()

	e.Use(mid.AppContextMiddleware(annotator, polarityScorer, readabilityScorer))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))

	RegisterRoutes(e)

	if staticDir := util.GetEnv("STATIC_DIR"); staticDir != "" {
		e.Static("/", staticDir)
	}

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

package middleware

import (
	"github.com/lexgraph/lexgraph/internal/util"

	"github.com/labstack/echo/v4"

	"github.com/lexgraph/lexgraph/pkg/ai"
	oai "github.com/lexgraph/lexgraph/pkg/ai/ollama"
	gai "github.com/lexgraph/lexgraph/pkg/ai/openai"
	"github.com/lexgraph/lexgraph/pkg/annotate"
	"github.com/lexgraph/lexgraph/pkg/logger"
	"github.com/lexgraph/lexgraph/pkg/nlp"
	"github.com/lexgraph/lexgraph/pkg/refine"
)

type App struct {
	Annotator annotate.Annotator
	Polarity  nlp.PolarityScorer
	Processor *nlp.Processor
	Pipeline  *refine.Pipeline
	AiClient  ai.RefinerClient
}

type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware wires the processing components into every request.
// The refiner client is selected per request from the environment: "ollama"
// for a local model, "openai" for an OpenAI-compatible endpoint, anything
// else (or a missing API key) runs without external refinement and relies
// on the rule fallback.
func AppContextMiddleware(
	annotator annotate.Annotator,
	polarity nlp.PolarityScorer,
	readability nlp.ReadabilityScorer,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			adapter := util.GetEnv("AI_ADAPTER")
			var aiClient ai.RefinerClient

			switch adapter {
			case "ollama":
				client, err := oai.NewRefineOllamaClient(oai.NewRefineOllamaClientParams{
					RefinementModel: util.GetEnv("AI_REFINE_MODEL"),

					BaseURL: util.GetEnv("AI_CHAT_URL"),
					ApiKey:  util.GetEnv("AI_CHAT_KEY"),

					MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 4)),
				})
				if err != nil {
					logger.Fatal("Failed to create Ollama client", "err", err)
				}
				aiClient = client
			case "openai":
				if util.GetEnv("AI_CHAT_KEY") != "" {
					aiClient = gai.NewRefineOpenAIClient(gai.NewRefineOpenAIClientParams{
						RefinementModel: util.GetEnv("AI_REFINE_MODEL"),

						ChatURL: util.GetEnv("AI_CHAT_URL"),
						ChatKey: util.GetEnv("AI_CHAT_KEY"),
					})
				}
			}

			processor := nlp.NewProcessor(nlp.NewProcessorParams{
				Annotator:   annotator,
				Polarity:    polarity,
				Readability: readability,
			})

			var genOpts []ai.GenerateOption
			if thinking := util.GetEnv("AI_THINKING"); thinking != "" {
				genOpts = append(genOpts, ai.WithThinking(thinking))
			}
			if temperature := util.GetEnvNumeric("AI_TEMPERATURE", 0); temperature > 0 {
				genOpts = append(genOpts, ai.WithTemperature(temperature))
			}

			refiner := refine.NewRefiner(refine.NewRefinerParams{
				Client:          aiClient,
				MaxRetries:      int(util.GetEnvNumeric("AI_MAX_RETRIES", 2)),
				GenerateOptions: genOpts,
			})

			pipeline := refine.NewPipeline(refine.NewPipelineParams{
				Processor:   processor,
				Refiner:     refiner,
				MaxParallel: int(util.GetEnvNumeric("AI_PARALLEL_REQ", 4)),
			})

			app := &App{
				Annotator: annotator,
				Polarity:  polarity,
				Processor: processor,
				Pipeline:  pipeline,
				AiClient:  aiClient,
			}
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}

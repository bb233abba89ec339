package openai

import (
	"sync"

	"github.com/lexgraph/lexgraph/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// RefineOpenAIClient implements ai.RefinerClient against an OpenAI-compatible
// chat completion endpoint.
//
// A RefineOpenAIClient should be created using NewRefineOpenAIClient.
type RefineOpenAIClient struct {
	refinementModel string

	chatURL string
	chatKey string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient *openai.Client
}

// NewRefineOpenAIClientParams defines the configuration parameters for
// creating a new RefineOpenAIClient.
//
// RefinementModel specifies the model used for batch refinement.
// ChatURL and ChatKey configure the chat/completion API endpoint; an empty
// ChatURL selects the default OpenAI endpoint.
type NewRefineOpenAIClientParams struct {
	RefinementModel string

	ChatURL string
	ChatKey string
}

// NewRefineOpenAIClient creates and returns a new RefineOpenAIClient
// configured with the provided parameters.
//
// Example:
//
//	params := openai.NewRefineOpenAIClientParams{
//		RefinementModel: "gpt-4o-mini",
//		ChatURL:         "https://api.openai.com/v1",
//		ChatKey:         os.Getenv("OPENAI_API_KEY"),
//	}
//	client := openai.NewRefineOpenAIClient(params)
func NewRefineOpenAIClient(
	params NewRefineOpenAIClientParams,
) *RefineOpenAIClient {
	return &RefineOpenAIClient{
		refinementModel: params.RefinementModel,

		chatURL: params.ChatURL,
		chatKey: params.ChatKey,

		metricsLock: sync.Mutex{},
		metrics: ai.ModelMetrics{
			InputTokens:  0,
			OutputTokens: 0,
			TotalTokens:  0,
			DurationMs:   0,
		},

		ChatClient: newOpenaiClient(params.ChatURL, params.ChatKey),
	}
}

func newOpenaiClient(
	baseURL string,
	apiKey string,
) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}

	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)

	return &client
}

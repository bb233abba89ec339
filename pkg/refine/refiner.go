package refine

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkoukk/tiktoken-go"

	"github.com/lexgraph/lexgraph/internal/util"
	"github.com/lexgraph/lexgraph/pkg/ai"
	"github.com/lexgraph/lexgraph/pkg/common"
	"github.com/lexgraph/lexgraph/pkg/logger"
)

// DefaultMaxPromptTokens bounds refinement prompt size. Prompts above the
// budget skip the external refiner and go straight to the rule fallback.
const DefaultMaxPromptTokens = 8192

// Refiner cleans and standardizes one batch at a time. With an external
// client configured it asks for schema-constrained output first and falls
// back to a plain completion parsed flexibly; without a client, or on any
// external failure, it falls back to deterministic rules. Refinement never
// fails outward: the worst case is a pass-through of the original items
// recorded as failed.
type Refiner struct {
	client          ai.RefinerClient
	maxPromptTokens int
	maxRetries      int
	genOpts         []ai.GenerateOption
}

type NewRefinerParams struct {
	// Client is the external refiner, nil when none is configured.
	Client          ai.RefinerClient
	MaxPromptTokens int
	MaxRetries      int
	// GenerateOptions are applied to every external refiner call.
	GenerateOptions []ai.GenerateOption
}

func NewRefiner(params NewRefinerParams) *Refiner {
	if params.MaxPromptTokens <= 0 {
		params.MaxPromptTokens = DefaultMaxPromptTokens
	}
	if params.MaxRetries <= 0 {
		params.MaxRetries = 1
	}
	return &Refiner{
		client:          params.Client,
		maxPromptTokens: params.MaxPromptTokens,
		maxRetries:      params.MaxRetries,
		genOpts:         params.GenerateOptions,
	}
}

// withGenerateOptions returns a copy of the refiner that appends opts to
// every external call. The receiver is left untouched.
func (r *Refiner) withGenerateOptions(opts ...ai.GenerateOption) *Refiner {
	clone := *r
	clone.genOpts = append(append([]ai.GenerateOption{}, r.genOpts...), opts...)
	return &clone
}

// Metrics reports the external client's accumulated token usage. ok is
// false when no external client is configured.
func (r *Refiner) Metrics() (ai.ModelMetrics, bool) {
	if r.client == nil {
		return ai.ModelMetrics{}, false
	}
	return r.client.GetMetrics(), true
}

func (r *Refiner) ResetMetrics() {
	if r.client != nil {
		r.client.ResetMetrics()
	}
}

// RefineBatch refines a single batch and records the method used. Empty
// batches pass through untouched.
func (r *Refiner) RefineBatch(ctx context.Context, batch common.Batch) common.RefinedBatch {
	if len(batch.Items) == 0 {
		return common.RefinedBatch{
			Batch:        batch,
			RefinedItems: batch.Items,
			Method:       common.RefineMethodRules,
		}
	}

	if r.client != nil {
		refined, err := r.refineExternal(ctx, batch)
		if err == nil {
			return common.RefinedBatch{
				Batch:        batch,
				RefinedItems: refined,
				Method:       common.RefineMethodExternal,
			}
		}
		logger.Warn("[Refine] External refinement failed, using rules",
			"batch", batch.ID, "err", err)
	}

	refined, err := refineWithRules(batch)
	if err != nil {
		logger.Error("[Refine] Rule refinement failed, passing items through",
			"batch", batch.ID, "err", err)
		return common.RefinedBatch{
			Batch:        batch,
			RefinedItems: batch.Items,
			Method:       common.RefineMethodFailed,
		}
	}

	return common.RefinedBatch{
		Batch:        batch,
		RefinedItems: refined,
		Method:       common.RefineMethodRules,
	}
}

// Payload shapes for schema-constrained refinement.
type refinedEntities struct {
	Entities []common.Entity `json:"entities" jsonschema_description:"Cleaned, deduplicated entities with canonical names and descriptions"`
}

type refinedKeywords struct {
	Keywords []common.Keyword `json:"keywords" jsonschema_description:"Cleaned, deduplicated keywords with scores between 0 and 1"`
}

type refinedRelationships struct {
	Relationships []common.Relationship `json:"relationships" jsonschema_description:"Cleaned relationships with standardized types and context"`
}

func (r *Refiner) refineExternal(ctx context.Context, batch common.Batch) ([]json.RawMessage, error) {
	itemsJSON, err := json.Marshal(batch.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal batch items: %w", err)
	}

	instructions, err := ai.RefinementPrompt(batch.Type)
	if err != nil {
		return nil, err
	}

	if err := r.checkPromptBudget(instructions + string(itemsJSON)); err != nil {
		return nil, err
	}

	opts := append([]ai.GenerateOption{ai.WithSystemPrompts(instructions)}, r.genOpts...)

	refined, err := r.refineStructured(ctx, batch.Type, string(itemsJSON), opts)
	if err == nil {
		return refined, nil
	}
	logger.Warn("[Refine] Structured refinement failed, retrying as plain completion",
		"batch", batch.ID, "err", err)

	response, err := util.RetryWithContext(ctx, r.maxRetries, func(ctx context.Context) (string, error) {
		return r.client.GenerateCompletion(ctx, string(itemsJSON), opts...)
	})
	if err != nil {
		return nil, fmt.Errorf("refiner call: %w", err)
	}

	var parsed map[string][]json.RawMessage
	if err := ai.UnmarshalFlexible(response, &parsed); err != nil {
		return nil, fmt.Errorf("parse refiner response: %w", err)
	}
	refined, ok := parsed[batch.Type]
	if !ok {
		return nil, fmt.Errorf("refiner response missing %q key", batch.Type)
	}
	return refined, nil
}

// refineStructured asks the client for schema-constrained output typed
// per batch. A non-empty batch refined down to zero items is treated as a
// failure so the plain-completion fallback gets a chance.
func (r *Refiner) refineStructured(ctx context.Context, batchType, itemsJSON string, opts []ai.GenerateOption) ([]json.RawMessage, error) {
	call := func(out any) error {
		return util.RetryErrWithContext(ctx, r.maxRetries, func(ctx context.Context) error {
			return r.client.GenerateCompletionWithFormat(ctx, "refine_"+batchType,
				"Clean and standardize a batch of "+batchType+" for graph visualization.",
				itemsJSON, out, opts...)
		})
	}

	switch batchType {
	case common.BatchTypeEntities:
		var payload refinedEntities
		if err := call(&payload); err != nil {
			return nil, err
		}
		return marshalRefined(payload.Entities)
	case common.BatchTypeKeywords:
		var payload refinedKeywords
		if err := call(&payload); err != nil {
			return nil, err
		}
		return marshalRefined(payload.Keywords)
	case common.BatchTypeRelationships:
		var payload refinedRelationships
		if err := call(&payload); err != nil {
			return nil, err
		}
		return marshalRefined(payload.Relationships)
	default:
		return nil, fmt.Errorf("unknown batch type: %s", batchType)
	}
}

func marshalRefined[T any](items []T) ([]json.RawMessage, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("refiner returned no items")
	}
	refined := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("marshal refined item: %w", err)
		}
		refined = append(refined, data)
	}
	return refined, nil
}

func (r *Refiner) checkPromptBudget(prompt string) error {
	enc, err := tiktoken.GetEncoding("o200k_base")
	if err != nil {
		logger.Warn("[Refine] Token encoding unavailable, skipping prompt budget check", "err", err)
		return nil
	}
	tokens := len(enc.Encode(prompt, nil, nil))
	if tokens > r.maxPromptTokens {
		return fmt.Errorf("prompt too large: %d tokens (max %d)", tokens, r.maxPromptTokens)
	}
	return nil
}

package refine

import (
	"context"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lexgraph/lexgraph/pkg/ai"
	"github.com/lexgraph/lexgraph/pkg/common"
	"github.com/lexgraph/lexgraph/pkg/logger"
	"github.com/lexgraph/lexgraph/pkg/nlp"
)

const (
	// DefaultBatchTimeout bounds one external refinement call.
	DefaultBatchTimeout = 60 * time.Second
	// DefaultMaxParallel bounds concurrent batch refinement.
	DefaultMaxParallel = 4
)

// Pipeline runs the enhanced flow: base analysis, batch split, per-batch
// refinement, merge. Batches refine in parallel with a bounded worker
// count; each batch runs under its own timeout so one stuck refiner call
// cannot hold the whole request.
type Pipeline struct {
	processor    *nlp.Processor
	refiner      *Refiner
	config       Config
	maxParallel  int
	batchTimeout time.Duration
}

type NewPipelineParams struct {
	Processor    *nlp.Processor
	Refiner      *Refiner
	Config       Config
	MaxParallel  int
	BatchTimeout time.Duration
}

func NewPipeline(params NewPipelineParams) *Pipeline {
	if params.MaxParallel <= 0 {
		params.MaxParallel = DefaultMaxParallel
	}
	if params.BatchTimeout <= 0 {
		params.BatchTimeout = DefaultBatchTimeout
	}
	return &Pipeline{
		processor:    params.Processor,
		refiner:      params.Refiner,
		config:       params.Config.withDefaults(),
		maxParallel:  params.MaxParallel,
		batchTimeout: params.BatchTimeout,
	}
}

// WithConfig returns a pipeline that shares this pipeline's processor,
// refiner and limits but splits batches per cfg. The receiver is left
// untouched.
func (p *Pipeline) WithConfig(cfg Config) *Pipeline {
	clone := *p
	clone.config = cfg.withDefaults()
	return &clone
}

// WithGenerateOptions returns a pipeline whose refiner applies opts on
// every external call, for per-request model selection. The receiver is
// left untouched.
func (p *Pipeline) WithGenerateOptions(opts ...ai.GenerateOption) *Pipeline {
	clone := *p
	clone.refiner = p.refiner.withGenerateOptions(opts...)
	return &clone
}

// Process runs the base analysis only.
func (p *Pipeline) Process(ctx context.Context, text string, opts common.Options) *common.Result {
	return p.processor.Process(ctx, text, opts)
}

// ProcessEnhanced runs the full enhanced pipeline. Any failure past the
// base analysis falls back to the raw unrefined result: refinement only
// ever improves output, it never loses a request.
func (p *Pipeline) ProcessEnhanced(ctx context.Context, text string, opts common.Options) *common.Result {
	requestID, err := gonanoid.New()
	if err != nil {
		requestID = "unknown"
	}

	result := p.processor.Process(ctx, text, opts)
	if !result.Success {
		return result
	}

	batches, err := CreateBatches(result, p.config)
	if err != nil {
		logger.Warn("[Pipeline] Batch creation failed, returning raw result",
			"request", requestID, "err", err)
		return result
	}
	if len(batches) == 0 {
		logger.Debug("[Pipeline] Nothing to refine", "request", requestID)
		return result
	}

	logger.Info("[Pipeline] Refining batches",
		"request", requestID, "batches", len(batches))

	refined := make([]common.RefinedBatch, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxParallel)
	for i, batch := range batches {
		g.Go(func() error {
			batchCtx, cancel := context.WithTimeout(gctx, p.batchTimeout)
			defer cancel()
			refined[i] = p.refiner.RefineBatch(batchCtx, batch)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("[Pipeline] Refinement failed, returning raw result",
			"request", requestID, "err", err)
		return result
	}

	merged := MergeBatches(refined)
	methods := make([]string, len(refined))
	for i, batch := range refined {
		methods[i] = batch.Method
	}

	result.Entities = merged.Entities
	result.Keywords = merged.Keywords
	result.Relationships = merged.Relationships
	result.Metadata = &common.PipelineMetadata{
		TotalBatches:       len(batches),
		RefinementMethods:  methods,
		OriginalTextLength: len(text),
		EnhancedPipeline:   true,
	}

	logger.Info("[Pipeline] Enhanced processing complete",
		"request", requestID,
		"entities", len(merged.Entities),
		"keywords", len(merged.Keywords),
		"relationships", len(merged.Relationships),
	)

	if metrics, ok := p.refiner.Metrics(); ok {
		logger.Info("[Pipeline] Refiner usage",
			"request", requestID,
			"input_tokens", metrics.InputTokens,
			"output_tokens", metrics.OutputTokens,
			"total_tokens", metrics.TotalTokens,
			"duration_ms", metrics.DurationMs,
		)
		p.refiner.ResetMetrics()
	}
	return result
}

// Stats summarizes a processing result for API responses.
type Stats struct {
	EntitiesCount      int                      `json:"entities_count"`
	KeywordsCount      int                      `json:"keywords_count"`
	RelationshipsCount int                      `json:"relationships_count"`
	EnhancedPipeline   bool                     `json:"enhanced_pipeline"`
	Metadata           *common.PipelineMetadata `json:"processing_metadata,omitempty"`
}

// ProcessingStats extracts counters from a result.
func ProcessingStats(result *common.Result) Stats {
	stats := Stats{
		EntitiesCount:      len(result.Entities),
		KeywordsCount:      len(result.Keywords),
		RelationshipsCount: len(result.Relationships),
		Metadata:           result.Metadata,
	}
	if result.Metadata != nil {
		stats.EnhancedPipeline = result.Metadata.EnhancedPipeline
	}
	return stats
}

package nlp

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/lexgraph/lexgraph/pkg/annotate"
	"github.com/lexgraph/lexgraph/pkg/common"
	"github.com/lexgraph/lexgraph/pkg/logger"
)

// MaxTextLength is the hard cap on input size in characters. Longer inputs
// are rejected before any processing starts.
const MaxTextLength = 50000

// ValidateInput rejects inputs the pipeline refuses to process: blank text
// and text over MaxTextLength characters. Callers run it before any
// component executes.
func ValidateInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("empty text provided")
	}
	if len(text) > MaxTextLength {
		return fmt.Errorf("text too long (max %d characters)", MaxTextLength)
	}
	return nil
}

// Processor orchestrates the analysis steps over one input text. It owns
// the result envelope for the lifetime of a request: every failure is
// recorded in the envelope, never raised to the caller.
type Processor struct {
	annotator   annotate.Annotator
	polarity    PolarityScorer
	readability ReadabilityScorer
	maxKeywords int
}

type NewProcessorParams struct {
	Annotator   annotate.Annotator
	Polarity    PolarityScorer
	Readability ReadabilityScorer
	MaxKeywords int
}

func NewProcessor(params NewProcessorParams) *Processor {
	if params.MaxKeywords <= 0 {
		params.MaxKeywords = DefaultMaxKeywords
	}
	return &Processor{
		annotator:   params.Annotator,
		polarity:    params.Polarity,
		readability: params.Readability,
		maxKeywords: params.MaxKeywords,
	}
}

// Process runs the selected analysis steps over text and returns the
// combined result. Steps run in a fixed order; relationship mapping
// consumes whatever keywords and entities earlier steps produced, so
// disabling those steps yields relationships over an empty term universe.
func (p *Processor) Process(ctx context.Context, text string, opts common.Options) (result *common.Result) {
	result = &common.Result{}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("[Processor] Recovered from panic during processing", "panic", r)
			*result = common.Result{
				Success: false,
				Error:   fmt.Sprintf("internal processing error: %v", r),
			}
		}
	}()

	if err := ValidateInput(text); err != nil {
		result.Error = err.Error()
		return result
	}

	doc, err := p.annotator.Annotate(ctx, text)
	if err != nil {
		logger.Error("[Processor] Annotation failed", "err", err)
		result.Error = fmt.Sprintf("annotation failed: %v", err)
		return result
	}

	var steps []string

	if opts.BasicPreprocessing {
		result.ProcessedText = Preprocess(doc)
		steps = append(steps, "Basic text preprocessing (tokenization, lemmatization, stop word removal)")
	} else {
		result.ProcessedText = text
	}

	if opts.IntentClassification {
		intent := ClassifyIntent(text)
		read := CalculateReadability(p.readability, text)
		result.ContextAnalysis = &common.ContextAnalysis{
			Intent:           intent,
			Complexity:       read.Complexity,
			ReadabilityScore: read.FleschEase,
			GradeLevel:       read.FleschKincaid,
			Language:         "english",
		}
		steps = append(steps, fmt.Sprintf("Context analysis: Intent=%s", intent))
	}

	if opts.KeywordExtraction {
		result.Keywords = ExtractKeywords(doc, p.maxKeywords)
		steps = append(steps, fmt.Sprintf("Advanced keyword extraction: %d keywords identified", len(result.Keywords)))
	}

	if opts.EntityRecognition {
		result.Entities = DedupeEntities(doc.Entities)
		steps = append(steps, fmt.Sprintf("Named entity recognition: %d entities found", len(result.Entities)))
	}

	if opts.SentimentAnalysis {
		result.Sentiment = AnalyzeSentiment(p.polarity, text)
		steps = append(steps, fmt.Sprintf("Sentiment analysis: %s sentiment detected", result.Sentiment.Label))
	}

	if opts.RelationshipMapping {
		result.Relationships = InferRelationships(doc, result.Keywords, result.Entities)
		steps = append(steps, fmt.Sprintf("Relationship mapping: %d concept relationships identified", len(result.Relationships)))
	}

	result.Readability = CalculateReadability(p.readability, text)
	result.Statistics = buildStatistics(text, result)
	result.ProcessingSteps = steps
	result.Success = true

	logger.Debug("[Processor] Processing complete",
		"words", result.Statistics.OriginalWordCount,
		"steps", len(steps),
	)
	return result
}

func buildStatistics(text string, result *common.Result) *common.Statistics {
	originalWords := len(strings.Fields(text))
	processedWords := len(strings.Fields(result.ProcessedText))

	sentiment := "neutral"
	if result.Sentiment != nil {
		sentiment = result.Sentiment.Label
	}

	var complexityScore float64
	if result.Readability != nil {
		complexityScore = result.Readability.FleschEase
	}

	denom := originalWords
	if denom < 1 {
		denom = 1
	}
	reduction := (1 - float64(processedWords)/float64(denom)) * 100

	return &common.Statistics{
		OriginalWordCount:   originalWords,
		ProcessedWordCount:  processedWords,
		KeywordCount:        len(result.Keywords),
		EntityCount:         len(result.Entities),
		RelationshipCount:   len(result.Relationships),
		Sentiment:           sentiment,
		ComplexityScore:     complexityScore,
		ProcessingReduction: math.Round(reduction*10) / 10,
	}
}

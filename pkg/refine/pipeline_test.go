package refine

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/lexgraph/lexgraph/pkg/ai"
	"github.com/lexgraph/lexgraph/pkg/annotate"
	"github.com/lexgraph/lexgraph/pkg/common"
	"github.com/lexgraph/lexgraph/pkg/nlp"
)

// staticAnnotator returns the same annotation for every input.
type staticAnnotator struct {
	doc *annotate.Annotation
}

func (s staticAnnotator) Annotate(ctx context.Context, text string) (*annotate.Annotation, error) {
	return s.doc, nil
}

func sputnikDoc() *annotate.Annotation {
	text := "USSR launched Sputnik ."
	return &annotate.Annotation{
		Tokens: []annotate.Token{
			{Text: "USSR", Lemma: "ussr", POS: "PROPN", Dep: "nsubj", Index: 0, Start: 0, End: 4},
			{Text: "launched", Lemma: "launch", POS: "VERB", Dep: "ROOT", Index: 1, Start: 5, End: 13},
			{Text: "Sputnik", Lemma: "sputnik", POS: "PROPN", Dep: "dobj", Index: 2, Start: 14, End: 21},
			{Text: ".", Lemma: ".", POS: "PUNCT", Dep: "punct", Index: 3, Start: 22, End: 23, IsPunct: true},
		},
		Sentences: []annotate.Sentence{{Text: text, Start: 0, End: len(text)}},
		Entities: []annotate.EntitySpan{
			{Text: "USSR", Label: "GPE", Start: 0, End: 4},
			{Text: "Sputnik", Label: "PRODUCT", Start: 14, End: 21},
		},
	}
}

func newTestPipeline() *Pipeline {
	processor := nlp.NewProcessor(nlp.NewProcessorParams{
		Annotator: staticAnnotator{doc: sputnikDoc()},
	})
	return NewPipeline(NewPipelineParams{
		Processor: processor,
		Refiner:   NewRefiner(NewRefinerParams{}),
	})
}

func TestPipeline_ProcessEnhanced(t *testing.T) {
	pipeline := newTestPipeline()
	text := "USSR launched Sputnik."

	result := pipeline.ProcessEnhanced(context.Background(), text, common.AllOptions())
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}

	var entityTexts []string
	for _, ent := range result.Entities {
		entityTexts = append(entityTexts, ent.Text)
	}
	if !reflect.DeepEqual(entityTexts, []string{"Soviet Union", "Sputnik"}) {
		t.Fatalf("expected refined entities, got %v", entityTexts)
	}
	if result.Entities[0].Description != "Soviet Union is a geopolitical entity." {
		t.Fatalf("unexpected description: %q", result.Entities[0].Description)
	}

	if len(result.Keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %+v", result.Keywords)
	}
	for _, rel := range result.Relationships {
		if rel.Source != "Soviet Union" || !strings.EqualFold(rel.Target, "sputnik") {
			t.Fatalf("expected refined relationship endpoints, got %+v", rel)
		}
	}

	metadata := result.Metadata
	if metadata == nil {
		t.Fatal("expected pipeline metadata")
	}
	if !metadata.EnhancedPipeline || metadata.TotalBatches != 3 {
		t.Fatalf("unexpected metadata: %+v", metadata)
	}
	if metadata.OriginalTextLength != len(text) {
		t.Fatalf("expected original length %d, got %d", len(text), metadata.OriginalTextLength)
	}
	if !reflect.DeepEqual(metadata.RefinementMethods, []string{"rules", "rules", "rules"}) {
		t.Fatalf("unexpected methods: %v", metadata.RefinementMethods)
	}
}

func TestPipeline_ProcessEnhanced_FailedBaseReturnsAsIs(t *testing.T) {
	pipeline := newTestPipeline()

	result := pipeline.ProcessEnhanced(context.Background(), "", common.AllOptions())
	if result.Success {
		t.Fatalf("expected failure, got %+v", result)
	}
	if result.Metadata != nil {
		t.Fatalf("expected no metadata on failed base run, got %+v", result.Metadata)
	}
}

func TestPipeline_ProcessEnhanced_NothingToRefine(t *testing.T) {
	pipeline := newTestPipeline()

	// Only preprocessing enabled, so no lists exist to batch.
	result := pipeline.ProcessEnhanced(context.Background(), "USSR launched Sputnik.", common.Options{
		BasicPreprocessing: true,
	})
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Metadata != nil {
		t.Fatalf("expected no metadata without batches, got %+v", result.Metadata)
	}
}

func TestPipeline_WithConfig(t *testing.T) {
	pipeline := NewPipeline(NewPipelineParams{
		Processor:    nlp.NewProcessor(nlp.NewProcessorParams{Annotator: staticAnnotator{doc: sputnikDoc()}}),
		Refiner:      NewRefiner(NewRefinerParams{MaxRetries: 3}),
		MaxParallel:  7,
		BatchTimeout: 5 * time.Second,
	})

	derived := pipeline.WithConfig(Config{EntitiesPerBatch: 2})
	if derived.config.EntitiesPerBatch != 2 {
		t.Fatalf("expected entity batch size 2, got %d", derived.config.EntitiesPerBatch)
	}
	// Unset sizes fall back to defaults, the rest of the pipeline is
	// shared untouched.
	if derived.config.KeywordsPerBatch != 30 || derived.config.RelationshipsPerBatch != 25 {
		t.Fatalf("expected default sizes for unset types, got %+v", derived.config)
	}
	if derived.refiner != pipeline.refiner {
		t.Fatal("expected derived pipeline to share the refiner")
	}
	if derived.maxParallel != 7 || derived.batchTimeout != 5*time.Second {
		t.Fatalf("expected limits preserved, got parallel=%d timeout=%s",
			derived.maxParallel, derived.batchTimeout)
	}
	if pipeline.config.EntitiesPerBatch != 20 {
		t.Fatalf("expected original config untouched, got %+v", pipeline.config)
	}
}

func TestPipeline_WithGenerateOptions(t *testing.T) {
	pipeline := newTestPipeline()

	derived := pipeline.WithGenerateOptions(ai.WithModel("refine-test"))
	if derived.refiner == pipeline.refiner {
		t.Fatal("expected derived pipeline to carry its own refiner")
	}
	if len(derived.refiner.genOpts) != 1 {
		t.Fatalf("expected 1 option on derived refiner, got %d", len(derived.refiner.genOpts))
	}
	if len(pipeline.refiner.genOpts) != 0 {
		t.Fatalf("expected original refiner untouched, got %d options", len(pipeline.refiner.genOpts))
	}
}

func TestProcessingStats(t *testing.T) {
	result := &common.Result{
		Entities:      make([]common.Entity, 3),
		Keywords:      make([]common.Keyword, 5),
		Relationships: make([]common.Relationship, 2),
		Metadata:      &common.PipelineMetadata{EnhancedPipeline: true, TotalBatches: 3},
	}

	stats := ProcessingStats(result)
	if stats.EntitiesCount != 3 || stats.KeywordsCount != 5 || stats.RelationshipsCount != 2 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if !stats.EnhancedPipeline || stats.Metadata != result.Metadata {
		t.Fatalf("expected metadata carried through, got %+v", stats)
	}

	raw := ProcessingStats(&common.Result{})
	if raw.EnhancedPipeline || raw.Metadata != nil {
		t.Fatalf("expected zero stats, got %+v", raw)
	}
}

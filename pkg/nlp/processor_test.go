package nlp

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/lexgraph/lexgraph/pkg/annotate"
	"github.com/lexgraph/lexgraph/pkg/common"
	"github.com/lexgraph/lexgraph/pkg/polarity"
	"github.com/lexgraph/lexgraph/pkg/readability"
)

type fakeAnnotator struct {
	doc   *annotate.Annotation
	err   error
	calls int
}

func (f *fakeAnnotator) Annotate(ctx context.Context, text string) (*annotate.Annotation, error) {
	f.calls++
	return f.doc, f.err
}

type panicPolarity struct{}

func (panicPolarity) Score(string) polarity.Scores {
	panic("lexicon not loaded")
}

func kennedyDoc() *annotate.Annotation {
	return makeDoc([][]tok{
		{
			word("Kennedy", "PROPN", "nsubj"),
			word("announced", "VERB", "ROOT"),
			stopword("the"),
			word("Apollo", "PROPN", "compound"),
			word("program", "NOUN", "dobj"),
			punct("."),
		},
		{
			word("Kennedy", "PROPN", "nsubj"),
			word("supported", "VERB", "ROOT"),
			word("NASA", "PROPN", "dobj"),
			punct("."),
		},
	}, []annotate.EntitySpan{
		{Text: "Kennedy", Label: "PERSON"},
		{Text: "Apollo", Label: "ORG"},
		{Text: "Kennedy", Label: "PERSON"},
		{Text: "NASA", Label: "ORG"},
	})
}

func newTestProcessor(annotator annotate.Annotator) *Processor {
	return NewProcessor(NewProcessorParams{
		Annotator:   annotator,
		Polarity:    fixedPolarity{polarity.Scores{Compound: 0.6, Positive: 0.4, Neutral: 0.6}},
		Readability: fixedReadability{scores: readability.Scores{EaseScore: 65, GradeLevel: 8.2}},
	})
}

func TestProcessor_FullPipeline(t *testing.T) {
	annotator := &fakeAnnotator{doc: kennedyDoc()}
	processor := newTestProcessor(annotator)
	text := "Kennedy announced the Apollo program. Kennedy supported NASA."

	result := processor.Process(context.Background(), text, common.AllOptions())
	if !result.Success || result.Error != "" {
		t.Fatalf("expected success, got %+v", result)
	}

	wantSteps := []string{
		"Basic text preprocessing (tokenization, lemmatization, stop word removal)",
		"Context analysis: Intent=informational",
		"Advanced keyword extraction: 4 keywords identified",
		"Named entity recognition: 3 entities found",
		"Sentiment analysis: positive sentiment detected",
		"Relationship mapping: 8 concept relationships identified",
	}
	if !reflect.DeepEqual(result.ProcessingSteps, wantSteps) {
		t.Fatalf("expected steps %v, got %v", wantSteps, result.ProcessingSteps)
	}

	if result.ProcessedText != "kennedy announced apollo program kennedy supported nasa" {
		t.Fatalf("unexpected processed text: %q", result.ProcessedText)
	}

	wantContext := &common.ContextAnalysis{
		Intent:           "informational",
		Complexity:       "standard",
		ReadabilityScore: 65,
		GradeLevel:       8.2,
		Language:         "english",
	}
	if !reflect.DeepEqual(result.ContextAnalysis, wantContext) {
		t.Fatalf("expected context %+v, got %+v", wantContext, result.ContextAnalysis)
	}

	if len(result.Keywords) != 4 || result.Keywords[0].Word != "kennedy" {
		t.Fatalf("unexpected keywords: %+v", result.Keywords)
	}

	var entityTexts []string
	for _, ent := range result.Entities {
		entityTexts = append(entityTexts, ent.Text)
	}
	if !reflect.DeepEqual(entityTexts, []string{"Kennedy", "Apollo", "NASA"}) {
		t.Fatalf("unexpected entities: %v", entityTexts)
	}

	foundActsOn := false
	for _, rel := range result.Relationships {
		if rel.Source == "Kennedy" && rel.Target == "NASA" && rel.Type == "acts-on" {
			foundActsOn = true
		}
	}
	if !foundActsOn {
		t.Fatalf("expected Kennedy acts-on NASA, got %+v", result.Relationships)
	}

	stats := result.Statistics
	if stats == nil {
		t.Fatal("expected statistics")
	}
	if stats.OriginalWordCount != 9 || stats.ProcessedWordCount != 7 {
		t.Fatalf("unexpected word counts: %+v", stats)
	}
	if stats.ProcessingReduction != 22.2 {
		t.Fatalf("expected reduction 22.2, got %f", stats.ProcessingReduction)
	}
	if stats.KeywordCount != 4 || stats.EntityCount != 3 || stats.RelationshipCount != 8 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.Sentiment != "positive" || stats.ComplexityScore != 65 {
		t.Fatalf("unexpected summary stats: %+v", stats)
	}
}

func TestProcessor_AllFlagsOff(t *testing.T) {
	annotator := &fakeAnnotator{doc: kennedyDoc()}
	processor := newTestProcessor(annotator)
	text := "Kennedy announced the Apollo program. Kennedy supported NASA."

	result := processor.Process(context.Background(), text, common.Options{})
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.ProcessedText != text {
		t.Fatalf("expected text passed through, got %q", result.ProcessedText)
	}
	if len(result.ProcessingSteps) != 0 {
		t.Fatalf("expected no steps, got %v", result.ProcessingSteps)
	}
	if result.Keywords != nil || result.Entities != nil || result.Relationships != nil {
		t.Fatalf("expected no step outputs, got %+v", result)
	}
	if result.Sentiment != nil || result.ContextAnalysis != nil {
		t.Fatalf("expected no step outputs, got %+v", result)
	}
	// Readability and statistics are always attached.
	if result.Readability == nil || result.Readability.Complexity != "standard" {
		t.Fatalf("unexpected readability: %+v", result.Readability)
	}
	if result.Statistics == nil || result.Statistics.ProcessingReduction != 0 {
		t.Fatalf("unexpected statistics: %+v", result.Statistics)
	}
}

func TestProcessor_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", "empty text provided"},
		{"whitespace only", "   \n\t", "empty text provided"},
		{"over length cap", strings.Repeat("a", MaxTextLength+1), "text too long (max 50000 characters)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annotator := &fakeAnnotator{doc: kennedyDoc()}
			processor := newTestProcessor(annotator)

			result := processor.Process(context.Background(), tt.text, common.DefaultOptions())
			if result.Success {
				t.Fatalf("expected failure, got %+v", result)
			}
			if result.Error != tt.want {
				t.Fatalf("expected error %q, got %q", tt.want, result.Error)
			}
			if annotator.calls != 0 {
				t.Fatalf("expected annotator untouched, got %d calls", annotator.calls)
			}
		})
	}
}

func TestProcessor_AnnotationFailure(t *testing.T) {
	annotator := &fakeAnnotator{err: errors.New("connection refused")}
	processor := newTestProcessor(annotator)

	result := processor.Process(context.Background(), "Some text.", common.DefaultOptions())
	if result.Success {
		t.Fatalf("expected failure, got %+v", result)
	}
	if result.Error != "annotation failed: connection refused" {
		t.Fatalf("unexpected error: %q", result.Error)
	}
}

func TestProcessor_RecoversFromPanic(t *testing.T) {
	annotator := &fakeAnnotator{doc: kennedyDoc()}
	processor := NewProcessor(NewProcessorParams{
		Annotator: annotator,
		Polarity:  panicPolarity{},
	})

	result := processor.Process(context.Background(), "Some text.", common.Options{SentimentAnalysis: true})
	if result.Success {
		t.Fatalf("expected failure, got %+v", result)
	}
	if result.Error != "internal processing error: lexicon not loaded" {
		t.Fatalf("unexpected error: %q", result.Error)
	}
}

func TestValidateInput(t *testing.T) {
	if err := ValidateInput("fine"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := ValidateInput(strings.Repeat("x", MaxTextLength)); err != nil {
		t.Fatalf("expected max-length text accepted, got %v", err)
	}
}

package common

import "encoding/json"

// Keyword represents a scored keyword candidate extracted from text.
// Word is the lowercased lemma, Score the combined ranking score,
// Frequency the raw term count and TFIDF the statistical weight term.
type Keyword struct {
	Word      string  `json:"word"`
	Score     float64 `json:"score"`
	Frequency int     `json:"frequency"`
	TFIDF     float64 `json:"tfidf"`
}

// Entity represents a named entity found in the source text.
// Start and End are character offsets into the original text,
// not into any processed form of it.
type Entity struct {
	Text        string `json:"text"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
}

// Relationship represents a directed edge between two terms.
// Direction matters: a relationship with source and target swapped
// is a distinct relationship.
type Relationship struct {
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	Type        string  `json:"type"`
	Strength    float64 `json:"strength"`
	Context     string  `json:"context"`
	Description string  `json:"description"`
}

// Sentiment holds the polarity summary for a text.
type Sentiment struct {
	Compound   float64 `json:"compound"`
	Positive   float64 `json:"positive"`
	Negative   float64 `json:"negative"`
	Neutral    float64 `json:"neutral"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Readability holds the readability summary for a text.
type Readability struct {
	FleschEase    float64 `json:"flesch_ease"`
	FleschKincaid float64 `json:"flesch_kincaid"`
	Complexity    string  `json:"complexity"`
}

// ContextAnalysis holds intent and complexity information about a text.
type ContextAnalysis struct {
	Intent           string  `json:"intent"`
	Complexity       string  `json:"complexity"`
	ReadabilityScore float64 `json:"readability_score"`
	GradeLevel       float64 `json:"grade_level"`
	Language         string  `json:"language"`
}

// Statistics summarizes a processing run.
type Statistics struct {
	OriginalWordCount   int     `json:"original_word_count"`
	ProcessedWordCount  int     `json:"processed_word_count"`
	KeywordCount        int     `json:"keyword_count"`
	EntityCount         int     `json:"entity_count"`
	RelationshipCount   int     `json:"relationship_count"`
	Sentiment           string  `json:"sentiment"`
	ComplexityScore     float64 `json:"complexity_score"`
	ProcessingReduction float64 `json:"processing_reduction"`
}

// Options selects which processing steps run. Every step is independently
// optional; relationship mapping consumes whatever keywords and entities
// were produced before it (empty lists when those steps are disabled).
type Options struct {
	BasicPreprocessing   bool `json:"basicPreprocessing"`
	KeywordExtraction    bool `json:"keywordExtraction"`
	EntityRecognition    bool `json:"entityRecognition"`
	SentimentAnalysis    bool `json:"sentimentAnalysis"`
	RelationshipMapping  bool `json:"relationshipMapping"`
	TopicModeling        bool `json:"topicModeling"`
	IntentClassification bool `json:"intentClassification"`
	ConceptExtraction    bool `json:"conceptExtraction"`
	ContextualEmbedding  bool `json:"contextualEmbedding"`
}

// DefaultOptions returns the streamlined option set used for knowledge
// graph construction: preprocessing, keywords, entities and relationships
// enabled, everything else off.
func DefaultOptions() Options {
	return Options{
		BasicPreprocessing:  true,
		KeywordExtraction:   true,
		EntityRecognition:   true,
		RelationshipMapping: true,
	}
}

// AllOptions returns an option set with every processing step enabled.
func AllOptions() Options {
	return Options{
		BasicPreprocessing:   true,
		KeywordExtraction:    true,
		EntityRecognition:    true,
		SentimentAnalysis:    true,
		RelationshipMapping:  true,
		TopicModeling:        true,
		IntentClassification: true,
		ConceptExtraction:    true,
		ContextualEmbedding:  true,
	}
}

// Result is the unified output of one processing request. The orchestrator
// owns it for the lifetime of the request and always returns a well-formed
// value: failures are recorded in Error with Success=false, never raised.
type Result struct {
	ProcessedText   string            `json:"processed_text,omitempty"`
	ContextAnalysis *ContextAnalysis  `json:"context_analysis,omitempty"`
	Keywords        []Keyword         `json:"keywords"`
	Entities        []Entity          `json:"entities"`
	Sentiment       *Sentiment        `json:"sentiment,omitempty"`
	Relationships   []Relationship    `json:"relationships"`
	Readability     *Readability      `json:"readability,omitempty"`
	Statistics      *Statistics       `json:"statistics,omitempty"`
	ProcessingSteps []string          `json:"processing_steps"`
	Success         bool              `json:"success"`
	Error           string            `json:"error,omitempty"`
	Metadata        *PipelineMetadata `json:"processing_metadata,omitempty"`
}

// Batch type identifiers. A batch holds items of exactly one of these types.
const (
	BatchTypeEntities      = "entities"
	BatchTypeKeywords      = "keywords"
	BatchTypeRelationships = "relationships"
)

// Refinement method identifiers recorded on each refined batch.
const (
	RefineMethodExternal = "external"
	RefineMethodRules    = "rules"
	RefineMethodFailed   = "failed"
)

// Batch is a bounded, independent view of one typed result list.
// ID encodes the type and a 1-based sequence number (e.g. "entities_2").
// Items are deep copies so refining one batch cannot corrupt another.
type Batch struct {
	ID           string            `json:"batch_id"`
	Type         string            `json:"batch_type"`
	Items        []json.RawMessage `json:"data"`
	TotalBatches int               `json:"total_batches"`
}

// RefinedBatch extends Batch with the refined items and the method that
// produced them. RefinedItems is always populated: on refinement failure
// it falls back to the original items.
type RefinedBatch struct {
	Batch
	RefinedItems []json.RawMessage `json:"refined_data"`
	Method       string            `json:"refinement_method"`
}

// PipelineMetadata describes how the enhanced pipeline processed a request.
type PipelineMetadata struct {
	TotalBatches       int      `json:"total_batches"`
	RefinementMethods  []string `json:"refinement_methods"`
	OriginalTextLength int      `json:"original_text_length"`
	EnhancedPipeline   bool     `json:"enhanced_pipeline"`
}

package routes

import "github.com/lexgraph/lexgraph/pkg/common"

// optionFlags mirrors common.Options with optional fields so requests can
// override individual steps while unmentioned steps keep their defaults.
type optionFlags struct {
	BasicPreprocessing   *bool `json:"basicPreprocessing"`
	KeywordExtraction    *bool `json:"keywordExtraction"`
	EntityRecognition    *bool `json:"entityRecognition"`
	SentimentAnalysis    *bool `json:"sentimentAnalysis"`
	RelationshipMapping  *bool `json:"relationshipMapping"`
	TopicModeling        *bool `json:"topicModeling"`
	IntentClassification *bool `json:"intentClassification"`
	ConceptExtraction    *bool `json:"conceptExtraction"`
	ContextualEmbedding  *bool `json:"contextualEmbedding"`
}

func (o *optionFlags) apply(base common.Options) common.Options {
	if o == nil {
		return base
	}
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&base.BasicPreprocessing, o.BasicPreprocessing)
	set(&base.KeywordExtraction, o.KeywordExtraction)
	set(&base.EntityRecognition, o.EntityRecognition)
	set(&base.SentimentAnalysis, o.SentimentAnalysis)
	set(&base.RelationshipMapping, o.RelationshipMapping)
	set(&base.TopicModeling, o.TopicModeling)
	set(&base.IntentClassification, o.IntentClassification)
	set(&base.ConceptExtraction, o.ConceptExtraction)
	set(&base.ContextualEmbedding, o.ContextualEmbedding)
	return base
}

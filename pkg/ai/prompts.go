package ai

import (
	"fmt"

	"github.com/lexgraph/lexgraph/pkg/common"
)

const EntityRefinementPrompt = `
# Task Context
You are an assistant that cleans and formats NLP outputs for graph visualization. You will be provided with a JSON list of entities from an NLP pipeline. The data may contain duplicates, acronyms, inconsistent formatting, or missing context.

# Detailed Task Description & Rules
- Merge duplicates (e.g., "Kennedy" + "John F. Kennedy").
- Expand acronyms (e.g., "USSR" becomes "Soviet Union").
- Add a short, factual description for each entity (1 sentence max).
- Standardize entity labels (PERSON, ORG, GPE, EVENT, DATE, etc.).

# Output Formatting
Strictly return valid JSON with top-level key: { "entities": [] }.
Each entity must have:
- "text": canonical name
- "label": the type (PERSON, ORG, GPE, EVENT, DATE, etc.)
- "description": 1-sentence context
Only JSON, no commentary.
`

const KeywordRefinementPrompt = `
# Task Context
You are an assistant that cleans and formats NLP outputs for graph visualization. You will be provided with a JSON list of keywords from an NLP pipeline. The data may contain duplicates, inconsistent formatting, or missing scores.

# Detailed Task Description & Rules
- Remove duplicates.
- Keep keywords concise and lowercase.
- Ensure scores are between 0 and 1.
- Standardize format.

# Output Formatting
Strictly return valid JSON with top-level key: { "keywords": [] }.
Each keyword must have:
- "word": the keyword text
- "score": float between 0 and 1
Only JSON, no commentary.
`

const RelationshipRefinementPrompt = `
# Task Context
You are an assistant that cleans and formats NLP outputs for graph visualization. You will be provided with a JSON list of relationships from an NLP pipeline. The data may contain duplicates, inconsistent formatting, or missing context.

# Detailed Task Description & Rules
- Remove duplicates.
- Standardize relationship types.
- Add a context field with a short natural-language snippet.
- Clean source and target names.

# Output Formatting
Strictly return valid JSON with top-level key: { "relationships": [] }.
Each relationship must have:
- "source": source entity name
- "target": target entity name
- "type": relationship type (associated-with, co-occurs, established, etc.)
- "context": short natural-language description
Only JSON, no commentary.
`

// RefinementPrompt returns the per-type refinement instructions. They are
// sent as the system prompt with the JSON-serialized batch items as the
// user message. Every template demands a JSON object whose single
// top-level key matches the batch type, which the plain-completion
// fallback relies on.
func RefinementPrompt(batchType string) (string, error) {
	switch batchType {
	case common.BatchTypeEntities:
		return EntityRefinementPrompt, nil
	case common.BatchTypeKeywords:
		return KeywordRefinementPrompt, nil
	case common.BatchTypeRelationships:
		return RelationshipRefinementPrompt, nil
	default:
		return "", fmt.Errorf("unknown batch type: %s", batchType)
	}
}

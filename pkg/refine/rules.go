package refine

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/lexgraph/lexgraph/internal/util"
	"github.com/lexgraph/lexgraph/pkg/common"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// acronymExpansions maps well-known acronyms to their canonical expansion.
// Only exact (case-insensitive) matches expand; substrings never do.
var acronymExpansions = map[string]string{
	"USA":  "United States",
	"US":   "United States",
	"UK":   "United Kingdom",
	"USSR": "Soviet Union",
	"NASA": "National Aeronautics and Space Administration",
	"JFK":  "John F. Kennedy",
}

// refinedEntityDescriptions is the refinement-stage description table.
// It is intentionally coarser than the recognition-stage table: the
// refiner standardizes display text for graph nodes, not NER output.
var refinedEntityDescriptions = map[string]string{
	"PERSON":   "%s is a person mentioned in the text.",
	"ORG":      "%s is an organization.",
	"GPE":      "%s is a geopolitical entity.",
	"EVENT":    "%s is an event or occurrence.",
	"DATE":     "%s is a date or time reference.",
	"LOCATION": "%s is a location or place.",
	"PRODUCT":  "%s is a product or service.",
}

// relationshipContexts maps relationship types to context templates used
// when the refiner regenerates missing or inconsistent context strings.
var relationshipContexts = map[string]string{
	"associated-with": "%s is associated with %s.",
	"co-occurs":       "%s and %s appear together in the text.",
	"established":     "%s established %s.",
	"landed-on":       "%s landed on %s.",
	"worked-for":      "%s worked for %s.",
	"located-in":      "%s is located in %s.",
}

// CleanText collapses whitespace runs and expands exact acronym matches.
func CleanText(text string) string {
	text = whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
	if expansion, ok := acronymExpansions[strings.ToUpper(text)]; ok {
		return expansion
	}
	return text
}

func refineWithRules(batch common.Batch) ([]json.RawMessage, error) {
	switch batch.Type {
	case common.BatchTypeEntities:
		return refineTyped(batch.Items, refineEntity)
	case common.BatchTypeKeywords:
		return refineTyped(batch.Items, refineKeyword)
	case common.BatchTypeRelationships:
		return refineTyped(batch.Items, refineRelationship)
	default:
		return nil, fmt.Errorf("unknown batch type: %s", batch.Type)
	}
}

func refineTyped[T any](items []json.RawMessage, refine func(T) T) ([]json.RawMessage, error) {
	refined := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		var value T
		if err := json.Unmarshal(item, &value); err != nil {
			return nil, fmt.Errorf("unmarshal batch item: %w", err)
		}
		data, err := json.Marshal(refine(value))
		if err != nil {
			return nil, fmt.Errorf("marshal refined item: %w", err)
		}
		refined = append(refined, data)
	}
	return refined, nil
}

func refineEntity(entity common.Entity) common.Entity {
	entity.Text = CleanText(entity.Text)
	entity.Label = strings.ToUpper(strings.TrimSpace(entity.Label))
	if entity.Label == "" {
		entity.Label = "ENTITY"
	}

	tmpl, ok := refinedEntityDescriptions[entity.Label]
	if !ok {
		tmpl = "%s is mentioned in the text."
	}
	entity.Description = fmt.Sprintf(tmpl, entity.Text)
	return entity
}

func refineKeyword(keyword common.Keyword) common.Keyword {
	keyword.Word = strings.ToLower(strings.TrimSpace(keyword.Word))
	keyword.Score = util.Clamp(keyword.Score, 0, 1)
	return keyword
}

func refineRelationship(rel common.Relationship) common.Relationship {
	rel.Source = CleanText(rel.Source)
	rel.Target = CleanText(rel.Target)
	rel.Type = strings.TrimSpace(rel.Type)
	if rel.Type == "" {
		rel.Type = "associated-with"
	}

	tmpl, ok := relationshipContexts[rel.Type]
	if !ok {
		tmpl = "%s is related to %s."
	}
	rel.Context = fmt.Sprintf(tmpl, rel.Source, rel.Target)
	return rel
}

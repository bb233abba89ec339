package nlp

import (
	"fmt"
	"strings"

	"github.com/lexgraph/lexgraph/pkg/annotate"
	"github.com/lexgraph/lexgraph/pkg/common"
)

// entityDescriptions maps named-entity labels to description templates.
// The %s placeholder receives the entity surface text.
var entityDescriptions = map[string]string{
	"PERSON":      "%s is a person mentioned in the text.",
	"ORG":         "%s is an organization mentioned in the text.",
	"GPE":         "%s is a country, city or state mentioned in the text.",
	"LOC":         "%s is a location mentioned in the text.",
	"EVENT":       "%s is an event mentioned in the text.",
	"DATE":        "%s is a date or period mentioned in the text.",
	"TIME":        "%s is a time reference mentioned in the text.",
	"PRODUCT":     "%s is a product mentioned in the text.",
	"NORP":        "%s is a nationality, religious or political group mentioned in the text.",
	"FAC":         "%s is a facility mentioned in the text.",
	"WORK_OF_ART": "%s is a work of art mentioned in the text.",
	"LAW":         "%s is a law or legal document mentioned in the text.",
	"LANGUAGE":    "%s is a language mentioned in the text.",
	"MONEY":       "%s is a monetary value mentioned in the text.",
	"PERCENT":     "%s is a percentage mentioned in the text.",
	"QUANTITY":    "%s is a quantity mentioned in the text.",
	"ORDINAL":     "%s is an ordinal value mentioned in the text.",
	"CARDINAL":    "%s is a numeric value mentioned in the text.",
}

// DescribeEntity returns a human-readable description for an entity given
// its label. Unknown labels fall back to a generic mention description.
func DescribeEntity(text, label string) string {
	if tmpl, ok := entityDescriptions[strings.ToUpper(label)]; ok {
		return fmt.Sprintf(tmpl, text)
	}
	return fmt.Sprintf("%s is mentioned in the text.", text)
}

// DedupeEntities collapses recognized entity spans into unique entities.
// Span text is trimmed before filtering, keying and storing, so padded
// spans dedupe against clean ones. Spans whose trimmed text is a single
// character or shorter are dropped. Two spans are duplicates when their
// lowercased trimmed text and label match; the first occurrence wins and
// keeps its character offsets. Output order follows first appearance in
// the document.
func DedupeEntities(spans []annotate.EntitySpan) []common.Entity {
	seen := make(map[string]bool, len(spans))
	entities := make([]common.Entity, 0, len(spans))
	for _, span := range spans {
		text := strings.TrimSpace(span.Text)
		if len(text) <= 1 {
			continue
		}
		key := strings.ToLower(text) + "|" + span.Label
		if seen[key] {
			continue
		}
		seen[key] = true
		entities = append(entities, common.Entity{
			Text:        text,
			Label:       span.Label,
			Description: DescribeEntity(text, span.Label),
			Start:       span.Start,
			End:         span.End,
		})
	}
	return entities
}

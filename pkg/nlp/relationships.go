package nlp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lexgraph/lexgraph/internal/util"
	"github.com/lexgraph/lexgraph/pkg/annotate"
	"github.com/lexgraph/lexgraph/pkg/common"
)

const (
	// maxPairDistance is the largest token-index gap considered for a
	// syntactic relationship within a sentence.
	maxPairDistance = 5
	// maxRelationships caps the final ranked relationship list.
	maxRelationships = 15
	// maxUniverseTerms bounds the co-occurrence scan.
	maxUniverseTerms = 10
	// maxUniverseKeywords bounds how many top keywords seed the term universe.
	maxUniverseKeywords = 10
)

// relationDescriptions maps relationship types to description templates.
// Placeholders receive source and target in order.
var relationDescriptions = map[string]string{
	"acts-on":         "%s performs an action on %s",
	"acted-on-by":     "%s is acted upon by %s",
	"has-property":    "%s has the property %s",
	"describes":       "%s describes %s",
	"modifies":        "%s modifies %s",
	"relates-to":      "%s relates to %s",
	"associated-with": "%s is associated with %s",
	"co-occurs":       "%s frequently appears with %s",
}

// DescribeRelationship renders the templated description for a typed pair.
func DescribeRelationship(source, target, relType string) string {
	tmpl, ok := relationDescriptions[relType]
	if !ok {
		tmpl = relationDescriptions["associated-with"]
	}
	return fmt.Sprintf(tmpl, source, target)
}

// InferRelationships derives directed, typed relationships between the
// document's significant terms. The term universe is the lowercased lemmas
// of the top keywords plus the lowercased entity surfaces; insertion order
// is preserved so the co-occurrence pass is deterministic.
//
// Two passes run: a syntactic pass pairing nearby universe tokens inside
// each sentence, and a global co-occurrence pass counting shared sentences.
// Duplicates on (source, target, type) keep the strongest occurrence, and
// the result is ranked by strength and capped. Direction matters; a swapped
// pair is a distinct relationship.
func InferRelationships(doc *annotate.Annotation, keywords []common.Keyword, entities []common.Entity) []common.Relationship {
	universe, entityTerms := buildTermUniverse(keywords, entities)
	if len(universe) < 2 {
		return nil
	}
	inUniverse := make(map[string]bool, len(universe))
	for _, term := range universe {
		inUniverse[term] = true
	}

	var relationships []common.Relationship
	relationships = append(relationships, syntacticRelationships(doc, inUniverse, entityTerms)...)
	relationships = append(relationships, cooccurrenceRelationships(doc, universe)...)

	return rankRelationships(relationships)
}

// buildTermUniverse returns the ordered universe terms and the set of
// entity-derived terms. Entity terms also match on raw token text, not just
// the lemma, since proper nouns often lemmatize away their surface form.
func buildTermUniverse(keywords []common.Keyword, entities []common.Entity) ([]string, map[string]bool) {
	var universe []string
	seen := make(map[string]bool)
	for _, kw := range keywords[:util.Min(len(keywords), maxUniverseKeywords)] {
		term := strings.ToLower(kw.Word)
		if !seen[term] {
			seen[term] = true
			universe = append(universe, term)
		}
	}
	entityTerms := make(map[string]bool, len(entities))
	for _, ent := range entities {
		term := strings.ToLower(ent.Text)
		entityTerms[term] = true
		if !seen[term] {
			seen[term] = true
			universe = append(universe, term)
		}
	}
	return universe, entityTerms
}

func syntacticRelationships(doc *annotate.Annotation, inUniverse, entityTerms map[string]bool) []common.Relationship {
	var relationships []common.Relationship
	sentences := doc.SentenceTokens()
	for si, tokens := range sentences {
		var significant []annotate.Token
		for _, tok := range tokens {
			if inUniverse[strings.ToLower(tok.Lemma)] || entityTerms[strings.ToLower(tok.Text)] {
				significant = append(significant, tok)
			}
		}
		for i := 0; i < len(significant); i++ {
			for j := i + 1; j < len(significant); j++ {
				a, b := significant[i], significant[j]
				distance := b.Index - a.Index
				if distance < 0 {
					distance = -distance
				}
				if distance > maxPairDistance {
					continue
				}
				relType := classifyPair(a, b)
				relationships = append(relationships, common.Relationship{
					Source:      a.Text,
					Target:      b.Text,
					Type:        relType,
					Strength:    1.0 / float64(distance+1),
					Context:     doc.Sentences[si].Text,
					Description: DescribeRelationship(a.Text, b.Text, relType),
				})
			}
		}
	}
	return relationships
}

// classifyPair picks the relationship type for an ordered token pair. The
// rules are checked in priority order; the first match wins.
func classifyPair(a, b annotate.Token) string {
	aSubj := strings.Contains(a.Dep, "subj")
	aObj := strings.Contains(a.Dep, "obj")
	bSubj := strings.Contains(b.Dep, "subj")
	bObj := strings.Contains(b.Dep, "obj")

	switch {
	case aSubj && bObj:
		return "acts-on"
	case aObj && bSubj:
		return "acted-on-by"
	case a.POS == "NOUN" && b.POS == "ADJ":
		return "has-property"
	case a.POS == "ADJ" && b.POS == "NOUN":
		return "describes"
	case a.Dep == "compound" || b.Dep == "compound":
		return "modifies"
	case a.POS == "NOUN" && b.POS == "NOUN":
		return "relates-to"
	default:
		return "associated-with"
	}
}

func cooccurrenceRelationships(doc *annotate.Annotation, universe []string) []common.Relationship {
	if len(doc.Sentences) == 0 {
		return nil
	}
	lowered := make([]string, len(doc.Sentences))
	for i, sent := range doc.Sentences {
		lowered[i] = strings.ToLower(sent.Text)
	}

	terms := universe[:util.Min(len(universe), maxUniverseTerms)]
	var relationships []common.Relationship
	for i := 0; i < len(terms); i++ {
		for j := i + 1; j < len(terms); j++ {
			count := 0
			for _, sent := range lowered {
				if strings.Contains(sent, terms[i]) && strings.Contains(sent, terms[j]) {
					count++
				}
			}
			if count == 0 {
				continue
			}
			relationships = append(relationships, common.Relationship{
				Source:      terms[i],
				Target:      terms[j],
				Type:        "co-occurs",
				Strength:    float64(count) / float64(len(lowered)),
				Context:     fmt.Sprintf("Co-occurs in %d sentences", count),
				Description: DescribeRelationship(terms[i], terms[j], "co-occurs"),
			})
		}
	}
	return relationships
}

// rankRelationships deduplicates on (lowercased source, lowercased target,
// type), keeping the strongest occurrence, then ranks by strength and caps
// the list.
func rankRelationships(relationships []common.Relationship) []common.Relationship {
	best := make(map[string]common.Relationship, len(relationships))
	var order []string
	for _, rel := range relationships {
		key := strings.ToLower(rel.Source) + "|" + strings.ToLower(rel.Target) + "|" + rel.Type
		existing, ok := best[key]
		if !ok {
			order = append(order, key)
			best[key] = rel
			continue
		}
		if rel.Strength > existing.Strength {
			best[key] = rel
		}
	}

	ranked := make([]common.Relationship, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, best[key])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Strength > ranked[j].Strength
	})
	if len(ranked) > maxRelationships {
		ranked = ranked[:maxRelationships]
	}
	return ranked
}

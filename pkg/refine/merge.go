package refine

import (
	"encoding/json"
	"strings"

	"github.com/lexgraph/lexgraph/pkg/common"
	"github.com/lexgraph/lexgraph/pkg/logger"
)

// Merged holds the concatenated, deduplicated output of all refined
// batches. The merger is the sole owner of deduplication state.
type Merged struct {
	Entities      []common.Entity
	Keywords      []common.Keyword
	Relationships []common.Relationship
}

// MergeBatches concatenates refined batches by type, ignoring batch
// boundaries, and deduplicates: entities by lowercased text, keywords by
// lowercased word, relationships by the (source, target, type) composite
// key. The first occurrence wins in all three cases. Items that fail to
// parse are dropped with a warning rather than failing the merge.
func MergeBatches(batches []common.RefinedBatch) Merged {
	var merged Merged
	entitySeen := make(map[string]bool)
	keywordSeen := make(map[string]bool)
	relationshipSeen := make(map[string]bool)

	for _, batch := range batches {
		switch batch.Type {
		case common.BatchTypeEntities:
			for _, entity := range parseItems[common.Entity](batch) {
				key := strings.ToLower(strings.TrimSpace(entity.Text))
				if key == "" || entitySeen[key] {
					continue
				}
				entitySeen[key] = true
				merged.Entities = append(merged.Entities, entity)
			}
		case common.BatchTypeKeywords:
			for _, keyword := range parseItems[common.Keyword](batch) {
				key := strings.ToLower(strings.TrimSpace(keyword.Word))
				if key == "" || keywordSeen[key] {
					continue
				}
				keywordSeen[key] = true
				merged.Keywords = append(merged.Keywords, keyword)
			}
		case common.BatchTypeRelationships:
			for _, rel := range parseItems[common.Relationship](batch) {
				key := rel.Source + "-" + rel.Target + "-" + rel.Type
				if key == "--" || relationshipSeen[key] {
					continue
				}
				relationshipSeen[key] = true
				merged.Relationships = append(merged.Relationships, rel)
			}
		}
	}

	logger.Debug("[Merge] Merged batches",
		"entities", len(merged.Entities),
		"keywords", len(merged.Keywords),
		"relationships", len(merged.Relationships),
	)
	return merged
}

func parseItems[T any](batch common.RefinedBatch) []T {
	items := make([]T, 0, len(batch.RefinedItems))
	for _, raw := range batch.RefinedItems {
		var value T
		if err := json.Unmarshal(raw, &value); err != nil {
			logger.Warn("[Merge] Dropping unparseable refined item",
				"batch", batch.ID, "err", err)
			continue
		}
		items = append(items, value)
	}
	return items
}

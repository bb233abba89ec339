package refine

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/lexgraph/lexgraph/pkg/common"
)

func refinedBatch(t *testing.T, id, batchType string, items ...any) common.RefinedBatch {
	t.Helper()
	raw := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raw = append(raw, mustMarshal(t, item))
	}
	return common.RefinedBatch{
		Batch:        common.Batch{ID: id, Type: batchType, Items: raw},
		RefinedItems: raw,
		Method:       common.RefineMethodRules,
	}
}

func TestMergeBatches_FirstWinsAcrossBatches(t *testing.T) {
	batches := []common.RefinedBatch{
		refinedBatch(t, "entities_1", common.BatchTypeEntities,
			common.Entity{Text: "Kennedy", Label: "PERSON", Description: "first"},
			common.Entity{Text: "NASA", Label: "ORG"},
		),
		refinedBatch(t, "entities_2", common.BatchTypeEntities,
			common.Entity{Text: "kennedy", Label: "PERSON", Description: "second"},
			common.Entity{Text: "Apollo", Label: "ORG"},
		),
		refinedBatch(t, "keywords_1", common.BatchTypeKeywords,
			common.Keyword{Word: "rocket", Score: 0.9},
			common.Keyword{Word: "Rocket", Score: 0.1},
		),
		refinedBatch(t, "relationships_1", common.BatchTypeRelationships,
			common.Relationship{Source: "Kennedy", Target: "NASA", Type: "worked-for", Strength: 0.5},
			common.Relationship{Source: "Kennedy", Target: "NASA", Type: "worked-for", Strength: 0.2},
			common.Relationship{Source: "Kennedy", Target: "NASA", Type: "associated-with"},
		),
	}

	merged := MergeBatches(batches)

	if len(merged.Entities) != 3 {
		t.Fatalf("expected 3 entities, got %+v", merged.Entities)
	}
	if merged.Entities[0].Description != "first" {
		t.Fatalf("expected first occurrence kept, got %+v", merged.Entities[0])
	}

	if len(merged.Keywords) != 1 || merged.Keywords[0].Score != 0.9 {
		t.Fatalf("expected single first-wins keyword, got %+v", merged.Keywords)
	}

	// Same endpoints with a different type stay distinct.
	if len(merged.Relationships) != 2 {
		t.Fatalf("expected 2 relationships, got %+v", merged.Relationships)
	}
	if merged.Relationships[0].Strength != 0.5 {
		t.Fatalf("expected first occurrence kept, got %+v", merged.Relationships[0])
	}
}

func TestMergeBatches_Idempotent(t *testing.T) {
	batches := []common.RefinedBatch{
		refinedBatch(t, "entities_1", common.BatchTypeEntities,
			common.Entity{Text: "Kennedy", Label: "PERSON"},
		),
		refinedBatch(t, "keywords_1", common.BatchTypeKeywords,
			common.Keyword{Word: "rocket"},
		),
	}

	once := MergeBatches(batches)
	twice := MergeBatches(append(batches, batches...))
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected idempotent merge, got %+v vs %+v", once, twice)
	}
}

func TestMergeBatches_SkipsUnparseableAndBlank(t *testing.T) {
	batch := common.RefinedBatch{
		Batch: common.Batch{ID: "entities_1", Type: common.BatchTypeEntities},
		RefinedItems: []json.RawMessage{
			json.RawMessage(`{"text": "NASA", "label": "ORG"}`),
			json.RawMessage(`[broken`),
			json.RawMessage(`{"text": "   ", "label": "ORG"}`),
		},
		Method: common.RefineMethodExternal,
	}

	merged := MergeBatches([]common.RefinedBatch{batch})
	if len(merged.Entities) != 1 || merged.Entities[0].Text != "NASA" {
		t.Fatalf("expected single entity, got %+v", merged.Entities)
	}
}

func TestMergeBatches_Empty(t *testing.T) {
	merged := MergeBatches(nil)
	if merged.Entities != nil || merged.Keywords != nil || merged.Relationships != nil {
		t.Fatalf("expected empty merge, got %+v", merged)
	}
}

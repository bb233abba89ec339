package refine

import (
	"encoding/json"
	"fmt"

	"github.com/lexgraph/lexgraph/pkg/common"
	"github.com/lexgraph/lexgraph/pkg/logger"
)

// Config holds the per-type batch sizes for the enhanced pipeline.
type Config struct {
	EntitiesPerBatch      int
	KeywordsPerBatch      int
	RelationshipsPerBatch int
}

// DefaultConfig returns the default batch sizes.
func DefaultConfig() Config {
	return Config{
		EntitiesPerBatch:      20,
		KeywordsPerBatch:      30,
		RelationshipsPerBatch: 25,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.EntitiesPerBatch <= 0 {
		c.EntitiesPerBatch = d.EntitiesPerBatch
	}
	if c.KeywordsPerBatch <= 0 {
		c.KeywordsPerBatch = d.KeywordsPerBatch
	}
	if c.RelationshipsPerBatch <= 0 {
		c.RelationshipsPerBatch = d.RelationshipsPerBatch
	}
	return c
}

// CreateBatches splits the three typed result lists into bounded batches,
// preserving list order. Batch IDs carry the type and a 1-based sequence
// number; TotalBatches is the ceiling-divided count for that type. Items
// are serialized copies, so refining one batch cannot alias another.
func CreateBatches(result *common.Result, cfg Config) ([]common.Batch, error) {
	cfg = cfg.withDefaults()

	var batches []common.Batch

	entityBatches, err := splitTyped(common.BatchTypeEntities, result.Entities, cfg.EntitiesPerBatch)
	if err != nil {
		return nil, err
	}
	batches = append(batches, entityBatches...)

	keywordBatches, err := splitTyped(common.BatchTypeKeywords, result.Keywords, cfg.KeywordsPerBatch)
	if err != nil {
		return nil, err
	}
	batches = append(batches, keywordBatches...)

	relationshipBatches, err := splitTyped(common.BatchTypeRelationships, result.Relationships, cfg.RelationshipsPerBatch)
	if err != nil {
		return nil, err
	}
	batches = append(batches, relationshipBatches...)

	logger.Debug("[Batch] Created batches", "count", len(batches))
	return batches, nil
}

func splitTyped[T any](batchType string, items []T, size int) ([]common.Batch, error) {
	if len(items) == 0 {
		return nil, nil
	}

	total := (len(items) + size - 1) / size
	batches := make([]common.Batch, 0, total)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}

		raw := make([]json.RawMessage, 0, end-i)
		for _, item := range items[i:end] {
			data, err := json.Marshal(item)
			if err != nil {
				return nil, fmt.Errorf("marshal %s batch item: %w", batchType, err)
			}
			raw = append(raw, data)
		}

		batches = append(batches, common.Batch{
			ID:           fmt.Sprintf("%s_%d", batchType, i/size+1),
			Type:         batchType,
			Items:        raw,
			TotalBatches: total,
		})
	}
	return batches, nil
}

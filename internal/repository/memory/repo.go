// Package memory maps raw vector store hits into domain memory payloads.
package memory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/recollect-ai/recollect/internal/db"
	"github.com/recollect-ai/recollect/internal/domain"
	dommem "github.com/recollect-ai/recollect/internal/domain/memory"
)

const (
	keyPrefix = "recollect:memories:"
	indexName = keyPrefix + "idx"
)

// store is the consumer interface for memory search (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Repo implements usecase/retrieve.MemorySearcher over the vector store.
type Repo struct {
	store       store
	coarseFloor float64
	logger      *zap.Logger
}

// New creates a memory repository. coarseFloor is the store-side similarity
// threshold applied to every search, before any caller-level filtering.
func New(s store, coarseFloor float64, logger *zap.Logger) *Repo {
	return &Repo{store: s, coarseFloor: coarseFloor, logger: logger}
}

// Search runs a KNN search and decodes the hits into scored payloads.
// Hits below the coarse floor and hits with an unrecognized payload type are
// dropped; ordering otherwise follows the store (score-descending).
func (r *Repo) Search(ctx context.Context, vector []float32, k int) ([]dommem.ScoredHit, error) {
	q := &db.KNNQuery{
		IndexName: indexName,
		Vector:    vector,
		K:         k,
		ReturnFields: []string{
			"type", "channel", "user_message", "assistant_message",
			"key", "content", "timestamp", "__vector_score",
		},
	}

	sr, err := r.store.SearchKNN(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: search knn: %w", domain.ErrMemoryStore, err)
	}
	if sr == nil || sr.Total == 0 {
		return nil, nil
	}

	hits := make([]dommem.ScoredHit, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		if entry.Score < r.coarseFloor {
			continue
		}

		payload, err := decodePayload(entry.Fields)
		if err != nil {
			r.logger.Warn("Dropping undecodable memory record",
				zap.String("key", entry.Key), zap.Error(err))
			continue
		}

		hits = append(hits, dommem.ScoredHit{Score: entry.Score, Payload: payload})
	}

	return hits, nil
}

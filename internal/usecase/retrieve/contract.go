package retrieve

import (
	"context"

	"github.com/recollect-ai/recollect/internal/domain"
	"github.com/recollect-ai/recollect/internal/domain/memory"
	"github.com/recollect-ai/recollect/internal/domain/note"
)

// Embedder vectorizes query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// MemorySearcher runs a KNN search over stored memories. Hits come back in
// descending score order, already above the store-side coarse floor.
type MemorySearcher interface {
	Search(ctx context.Context, vector []float32, k int) ([]memory.ScoredHit, error)
}

// NoteSource fetches reference notes relevant to a query. An unconfigured
// source yields no notes, never an error.
type NoteSource interface {
	FetchRelevant(ctx context.Context, query string) ([]note.Note, error)
}

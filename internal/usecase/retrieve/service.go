// Package retrieve implements the semantic memory retriever and the prompt
// assembler that renders its results.
package retrieve

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/recollect-ai/recollect/internal/domain/memory"
	"github.com/recollect-ai/recollect/internal/domain/note"
	"github.com/recollect-ai/recollect/internal/metrics"
)

const (
	// DefaultMinScore is the business-level score floor. It is stricter than
	// the store-side coarse floor, so it only ever narrows the result set.
	DefaultMinScore = 0.5

	defaultTopK = 10
)

// Options tunes a single retrieval call.
type Options struct {
	// MinScore overrides DefaultMinScore when non-nil.
	MinScore *float64
}

// Result is the outcome of one retrieval: normalized memories in store order
// plus any reference notes. Built fresh per call, never cached.
type Result struct {
	Memories []memory.Entry
	Notes    []note.Note
}

// Service orchestrates embedding, vector search, filtering, and note lookup.
type Service struct {
	embed    Embedder
	memories MemorySearcher
	notes    NoteSource
	topK     int
	now      func() time.Time
	logger   *zap.Logger
}

// New creates a retrieval service.
func New(embed Embedder, memories MemorySearcher, notes NoteSource, logger *zap.Logger) *Service {
	return &Service{
		embed:    embed,
		memories: memories,
		notes:    notes,
		topK:     defaultTopK,
		now:      time.Now,
		logger:   logger,
	}
}

// WithTopK overrides how many hits are requested from the store.
func (s *Service) WithTopK(k int) *Service {
	if k > 0 {
		s.topK = k
	}
	return s
}

// WithClock fixes the reference time for recency labels (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Retrieve embeds the query, searches stored memories, applies the business
// score floor, and normalizes the surviving hits. Notes are fetched
// independently; an unconfigured vault contributes nothing. Embedding and
// store failures propagate to the caller.
func (s *Service) Retrieve(ctx context.Context, query, channel string, opts *Options) (Result, error) {
	minScore := DefaultMinScore
	if opts != nil && opts.MinScore != nil {
		minScore = *opts.MinScore
	}

	embRes, err := s.embed.Embed(ctx, query)
	if err != nil {
		return Result{}, fmt.Errorf("embed query: %w", err)
	}

	hits, err := s.memories.Search(ctx, embRes.Embedding, s.topK)
	if err != nil {
		return Result{}, fmt.Errorf("search memories: %w", err)
	}

	now := s.now()
	entries := make([]memory.Entry, 0, len(hits))
	for _, hit := range hits {
		if hit.Score < minScore {
			metrics.RetrievalHitsTotal.WithLabelValues("filtered").Inc()
			continue
		}

		content, err := memory.Render(hit.Payload)
		if err != nil {
			s.logger.Warn("Dropping unrenderable memory hit",
				zap.String("channel", channel), zap.Error(err))
			continue
		}

		ts := hit.Payload.Timestamp()
		entries = append(entries, memory.Entry{
			Content:   content,
			Score:     hit.Score,
			Channel:   hit.Payload.Channel(),
			Timestamp: ts.Format(time.RFC3339),
			TimeAgo:   memory.TimeAgo(ts, now),
			Type:      hit.Payload.Kind(),
		})
		metrics.RetrievalHitsTotal.WithLabelValues("returned").Inc()
	}

	notes, err := s.notes.FetchRelevant(ctx, query)
	if err != nil {
		return Result{}, fmt.Errorf("fetch notes: %w", err)
	}

	s.logger.Debug("Retrieval complete",
		zap.String("channel", channel),
		zap.Int("memories", len(entries)),
		zap.Int("notes", len(notes)),
	)

	return Result{Memories: entries, Notes: notes}, nil
}

// Package websearch sequences web search provider attempts and encodes the
// fallback and exhaustion policy.
package websearch

import (
	"context"

	"go.uber.org/zap"

	domws "github.com/recollect-ai/recollect/internal/domain/websearch"
	"github.com/recollect-ai/recollect/internal/metrics"
)

// DefaultMaxResults caps returned hits when the caller does not specify.
const DefaultMaxResults = 5

// Service tries providers in order: the first configured provider that
// answers wins. A provider failure is logged and swallowed; the next
// configured provider is tried. Failure surfaces to the caller only when
// every configured provider has failed, or none is configured.
type Service struct {
	providers  []Provider
	defaultMax int
	logger     *zap.Logger
}

// New creates a coordinator over an ordered provider list (primary first).
func New(logger *zap.Logger, providers ...Provider) *Service {
	return &Service{providers: providers, defaultMax: DefaultMaxResults, logger: logger}
}

// WithDefaultMaxResults overrides the result cap used when the caller does
// not specify one.
func (s *Service) WithDefaultMaxResults(n int) *Service {
	if n > 0 {
		s.defaultMax = n
	}
	return s
}

// Search runs the provider chain for one query. Each provider is invoked at
// most once. The outcome always distinguishes "no engine configured" from
// "engines configured but all failed".
func (s *Service) Search(ctx context.Context, query string, maxResults int) domws.Outcome {
	if maxResults <= 0 {
		maxResults = s.defaultMax
	}

	failed := 0
	for _, p := range s.providers {
		if !p.Configured() {
			continue
		}
		if failed > 0 {
			metrics.WebSearchFallbacksTotal.Inc()
		}

		out, err := p.Search(ctx, query, maxResults)
		if err != nil {
			s.logger.Warn("Search provider failed, trying next",
				zap.String("provider", p.Name()), zap.Error(err))
			failed++
			continue
		}
		return out
	}

	if failed > 0 {
		return domws.Outcome{
			Success: false,
			Text:    "Web search failed: every configured search engine returned an error.",
			Error:   "all configured search engines failed",
		}
	}

	return domws.Outcome{
		Success: false,
		Text:    "No search engine is configured. Set a SearXNG base URL or a Brave API key.",
		Error:   "no search engine configured",
	}
}

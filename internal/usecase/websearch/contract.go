package websearch

import (
	"context"

	domws "github.com/recollect-ai/recollect/internal/domain/websearch"
)

// Provider is one concrete web search backend. Configured reports whether
// the provider has the credentials/URL it needs; the coordinator never
// invokes an unconfigured provider.
type Provider interface {
	Name() string
	Configured() bool
	Search(ctx context.Context, query string, maxResults int) (domws.Outcome, error)
}

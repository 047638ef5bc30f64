package domain

import "errors"

// Sentinel errors shared between layers.
var (
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrSearchProvider signals a web search provider failure.
	ErrSearchProvider = errors.New("search provider error")
	// ErrNotConfigured signals a provider with no usable configuration.
	ErrNotConfigured = errors.New("not configured")
	// ErrBadTimestamp signals a malformed memory timestamp.
	ErrBadTimestamp = errors.New("bad timestamp")
	// ErrUnknownPayloadKind signals a memory payload with an unrecognized type tag.
	ErrUnknownPayloadKind = errors.New("unknown payload kind")
	// ErrMemoryStore signals a vector store failure.
	ErrMemoryStore = errors.New("memory store error")
)

// Package searxng implements the primary web search provider against a
// self-hosted SearXNG instance.
package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/recollect-ai/recollect/internal/domain"
	"github.com/recollect-ai/recollect/internal/domain/websearch"
	"github.com/recollect-ai/recollect/internal/metrics"
)

const providerName = "SearXNG"

// Provider queries a SearXNG instance's JSON API.
type Provider struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// New creates a SearXNG provider. baseURL may be empty (provider not eligible).
func New(baseURL string, logger *zap.Logger) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// Name returns the provider label used in outcome text.
func (p *Provider) Name() string { return providerName }

// Configured reports whether a base URL was supplied.
func (p *Provider) Configured() bool { return p.baseURL != "" }

// response mirrors the SearXNG JSON result shape.
type response struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search runs one GET against /search and normalizes the response.
// The request always fetches the instance's default page size; truncation to
// maxResults happens after mapping.
func (p *Provider) Search(ctx context.Context, query string, maxResults int) (websearch.Outcome, error) {
	if !p.Configured() {
		return websearch.Outcome{}, fmt.Errorf("%w: searxng base URL is empty", domain.ErrNotConfigured)
	}

	reqURL := fmt.Sprintf("%s/search?q=%s&format=json", p.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return websearch.Outcome{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		metrics.WebSearchRequestsTotal.WithLabelValues(providerName, "error").Inc()
		return websearch.Outcome{}, fmt.Errorf("%s request failed: %w: %w", providerName, domain.ErrSearchProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.WebSearchRequestsTotal.WithLabelValues(providerName, "error").Inc()
		return websearch.Outcome{}, fmt.Errorf("%s error: %d: %w", providerName, resp.StatusCode, domain.ErrSearchProvider)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.WebSearchRequestsTotal.WithLabelValues(providerName, "error").Inc()
		return websearch.Outcome{}, fmt.Errorf("%s decode response: %w: %w", providerName, domain.ErrSearchProvider, err)
	}

	metrics.WebSearchRequestsTotal.WithLabelValues(providerName, "success").Inc()

	if len(body.Results) == 0 {
		return websearch.Outcome{
			Success: true,
			Text:    websearch.NoResultsText(providerName, query),
		}, nil
	}

	hits := make([]websearch.Hit, len(body.Results))
	for i, r := range body.Results {
		hits[i] = websearch.Hit{Title: r.Title, URL: r.URL, Snippet: r.Content}
	}
	hits = websearch.Truncate(hits, maxResults)

	return websearch.Outcome{
		Success: true,
		Text:    websearch.FormatText(providerName, query, hits),
		Results: hits,
	}, nil
}

// Package brave implements the fallback web search provider against the
// Brave Search REST API.
package brave

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

const (
	providerName   = "Brave Search"
	defaultBaseURL = "https://api.search.brave.com/res/v1"
)

// Provider queries the Brave Search web API.
type Provider struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// New creates a Brave provider. apiKey may be empty; a keyless provider
// answers Search with a Success=false outcome instead of doing I/O.
func New(apiKey string, logger *zap.Logger) *Provider {
	return &Provider{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// WithBaseURL overrides the API endpoint (tests).
func (p *Provider) WithBaseURL(baseURL string) *Provider {
	p.baseURL = strings.TrimRight(baseURL, "/")
	return p
}

// Name returns the provider label used in outcome text.
func (p *Provider) Name() string { return providerName }

// Configured reports whether an API key was supplied.
func (p *Provider) Configured() bool { return p.apiKey != "" }

// response mirrors the Brave web search JSON shape.
type response struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"results"`
	} `json:"web"`
}

// Search runs one GET against /web/search and normalizes the response.
// A missing API key yields a Success=false outcome with no I/O; truncation
// to maxResults happens after mapping.
func (p *Provider) Search(ctx context.Context, query string, maxResults int) (websearch.Outcome, error) {
	if !p.Configured() {
		return websearch.Outcome{
			Success: false,
			Text:    "Web search is unavailable: BRAVE_API_KEY is not set.",
			Error:   "BRAVE_API_KEY is not set; configure it to enable the fallback search engine",
		}, nil
	}

	reqURL := fmt.Sprintf("%s/web/search?q=%s", p.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return websearch.Outcome{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", p.apiKey)

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

	if len(body.Web.Results) == 0 {
		return websearch.Outcome{
			Success: true,
			Text:    websearch.NoResultsText(providerName, query),
		}, nil
	}

	hits := make([]websearch.Hit, len(body.Web.Results))
	for i, r := range body.Web.Results {
		hits[i] = websearch.Hit{Title: r.Title, URL: r.URL, Snippet: r.Description}
	}
	hits = websearch.Truncate(hits, maxResults)

	return websearch.Outcome{
		Success: true,
		Text:    websearch.FormatText(providerName, query, hits),
		Results: hits,
	}, nil
}

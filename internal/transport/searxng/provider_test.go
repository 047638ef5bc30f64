package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recollect-ai/recollect/internal/domain"
)

type fakeResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

func resultsServer(t *testing.T, results []fakeResult) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"results": results})
	}))
}

func TestSearch_Success(t *testing.T) {
	server := resultsServer(t, []fakeResult{
		{Title: "Go", URL: "https://go.dev", Content: "The Go programming language"},
		{Title: "Go blog", URL: "https://go.dev/blog", Content: "News from the Go project"},
	})
	defer server.Close()

	p := New(server.URL, zap.NewNop())

	out, err := p.Search(context.Background(), "test", 5)
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Len(t, out.Results, 2)
	assert.Contains(t, out.Text, "SearXNG")
	assert.Contains(t, out.Text, "https://go.dev")
	assert.Equal(t, "Go", out.Results[0].Title)
	assert.Equal(t, "News from the Go project", out.Results[1].Snippet)
}

func TestSearch_TruncatesAfterMapping(t *testing.T) {
	var many []fakeResult
	for i := range 20 {
		many = append(many, fakeResult{
			Title:   fmt.Sprintf("result %d", i),
			URL:     fmt.Sprintf("https://example.com/%d", i),
			Content: "snippet",
		})
	}
	server := resultsServer(t, many)
	defer server.Close()

	p := New(server.URL, zap.NewNop())

	out, err := p.Search(context.Background(), "golang", 3)
	require.NoError(t, err)

	assert.Len(t, out.Results, 3)
	assert.Equal(t, "result 0", out.Results[0].Title)
	assert.Equal(t, "result 2", out.Results[2].Title)
}

func TestSearch_EmptyResults(t *testing.T) {
	server := resultsServer(t, nil)
	defer server.Close()

	p := New(server.URL, zap.NewNop())

	out, err := p.Search(context.Background(), "nothing matches this", 5)
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Empty(t, out.Results)
	assert.Contains(t, out.Text, "no results")
}

func TestSearch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := New(server.URL, zap.NewNop())

	_, err := p.Search(context.Background(), "test", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSearchProvider)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "SearXNG")
}

func TestSearch_NotConfigured(t *testing.T) {
	p := New("", zap.NewNop())

	assert.False(t, p.Configured())

	_, err := p.Search(context.Background(), "test", 5)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestSearch_QueryIsEscaped(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	p := New(server.URL, zap.NewNop())

	_, err := p.Search(context.Background(), "weather in ulm & berlin?", 5)
	require.NoError(t, err)
	assert.Equal(t, "weather in ulm & berlin?", gotQuery)
}

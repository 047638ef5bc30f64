package brave

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recollect-ai/recollect/internal/domain"
)

const sampleBody = `{
	"web": {
		"results": [
			{"title": "Go", "url": "https://go.dev", "description": "The Go programming language"},
			{"title": "Go wiki", "url": "https://go.dev/wiki", "description": "Community wiki"}
		]
	}
}`

func TestSearch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/web/search", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("X-Subscription-Token"))
		assert.Equal(t, "golang", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	p := New("test-api-key", zap.NewNop()).WithBaseURL(server.URL)

	out, err := p.Search(context.Background(), "golang", 5)
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Len(t, out.Results, 2)
	assert.Contains(t, out.Text, "Brave Search")
	assert.Equal(t, "Go", out.Results[0].Title)
	assert.Equal(t, "Community wiki", out.Results[1].Snippet)
}

func TestSearch_Truncates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	p := New("test-api-key", zap.NewNop()).WithBaseURL(server.URL)

	out, err := p.Search(context.Background(), "golang", 1)
	require.NoError(t, err)

	assert.Len(t, out.Results, 1)
	assert.Equal(t, "Go", out.Results[0].Title)
}

func TestSearch_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"web":{"results":[]}}`))
	}))
	defer server.Close()

	p := New("test-api-key", zap.NewNop()).WithBaseURL(server.URL)

	out, err := p.Search(context.Background(), "nothing", 5)
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Empty(t, out.Results)
	assert.Contains(t, out.Text, "no results")
}

func TestSearch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	p := New("bad-key", zap.NewNop()).WithBaseURL(server.URL)

	_, err := p.Search(context.Background(), "golang", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSearchProvider)
	assert.Contains(t, err.Error(), "401")
}

func TestSearch_MissingKeyIsOutcomeNotError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	p := New("", zap.NewNop()).WithBaseURL(server.URL)

	assert.False(t, p.Configured())

	out, err := p.Search(context.Background(), "golang", 5)
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "BRAVE_API_KEY")
	assert.Zero(t, calls, "missing key must not trigger HTTP calls")
}

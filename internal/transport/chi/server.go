// Package chi exposes the retrieval and web search services over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/recollect-ai/recollect/internal/domain"
	"github.com/recollect-ai/recollect/internal/domain/memory"
	healthuc "github.com/recollect-ai/recollect/internal/usecase/health"
	retrieveuc "github.com/recollect-ai/recollect/internal/usecase/retrieve"
	websearchuc "github.com/recollect-ai/recollect/internal/usecase/websearch"
)

const maxQueryLength = 8192

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the HTTP API server.
type Server struct {
	retrieve      *retrieveuc.Service
	websearch     *websearchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	retrieve *retrieveuc.Service,
	websearch *websearchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		retrieve:  retrieve,
		websearch: websearch,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingProviderError),
		sentinelHandler(domain.ErrMemoryStore, http.StatusBadGateway, codeMemoryStoreError),
		sentinelHandler(domain.ErrSearchProvider, http.StatusBadGateway, codeSearchProviderError),
		sentinelHandler(domain.ErrNotConfigured, http.StatusServiceUnavailable, codeNotConfigured),
	}
	return s
}

// Routes mounts all API routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/retrieve", s.handleRetrieve)
	r.Get("/v1/search", s.handleWebSearch)
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// Error codes returned to API clients.
const (
	codeBadRequest             = "bad_request"
	codeValidationFailed       = "validation_failed"
	codeEmbeddingProviderError = "embedding_provider_error"
	codeMemoryStoreError       = "memory_store_error"
	codeSearchProviderError    = "search_provider_error"
	codeNotConfigured          = "not_configured"
	codeInternalError          = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type retrieveRequest struct {
	Query    string   `json:"query"`
	Channel  string   `json:"channel,omitempty"`
	MinScore *float64 `json:"min_score,omitempty"`
}

type memoryEntryResponse struct {
	Content   string  `json:"content"`
	Score     float64 `json:"score"`
	Channel   string  `json:"channel,omitempty"`
	Timestamp string  `json:"timestamp"`
	TimeAgo   string  `json:"time_ago"`
	Type      string  `json:"type"`
}

type noteResponse struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

type retrieveResponse struct {
	Memories []memoryEntryResponse `json:"memories"`
	Notes    []noteResponse        `json:"notes"`
	Prompt   string                `json:"prompt"`
}

type webSearchHitResponse struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

type webSearchResponse struct {
	Success bool                   `json:"success"`
	Text    string                 `json:"text"`
	Results []webSearchHitResponse `json:"results,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// handleRetrieve handles POST /v1/retrieve.
func (s *Server) handleRetrieve(w http.ResponseWriter, r *http.Request) {
	var req retrieveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Query == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query is required")
		return
	}
	if len(req.Query) > maxQueryLength {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query is too long")
		return
	}
	if req.MinScore != nil && (*req.MinScore < 0 || *req.MinScore > 1) {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "min_score must be between 0 and 1")
		return
	}

	var opts *retrieveuc.Options
	if req.MinScore != nil {
		opts = &retrieveuc.Options{MinScore: req.MinScore}
	}

	res, err := s.retrieve.Retrieve(r.Context(), req.Query, req.Channel, opts)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, retrieveToResponse(res))
}

// handleWebSearch handles GET /v1/search.
func (s *Server) handleWebSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "q is required")
		return
	}
	if len(query) > maxQueryLength {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "q is too long")
		return
	}

	maxResults := 0
	if raw := r.URL.Query().Get("max_results"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "max_results must be a positive integer")
			return
		}
		maxResults = n
	}

	out := s.websearch.Search(r.Context(), query, maxResults)

	resp := webSearchResponse{
		Success: out.Success,
		Text:    out.Text,
		Error:   out.Error,
	}
	if len(out.Results) > 0 {
		resp.Results = make([]webSearchHitResponse, len(out.Results))
		for i, h := range out.Results {
			resp.Results[i] = webSearchHitResponse{Title: h.Title, URL: h.URL, Snippet: h.Snippet}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func retrieveToResponse(res retrieveuc.Result) retrieveResponse {
	memories := make([]memoryEntryResponse, len(res.Memories))
	for i, m := range res.Memories {
		memories[i] = memoryEntryToResponse(m)
	}

	notes := make([]noteResponse, len(res.Notes))
	for i, n := range res.Notes {
		notes[i] = noteResponse{Path: n.Path, Content: n.Content}
	}

	return retrieveResponse{
		Memories: memories,
		Notes:    notes,
		Prompt:   retrieveuc.BuildPrompt(res),
	}
}

func memoryEntryToResponse(m memory.Entry) memoryEntryResponse {
	return memoryEntryResponse{
		Content:   m.Content,
		Score:     m.Score,
		Channel:   m.Channel,
		Timestamp: m.Timestamp,
		TimeAgo:   m.TimeAgo,
		Type:      string(m.Type),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmbeddingProviderError,
		domain.ErrMemoryStore,
		domain.ErrSearchProvider,
		domain.ErrNotConfigured,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/stylefinder/backend/internal/domain"
)

// User-visible texts for degraded and empty outcomes
const (
	warningSearchUnavailable = "Search is temporarily unavailable. Please try again in a moment."
	messageNoResults         = "No matching products found. Try fewer or more general keywords."
)

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	DefaultMaxResults  int
	EnableDebugLogging bool
}

// SearchService orchestrates one product search:
// build query -> call provider -> process results -> record in session.
type SearchService struct {
	client             domain.SearchClient
	sessions           domain.SessionStore
	builder            *QueryBuilder
	processor          *ResultProcessor
	defaultMaxResults  int
	enableDebugLogging bool
}

// NewSearchService creates a search service for the given market profile
func NewSearchService(
	client domain.SearchClient,
	sessions domain.SessionStore,
	profile MarketProfile,
	config SearchServiceConfig,
) *SearchService {
	maxResults := config.DefaultMaxResults
	if maxResults <= 0 {
		maxResults = 15
	}

	return &SearchService{
		client:             client,
		sessions:           sessions,
		builder:            NewQueryBuilder(profile, config.EnableDebugLogging),
		processor:          NewResultProcessor(profile, nil, config.EnableDebugLogging),
		defaultMaxResults:  maxResults,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// BuildQuery exposes query construction for callers that only need the
// derived query string.
func (s *SearchService) BuildQuery(description string, focus domain.FocusMode) string {
	return s.builder.BuildQuery(description, focus)
}

// Process exposes result processing over already-fetched raw items.
func (s *SearchService) Process(items []domain.RawResultItem) []domain.ProductCandidate {
	return s.processor.Process(items)
}

// Search runs the full pipeline for one user request.
//
// Provider transport failures do not propagate: the response degrades to an
// empty result list with a user-visible warning. Missing credentials are the
// one fatal-to-the-feature condition and are returned as ErrNotConfigured.
func (s *SearchService) Search(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResponse, error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}

	maxResults := request.MaxResults
	if maxResults <= 0 {
		maxResults = s.defaultMaxResults
	}

	query := s.builder.BuildQuery(request.Description, request.Focus)

	items, err := s.client.Search(ctx, query, maxResults)
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			return nil, err
		}
		log.Printf("[SEARCH] Provider call failed, degrading to empty results: %v", err)
		return &domain.SearchResponse{
			Query:   query,
			Results: []domain.ProductCandidate{},
			Warning: warningSearchUnavailable,
		}, nil
	}

	results := s.processor.Process(items)

	response := &domain.SearchResponse{
		Query:      query,
		Results:    results,
		TotalFound: len(results),
	}
	if len(results) == 0 {
		response.Message = messageNoResults
	}

	s.recordSearch(ctx, request, query, results)

	return response, nil
}

// History returns the recent searches of a session. An unknown session is a
// valid empty state, not an error.
func (s *SearchService) History(ctx context.Context, sessionID string) ([]domain.HistoryEntry, error) {
	if sessionID == "" {
		return nil, domain.ErrInvalidRequest
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return []domain.HistoryEntry{}, nil
		}
		return nil, err
	}

	return session.History, nil
}

// recordSearch stores the search in the session when a session id is given.
// Failures are logged, never surfaced: session state is a convenience.
func (s *SearchService) recordSearch(ctx context.Context, request *domain.SearchRequest, query string, results []domain.ProductCandidate) {
	if request.SessionID == "" {
		return
	}

	entry := domain.HistoryEntry{
		Query:       query,
		Description: request.Description,
		ResultCount: len(results),
		SearchedAt:  time.Now(),
	}

	if err := s.sessions.Record(ctx, request.SessionID, entry, results); err != nil {
		log.Printf("[SEARCH] Failed to record session %s: %v", request.SessionID, err)
	}
}

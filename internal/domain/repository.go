package domain

import "context"

// SearchClient defines the interface for the external web-search provider.
type SearchClient interface {
	// Search issues a keyword search and returns raw items in provider order.
	Search(ctx context.Context, query string, numResults int) ([]RawResultItem, error)
}

// SessionStore defines the interface for per-session state persistence.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*Session, error)
	Record(ctx context.Context, sessionID string, entry HistoryEntry, results []ProductCandidate) error
	Delete(ctx context.Context, sessionID string) error
}

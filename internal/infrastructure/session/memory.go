package session

import (
	"context"
	"sync"
	"time"

	"github.com/stylefinder/backend/internal/domain"
)

// storeItem wraps a session with its expiration time
type storeItem struct {
	session    *domain.Session
	expiration time.Time
}

// MemoryStore is a thread-safe in-memory session store with TTL support.
// Sessions hold last results and a bounded search history; nothing is
// persisted beyond process lifetime.
type MemoryStore struct {
	data         map[string]storeItem
	mutex        sync.RWMutex
	ttl          time.Duration
	historyLimit int
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore(ttl time.Duration, historyLimit int) *MemoryStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if historyLimit <= 0 {
		historyLimit = 20
	}

	store := &MemoryStore{
		data:         make(map[string]storeItem),
		ttl:          ttl,
		historyLimit: historyLimit,
	}

	// Cleanup goroutine removes expired sessions every 10 minutes
	go store.cleanupExpired()

	return store
}

// Get retrieves a session by id. It returns a snapshot, never the stored
// session itself: Record keeps mutating the stored one under the lock, so
// handing out the live pointer would let readers race with later writes.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.data[sessionID]
	if !exists || time.Now().After(item.expiration) {
		return nil, domain.ErrSessionNotFound
	}

	return copySession(item.session), nil
}

// copySession makes a snapshot of a session with its own slices
func copySession(session *domain.Session) *domain.Session {
	snapshot := &domain.Session{ID: session.ID}
	if len(session.History) > 0 {
		snapshot.History = make([]domain.HistoryEntry, len(session.History))
		copy(snapshot.History, session.History)
	}
	if len(session.LastResults) > 0 {
		snapshot.LastResults = make([]domain.ProductCandidate, len(session.LastResults))
		copy(snapshot.LastResults, session.LastResults)
	}
	return snapshot
}

// Record appends a history entry and replaces the last results for a
// session, creating the session on first use. The TTL slides on each write.
func (s *MemoryStore) Record(ctx context.Context, sessionID string, entry domain.HistoryEntry, results []domain.ProductCandidate) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	item, exists := s.data[sessionID]
	if !exists || time.Now().After(item.expiration) {
		item = storeItem{session: &domain.Session{ID: sessionID}}
	}

	item.session.History = append(item.session.History, entry)
	if len(item.session.History) > s.historyLimit {
		item.session.History = item.session.History[len(item.session.History)-s.historyLimit:]
	}
	item.session.LastResults = results
	item.expiration = time.Now().Add(s.ttl)

	s.data[sessionID] = item
	return nil
}

// Delete removes a session
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, sessionID)
	return nil
}

// cleanupExpired removes expired sessions periodically
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, item := range s.data {
			if now.After(item.expiration) {
				delete(s.data, key)
			}
		}
		s.mutex.Unlock()
	}
}

// Size returns the current number of sessions (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// Clear removes all sessions
func (s *MemoryStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data = make(map[string]storeItem)
}

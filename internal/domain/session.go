package domain

import "time"

// HistoryEntry records one past search within a session.
type HistoryEntry struct {
	Query       string    `json:"query"`
	Description string    `json:"description"`
	ResultCount int       `json:"resultCount"`
	SearchedAt  time.Time `json:"searchedAt"`
}

// Session holds per-browser-session state. It is an explicit context object
// passed into the core, never ambient global state; it lives in memory only.
type Session struct {
	ID          string             `json:"id"`
	History     []HistoryEntry     `json:"history"`
	LastResults []ProductCandidate `json:"lastResults,omitempty"`
}

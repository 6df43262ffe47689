package domain

// Currency identifies the currency inferred during price extraction.
type Currency string

const (
	CurrencyEUR   Currency = "EUR"
	CurrencyOther Currency = "OTHER"
	CurrencyNone  Currency = ""
)

// FocusMode selects what the search query should prioritize.
type FocusMode string

const (
	FocusBestMatch   FocusMode = "best_match"
	FocusLowestPrice FocusMode = "lowest_price"
	FocusBrand       FocusMode = "brand"
	FocusRegionFirst FocusMode = "region_first"
)

// SearchRequest represents one product search triggered by a user.
type SearchRequest struct {
	Description string    `json:"description"`
	Focus       FocusMode `json:"focus,omitempty"`
	MaxResults  int       `json:"maxResults,omitempty"`
	SessionID   string    `json:"sessionId,omitempty"`
}

// SearchResponse is the full result of a product search.
type SearchResponse struct {
	Query      string             `json:"query"`
	Results    []ProductCandidate `json:"results"`
	TotalFound int                `json:"totalFound"`
	// Warning carries a user-visible message when the provider call failed
	// and the search degraded to an empty result set.
	Warning string `json:"warning,omitempty"`
	// Message carries guidance text for valid-but-empty outcomes.
	Message string `json:"message,omitempty"`
}

// RawResultItem is a single item as returned by the search provider.
// Immutable once received; malformed items are skipped during processing.
type RawResultItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	DisplayLink string `json:"displayLink"`
	Snippet     string `json:"snippet"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// PriceExtraction is the outcome of running the price extractor over a text
// blob. A zero value means no price was found, which is valid, not an error.
type PriceExtraction struct {
	Amount   string   `json:"amount,omitempty"`
	Currency Currency `json:"currency,omitempty"`
}

// Found reports whether a price was extracted.
func (p PriceExtraction) Found() bool {
	return p.Amount != ""
}

// ProductCandidate is one ranked candidate match for the user's item.
// Created once per accepted raw item and never mutated afterwards.
type ProductCandidate struct {
	Title           string   `json:"title"`
	Store           string   `json:"store"`
	Price           string   `json:"price,omitempty"`
	Currency        Currency `json:"currency,omitempty"`
	URL             string   `json:"url"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	Snippet         string   `json:"snippet"`
	DisplayLink     string   `json:"displayLink"`
	IsRegionalStore bool     `json:"isRegionalStore"`
	RelevanceScore  int      `json:"relevanceScore"`
}

// HasPrice reports whether a price was extracted for this candidate.
func (c ProductCandidate) HasPrice() bool {
	return c.Price != ""
}

package usecase

import (
	"log"
	"regexp"
	"strings"

	"github.com/stylefinder/backend/internal/domain"
)

// Compiled regex patterns for query building
var (
	// Strips punctuation so "red-dress, size M!" tokenizes cleanly
	nonWordRegex = regexp.MustCompile(`[^\w\s]`)
)

// queryStopWords are common words that add no signal to a product search
var queryStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "is": true,
	"are": true, "was": true, "were": true,
}

const (
	// defaultQuery is used when the user's description yields no usable tokens
	defaultQuery = "women fashion dress clothing style apparel"

	maxUserTokens   = 5
	maxContextTerms = 3
	maxLocaleTerms  = 2
	minTokenLength  = 3
)

// QueryBuilder turns free-text item descriptions into search-engine queries,
// injecting the market profile's fashion and locale vocabulary.
type QueryBuilder struct {
	profile            MarketProfile
	enableDebugLogging bool
}

// NewQueryBuilder creates a query builder for the given market profile
func NewQueryBuilder(profile MarketProfile, enableDebugLogging bool) *QueryBuilder {
	return &QueryBuilder{
		profile:            profile,
		enableDebugLogging: enableDebugLogging,
	}
}

// BuildQuery produces the search query for a user description and focus mode.
// Always returns a non-empty string: an empty or all-noise description falls
// back to a fixed default phrase.
func (b *QueryBuilder) BuildQuery(description string, focus domain.FocusMode) string {
	tokens := b.extractTokens(description)

	var parts []string
	if len(tokens) > 0 {
		if len(tokens) > maxUserTokens {
			tokens = tokens[:maxUserTokens]
		}
		parts = append(parts, tokens...)
		parts = append(parts, capTerms(b.profile.ContextTerms, maxContextTerms)...)
		parts = append(parts, capTerms(b.profile.LocaleTerms, maxLocaleTerms)...)
	} else {
		parts = append(parts, defaultQuery)
	}

	if mod := b.focusModifier(focus); mod != "" {
		parts = append(parts, mod)
	}

	query := strings.TrimSpace(strings.Join(parts, " "))

	if b.enableDebugLogging {
		log.Printf("[QUERY] Input: %q | Focus: %s | Query: %q", description, focus, query)
	}

	return query
}

// extractTokens lowercases, strips punctuation, and keeps the first
// meaningful words in their original order.
func (b *QueryBuilder) extractTokens(description string) []string {
	cleaned := nonWordRegex.ReplaceAllString(strings.ToLower(description), " ")

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if queryStopWords[word] || len(word) < minTokenLength {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// focusModifier returns the fixed phrase appended for a focus mode
func (b *QueryBuilder) focusModifier(focus domain.FocusMode) string {
	switch focus {
	case domain.FocusLowestPrice:
		if len(b.profile.LocaleTerms) > 0 {
			return "EUR price sale discount"
		}
		return "price sale discount"
	case domain.FocusBrand:
		return "brand official store"
	case domain.FocusRegionFirst:
		return "Nederland Europe EU shipping"
	default:
		return ""
	}
}

// capTerms returns at most n leading terms
func capTerms(terms []string, n int) []string {
	if len(terms) > n {
		return terms[:n]
	}
	return terms
}

package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/stylefinder/backend/internal/domain"
)

// Accepted price range. Values outside it are treated as non-prices
// (years, quantities, article numbers).
const (
	minAcceptedPrice = 1
	maxAcceptedPrice = 10000
)

// PricePattern couples a regex with the currency it implies. The numeric
// amount must be in capture group 1.
type PricePattern struct {
	Pattern  *regexp.Regexp
	Currency domain.Currency
}

// DefaultPricePatterns returns the ordered pattern set, EUR formats first.
// Order matters: the first pattern that yields an in-range value wins and
// lower-priority patterns are never consulted.
func DefaultPricePatterns() []PricePattern {
	return []PricePattern{
		// EUR currency formats (priority)
		{regexp.MustCompile(`€\s*(\d{1,4}(?:,\d{3})*(?:\.\d{2})?)`), domain.CurrencyEUR},
		{regexp.MustCompile(`(\d{1,4}(?:,\d{3})*(?:\.\d{2})?)\s*€`), domain.CurrencyEUR},
		{regexp.MustCompile(`(?i)(\d{1,4}(?:,\d{3})*(?:\.\d{2})?)\s*eur(?:o|os)?`), domain.CurrencyEUR},

		// Other currencies
		{regexp.MustCompile(`[$£¥₹]\s*(\d{1,4}(?:,\d{3})*(?:\.\d{2})?)`), domain.CurrencyOther},
		{regexp.MustCompile(`(\d{1,4}(?:,\d{3})*(?:\.\d{2})?)\s*[$£¥₹]`), domain.CurrencyOther},
		{regexp.MustCompile(`(?i)(\d{1,4}(?:,\d{3})*(?:\.\d{2})?)\s*(?:usd|gbp|inr|cad|aud)`), domain.CurrencyOther},
	}
}

// PriceExtractor locates a currency amount in free text. It is a pure
// function of its input: identical text always yields an identical result.
type PriceExtractor struct {
	patterns []PricePattern
}

// NewPriceExtractor creates an extractor with the given pattern set,
// falling back to the default EUR-first set when none is provided.
func NewPriceExtractor(patterns []PricePattern) *PriceExtractor {
	if len(patterns) == 0 {
		patterns = DefaultPricePatterns()
	}
	return &PriceExtractor{patterns: patterns}
}

// Extract scans the text with each pattern in priority order and returns the
// first accepted amount, formatted with two decimals. A zero-value result
// means no price was found.
//
// When one pattern matches several in-range numbers, the smallest wins. This
// guards against picking up an unrelated large number, at the cost of
// sometimes grabbing a discount figure instead of the price. Known
// limitation, kept on purpose.
func (e *PriceExtractor) Extract(text string) domain.PriceExtraction {
	if text == "" {
		return domain.PriceExtraction{}
	}

	fullText := strings.ToLower(text)

	for _, p := range e.patterns {
		best := 0.0
		found := false

		for _, match := range p.Pattern.FindAllStringSubmatch(fullText, -1) {
			clean := strings.TrimSpace(strings.ReplaceAll(match[1], ",", ""))
			value, err := strconv.ParseFloat(clean, 64)
			if err != nil {
				continue
			}
			if value < minAcceptedPrice || value > maxAcceptedPrice {
				continue
			}
			if !found || value < best {
				best = value
				found = true
			}
		}

		if found {
			return domain.PriceExtraction{
				Amount:   fmt.Sprintf("%.2f", best),
				Currency: p.Currency,
			}
		}
	}

	return domain.PriceExtraction{}
}

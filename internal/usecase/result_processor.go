package usecase

import (
	"log"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/stylefinder/backend/internal/domain"
)

// Relevance scoring bonuses
const (
	regionalStoreBonus   = 30 // store is on the market's allowlist
	eurPriceBonus        = 25 // extracted price is in EUR
	otherPriceBonus      = 15 // extracted price in any other currency
	shoppingKeywordBonus = 5  // per shopping keyword found in title+snippet
)

// excludeTerms mark non-commerce pages: forums, blogs, social media, news.
// An item whose domain, title, or snippet contains one of these is dropped.
var excludeTerms = []string{
	"reddit", "forum", "blog", "wiki", "review", "discussion",
	"pinterest", "instagram", "facebook", "twitter", "youtube",
	"news", "article", "guide", "tips", "howto",
}

// commerceIndicators are generic signs a domain or page sells things
var commerceIndicators = []string{
	"shop", "store", "buy", "retail", "fashion", "clothing", "webshop",
}

// purchaseIndicators are signs the page text offers something for sale
var purchaseIndicators = []string{
	"buy", "price", "shop", "store", "sale", "eur", "€",
}

// tldSuffixes are stripped when deriving a readable store name from a domain
var tldSuffixes = []string{".com", ".nl", ".de", ".co.uk"}

// ResultProcessor filters raw search results down to shopping-relevant
// items, enriches them with price, store, and regional information, and
// ranks them.
type ResultProcessor struct {
	profile            MarketProfile
	extractor          *PriceExtractor
	enableDebugLogging bool
}

// NewResultProcessor creates a processor for the given market profile
func NewResultProcessor(profile MarketProfile, extractor *PriceExtractor, enableDebugLogging bool) *ResultProcessor {
	if extractor == nil {
		extractor = NewPriceExtractor(nil)
	}
	return &ResultProcessor{
		profile:            profile,
		extractor:          extractor,
		enableDebugLogging: enableDebugLogging,
	}
}

// Process turns raw provider items into a ranked candidate list.
// Malformed items are skipped individually; an empty input yields an empty
// output, never an error.
func (p *ResultProcessor) Process(items []domain.RawResultItem) []domain.ProductCandidate {
	candidates := make([]domain.ProductCandidate, 0, len(items))

	for _, item := range items {
		candidate, ok := p.processItem(item)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate)
	}

	p.rank(candidates)

	if p.enableDebugLogging {
		log.Printf("[PROCESS] %d raw items in, %d candidates out", len(items), len(candidates))
	}

	return candidates
}

// processItem classifies and enriches a single raw item. The second return
// value is false when the item is malformed or not shopping-relevant.
func (p *ResultProcessor) processItem(item domain.RawResultItem) (domain.ProductCandidate, bool) {
	if item.Link == "" {
		return domain.ProductCandidate{}, false
	}

	title := item.Title
	if title == "" {
		title = "Unknown Product"
	}

	displayLink := strings.ToLower(item.DisplayLink)
	text := strings.ToLower(title + " " + item.Snippet)

	if containsAny(displayLink, excludeTerms) || containsAny(text, excludeTerms) {
		return domain.ProductCandidate{}, false
	}

	isAllowlisted := containsAny(displayLink, p.profile.StoreDomains)
	isCommerce := containsAny(displayLink, commerceIndicators) || containsAny(text, commerceIndicators)
	hasPurchaseSignal := containsAny(text, purchaseIndicators)

	if !isAllowlisted && !isCommerce && !hasPurchaseSignal {
		return domain.ProductCandidate{}, false
	}

	price := p.extractor.Extract(title + " " + item.Snippet)
	isRegional := p.isRegionalStore(displayLink)

	return domain.ProductCandidate{
		Title:           title,
		Store:           storeName(displayLink),
		Price:           price.Amount,
		Currency:        price.Currency,
		URL:             item.Link,
		ImageURL:        item.ImageURL,
		Snippet:         item.Snippet,
		DisplayLink:     displayLink,
		IsRegionalStore: isRegional,
		RelevanceScore:  p.relevanceScore(text, price, isRegional),
	}, true
}

// relevanceScore computes the heuristic relevance of a candidate
func (p *ResultProcessor) relevanceScore(text string, price domain.PriceExtraction, isRegional bool) int {
	score := 0

	if isRegional {
		score += regionalStoreBonus
	}

	if price.Currency == domain.CurrencyEUR {
		score += eurPriceBonus
	} else if price.Found() {
		score += otherPriceBonus
	}

	for _, keyword := range p.profile.ShoppingKeywords {
		if strings.Contains(text, keyword) {
			score += shoppingKeywordBonus
		}
	}

	return score
}

// isRegionalStore checks the display domain against the profile allowlist.
// Matching is on the first label ("zalando" matches zalando.nl and
// zalando.de alike).
func (p *ResultProcessor) isRegionalStore(displayLink string) bool {
	for _, site := range p.profile.StoreDomains {
		label := site
		if idx := strings.Index(site, "."); idx > 0 {
			label = site[:idx]
		}
		if strings.Contains(displayLink, label) {
			return true
		}
	}
	return false
}

// rank sorts candidates in place: regional stores first, then EUR-priced,
// then any-priced, then by relevance, with cheaper items winning ties among
// priced candidates. The sort is stable so provider order breaks final ties.
func (p *ResultProcessor) rank(candidates []domain.ProductCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if a.IsRegionalStore != b.IsRegionalStore {
			return a.IsRegionalStore
		}

		aEur := a.Currency == domain.CurrencyEUR
		bEur := b.Currency == domain.CurrencyEUR
		if aEur != bEur {
			return aEur
		}

		if a.HasPrice() != b.HasPrice() {
			return a.HasPrice()
		}

		if a.RelevanceScore != b.RelevanceScore {
			return a.RelevanceScore > b.RelevanceScore
		}

		if a.HasPrice() && b.HasPrice() {
			av, aerr := strconv.ParseFloat(a.Price, 64)
			bv, berr := strconv.ParseFloat(b.Price, 64)
			if aerr == nil && berr == nil && av != bv {
				return av < bv
			}
		}

		return false
	})
}

// storeName derives a human-readable store name from a display domain,
// e.g. "www.zalando.nl" -> "Zalando".
func storeName(displayLink string) string {
	name := strings.TrimPrefix(displayLink, "www.")
	for _, suffix := range tldSuffixes {
		name = strings.ReplaceAll(name, suffix, "")
	}
	if idx := strings.Index(name, "."); idx > 0 {
		name = name[:idx]
	}
	return titleCase(name)
}

// titleCase uppercases the first letter of each word-like run
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if !prevLetter {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// containsAny reports whether s contains any of the given substrings
func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

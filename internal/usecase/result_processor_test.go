package usecase

import (
	"testing"

	"github.com/stylefinder/backend/internal/domain"
)

func newTestProcessor() *ResultProcessor {
	return NewResultProcessor(EUMarketProfile(), nil, false)
}

func TestProcessEmptyInput(t *testing.T) {
	p := newTestProcessor()

	got := p.Process(nil)
	if got == nil {
		t.Fatal("Process(nil) returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Process(nil) returned %d candidates, want 0", len(got))
	}

	got = p.Process([]domain.RawResultItem{})
	if len(got) != 0 {
		t.Errorf("Process(empty) returned %d candidates, want 0", len(got))
	}
}

func TestProcessExcludesNonCommercePages(t *testing.T) {
	p := newTestProcessor()

	testCases := []struct {
		name string
		item domain.RawResultItem
	}{
		{
			name: "reddit domain",
			item: domain.RawResultItem{
				Title:       "best dress forum thread",
				Link:        "https://www.reddit.com/r/fashion/thread",
				DisplayLink: "www.reddit.com",
				Snippet:     "Buy this dress for €49.99",
			},
		},
		{
			name: "forum in title",
			item: domain.RawResultItem{
				Title:       "fashion forum: where to buy dresses",
				Link:        "https://example-shop.com/thread",
				DisplayLink: "example-shop.com",
				Snippet:     "great deals €20",
			},
		},
		{
			name: "blog in snippet",
			item: domain.RawResultItem{
				Title:       "Red Dress",
				Link:        "https://somesite.com/page",
				DisplayLink: "somesite.com",
				Snippet:     "from my personal blog about shopping",
			},
		},
		{
			name: "pinterest domain",
			item: domain.RawResultItem{
				Title:       "Red Dress inspiration",
				Link:        "https://pinterest.com/pin/1",
				DisplayLink: "pinterest.com",
				Snippet:     "buy similar €30",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Process([]domain.RawResultItem{tc.item})
			if len(got) != 0 {
				t.Errorf("expected item to be excluded, got %+v", got[0])
			}
		})
	}
}

func TestProcessDropsItemsWithoutShoppingSignal(t *testing.T) {
	p := newTestProcessor()

	// Not allowlisted, no commerce indicator, no purchase indicator
	items := []domain.RawResultItem{
		{
			Title:       "Academic paper on textile dyes",
			Link:        "https://university.edu/paper",
			DisplayLink: "university.edu",
			Snippet:     "an analysis of cotton fiber coloring",
		},
	}

	if got := p.Process(items); len(got) != 0 {
		t.Errorf("expected item without shopping signal to be dropped, got %+v", got)
	}
}

func TestProcessSkipsMalformedItems(t *testing.T) {
	p := newTestProcessor()

	items := []domain.RawResultItem{
		{
			// Missing link - skipped
			Title:       "Red Dress €49.99",
			DisplayLink: "www.zalando.nl",
			Snippet:     "buy now",
		},
		{
			// Missing title - kept with placeholder
			Link:        "https://www.zalando.nl/item",
			DisplayLink: "www.zalando.nl",
			Snippet:     "buy this dress for €49.99",
		},
	}

	got := p.Process(items)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Title != "Unknown Product" {
		t.Errorf("expected placeholder title, got %q", got[0].Title)
	}
}

func TestProcessEnrichment(t *testing.T) {
	p := newTestProcessor()

	items := []domain.RawResultItem{
		{
			Title:       "Red Summer Dress",
			Link:        "https://www.zalando.nl/red-summer-dress",
			DisplayLink: "www.zalando.nl",
			Snippet:     "Buy now for €49.99",
			ImageURL:    "https://img.zalando.nl/1.jpg",
		},
	}

	got := p.Process(items)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}

	c := got[0]
	if c.Store != "Zalando" {
		t.Errorf("Store = %q, want %q", c.Store, "Zalando")
	}
	if !c.IsRegionalStore {
		t.Error("expected zalando.nl to be flagged as regional store")
	}
	if c.Price != "49.99" || c.Currency != domain.CurrencyEUR {
		t.Errorf("price = (%q, %q), want (49.99, EUR)", c.Price, c.Currency)
	}
	if c.URL != items[0].Link {
		t.Errorf("URL = %q, want %q", c.URL, items[0].Link)
	}
	if c.ImageURL != items[0].ImageURL {
		t.Errorf("ImageURL = %q, want %q", c.ImageURL, items[0].ImageURL)
	}
	// 30 regional + 25 EUR + 5 each for "buy" and "dress"
	if c.RelevanceScore != 65 {
		t.Errorf("RelevanceScore = %d, want 65", c.RelevanceScore)
	}
}

func TestProcessOrdering(t *testing.T) {
	p := newTestProcessor()

	items := []domain.RawResultItem{
		{
			// Non-regional, no price, commerce indicator in domain
			Title:       "Beautiful Maxi Dress",
			Link:        "https://www.fashionshop.fr/maxi",
			DisplayLink: "www.fashionshop.fr",
			Snippet:     "shop the latest collection",
		},
		{
			// Non-regional, OTHER-currency price
			Title:       "Floral Dress Sale",
			Link:        "https://www.fashionretailer.fr/floral",
			DisplayLink: "www.fashionretailer.fr",
			Snippet:     "Only $120 today",
		},
		{
			// Regional, EUR price
			Title:       "Red Summer Dress",
			Link:        "https://www.zalando.nl/red",
			DisplayLink: "www.zalando.nl",
			Snippet:     "Buy now for €49.99",
		},
	}

	got := p.Process(items)
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}

	if !got[0].IsRegionalStore {
		t.Errorf("first candidate should be the regional store, got %q", got[0].Store)
	}
	if got[1].Currency != domain.CurrencyOther || !got[1].HasPrice() {
		t.Errorf("second candidate should be the priced non-regional item, got %+v", got[1])
	}
	if got[2].HasPrice() {
		t.Errorf("last candidate should be unpriced, got %+v", got[2])
	}

	// Invariant: every regional candidate precedes every non-regional one
	seenNonRegional := false
	for _, c := range got {
		if !c.IsRegionalStore {
			seenNonRegional = true
		} else if seenNonRegional {
			t.Fatal("regional candidate found after non-regional candidate")
		}
	}
}

func TestProcessPriceAscendingAmongPriced(t *testing.T) {
	p := newTestProcessor()

	// Two regional items with EUR prices and identical relevance signals -
	// cheaper one must come first.
	items := []domain.RawResultItem{
		{
			Title:       "Red Summer Dress",
			Link:        "https://www.zalando.nl/a",
			DisplayLink: "www.zalando.nl",
			Snippet:     "Buy now for €89.00",
		},
		{
			Title:       "Red Summer Dress",
			Link:        "https://www.zalando.nl/b",
			DisplayLink: "www.zalando.nl",
			Snippet:     "Buy now for €49.99",
		},
	}

	got := p.Process(items)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Price != "49.99" || got[1].Price != "89.00" {
		t.Errorf("priced candidates not sorted ascending: got %q then %q", got[0].Price, got[1].Price)
	}
}

func TestStoreName(t *testing.T) {
	testCases := []struct {
		displayLink string
		want        string
	}{
		{"www.zalando.nl", "Zalando"},
		{"www.wehkamp.nl", "Wehkamp"},
		{"shop.mango.com", "Shop"},
		{"www.asos.com", "Asos"},
		{"bol.com", "Bol"},
		{"www.amazon.co.uk", "Amazon"},
	}

	for _, tc := range testCases {
		if got := storeName(tc.displayLink); got != tc.want {
			t.Errorf("storeName(%q) = %q, want %q", tc.displayLink, got, tc.want)
		}
	}
}

func TestGenericProfileRegionalFlag(t *testing.T) {
	p := NewResultProcessor(GenericMarketProfile(), nil, false)

	items := []domain.RawResultItem{
		{
			Title:       "Denim Jacket",
			Link:        "https://www.nordstrom.com/jacket",
			DisplayLink: "www.nordstrom.com",
			Snippet:     "buy for $79.99",
		},
	}

	got := p.Process(items)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if !got[0].IsRegionalStore {
		t.Error("nordstrom.com should match the generic allowlist")
	}
	if got[0].Currency != domain.CurrencyOther {
		t.Errorf("Currency = %q, want OTHER", got[0].Currency)
	}
}

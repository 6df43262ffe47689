package cse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/stylefinder/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	// providerMaxResults is the hard per-call cap of the Custom Search API
	providerMaxResults = 10

	// imageFallbackThreshold: below this many text results, one image-mode
	// search is issued and up to imageFallbackMax of its items appended.
	imageFallbackThreshold = 5
	imageFallbackMax       = 5

	defaultTimeout = 15 * time.Second
)

// Options carries market-dependent provider parameters.
type Options struct {
	// QuerySuffix is appended to every outgoing query to bias toward shops.
	QuerySuffix string
	// GeoLocation, CountryRestrict and LanguageRestrict map to the
	// provider's gl, cr and lr parameters. Empty values are omitted.
	GeoLocation      string
	CountryRestrict  string
	LanguageRestrict string
	// Timeout overrides the default request timeout when positive.
	Timeout time.Duration
}

// Client handles communication with the Google Custom Search API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	engineID    string
	baseURL     string
	options     Options
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new search API client
func NewClient(apiKey, engineID, baseURL string, options Options) *Client {
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	// The provider tolerates roughly one query per second sustained;
	// a small burst covers the text+image call pair.
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		engineID:    engineID,
		baseURL:     baseURL,
		options:     options,
		rateLimiter: limiter,
	}
}

// SetDebug enables request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Configured reports whether both credentials are present
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.engineID != ""
}

// Search issues one text-mode search. When it returns fewer than five items,
// a single image-mode search with the same query is issued and up to five of
// its items are appended. There is no retry beyond that fallback.
func (c *Client) Search(ctx context.Context, query string, numResults int) ([]domain.RawResultItem, error) {
	if !c.Configured() {
		return nil, domain.ErrNotConfigured
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	items, err := c.doSearch(ctx, query, numResults, false)
	if err != nil {
		return nil, err
	}

	if c.debug {
		log.Printf("[CSE] Text search returned %d items for query: %q", len(items), query)
	}

	if len(items) < imageFallbackThreshold {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		imageItems, imgErr := c.doSearch(ctx, query, numResults, true)
		if imgErr != nil {
			// The text results already in hand are still usable
			log.Printf("[CSE] Image fallback failed: %v", imgErr)
		} else {
			if len(imageItems) > imageFallbackMax {
				imageItems = imageItems[:imageFallbackMax]
			}
			items = append(items, imageItems...)
			if c.debug {
				log.Printf("[CSE] Image fallback added %d items", len(imageItems))
			}
		}
	}

	return items, nil
}

// doSearch executes a single provider request in text or image mode
func (c *Client) doSearch(ctx context.Context, query string, numResults int, imageMode bool) ([]domain.RawResultItem, error) {
	if numResults > providerMaxResults {
		numResults = providerMaxResults
	}
	if numResults <= 0 {
		numResults = providerMaxResults
	}

	fullQuery := query
	if c.options.QuerySuffix != "" {
		fullQuery = query + " " + c.options.QuerySuffix
	}

	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("cx", c.engineID)
	params.Add("q", fullQuery)
	params.Add("num", strconv.Itoa(numResults))
	params.Add("safe", "active")
	params.Add("hl", "en")
	if c.options.GeoLocation != "" {
		params.Add("gl", c.options.GeoLocation)
	}
	if c.options.CountryRestrict != "" {
		params.Add("cr", c.options.CountryRestrict)
	}
	if c.options.LanguageRestrict != "" {
		params.Add("lr", c.options.LanguageRestrict)
	}
	if imageMode {
		params.Add("searchType", "image")
		params.Add("imgType", "photo")
		params.Add("imgSize", "medium")
	}

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "StyleFinder/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrSearchUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrSearchUnavailable, resp.StatusCode)
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return mapItems(searchResp.Items), nil
}

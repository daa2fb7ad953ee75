// Package ebay extracts observed sale prices from eBay's sold-listings
// search results. The page has no structured contract; extraction is a
// best-effort scan for dollar-formatted amounts.
package ebay

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const defaultBaseURL = "https://www.ebay.com/sch/i.html"

// userAgent mimics a desktop browser; the default Go user agent gets the
// request blocked outright.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120 Safari/537.36"

var priceRe = regexp.MustCompile(`\$([\d,]+\.\d{2})`)

// Amounts outside this band are shipping lines, fees, or junk matches.
const (
	minPlausiblePrice = 5
	maxPlausiblePrice = 100000
)

// StatusError reports a non-success upstream HTTP status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ebay responded with status %d", e.StatusCode)
}

// Client fetches sold-listings pages. A single GET per call, redirects
// followed, no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Client against the real eBay search endpoint.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
	}
}

// SearchURL builds the completed/sold search URL for a phrase.
func (c *Client) SearchURL(query string) string {
	return c.baseURL + "?_nkw=" + url.QueryEscape(query) + "&LH_Sold=1&LH_Complete=1"
}

// SoldPrices fetches the results page for a phrase and returns the
// plausible sale prices found on it, ascending, along with the URL that was
// fetched. A non-2xx upstream status is returned as *StatusError.
func (c *Client) SoldPrices(ctx context.Context, query string) ([]float64, string, error) {
	searchURL := c.SearchURL(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, searchURL, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, searchURL, fmt.Errorf("fetching sold listings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, searchURL, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, searchURL, fmt.Errorf("reading response body: %w", err)
	}

	return ExtractPrices(string(body)), searchURL, nil
}

// ExtractPrices scans markup for $-formatted amounts, drops non-finite and
// implausible values, and returns the rest sorted ascending.
func ExtractPrices(html string) []float64 {
	matches := priceRe.FindAllStringSubmatch(html, -1)

	prices := []float64{}
	for _, m := range matches {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < minPlausiblePrice || v > maxPlausiblePrice {
			continue
		}
		prices = append(prices, v)
	}

	sort.Float64s(prices)
	return prices
}

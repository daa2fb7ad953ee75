package metals

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/coinclub/coinclub-api/internal/config"
)

const defaultBaseURL = "https://api.gold-api.com"

// quoteTTL matches the 60-second revalidation window the site's ticker
// expects; within it, repeated page loads reuse the last upstream answer.
const quoteTTL = 60 * time.Second

// Quote is the per-symbol payload from the spot-price API, passed through
// to the ticker as-is.
type Quote struct {
	Name      string  `json:"name"`
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	UpdatedAt string  `json:"updatedAt"`
}

// quoteCache is a small time-bounded cache keyed by symbol. It is the only
// shared state in the API and exists purely to keep the ticker from hitting
// the upstream on every page load.
type quoteCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	quote     Quote
	fetchedAt time.Time
}

func newQuoteCache(ttl time.Duration) *quoteCache {
	return &quoteCache{ttl: ttl, entries: map[string]cacheEntry{}}
}

func (c *quoteCache) get(symbol string) (Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[symbol]
	if !ok || time.Since(entry.fetchedAt) > c.ttl {
		return Quote{}, false
	}
	return entry.quote, true
}

func (c *quoteCache) put(symbol string, q Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[symbol] = cacheEntry{quote: q, fetchedAt: time.Now()}
}

// MetalsService serves the gold/silver spot-price ticker.
type MetalsService struct {
	cfg        *config.Config
	httpClient *http.Client
	baseURL    string
	cache      *quoteCache
}

// NewMetalsService creates a MetalsService against the real spot-price API.
func NewMetalsService(cfg *config.Config) *MetalsService {
	return &MetalsService{
		cfg:        cfg,
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
		cache:      newQuoteCache(quoteTTL),
	}
}

// GetMetals returns the combined gold and silver quotes.
func (s *MetalsService) GetMetals(c fiber.Ctx) error {
	gold, err := s.quote("XAU")
	if err != nil {
		log.Printf("fetching gold quote: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load metals ticker"})
	}

	silver, err := s.quote("XAG")
	if err != nil {
		log.Printf("fetching silver quote: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load metals ticker"})
	}

	return c.JSON(fiber.Map{
		"gold":      gold,
		"silver":    silver,
		"fetchedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

// quote returns the cached quote for a symbol, fetching when stale.
func (s *MetalsService) quote(symbol string) (Quote, error) {
	if q, ok := s.cache.get(symbol); ok {
		return q, nil
	}

	resp, err := s.httpClient.Get(s.baseURL + "/price/" + symbol)
	if err != nil {
		return Quote{}, fmt.Errorf("fetching %s price: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("fetching %s price: status %d", symbol, resp.StatusCode)
	}

	var q Quote
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return Quote{}, fmt.Errorf("decoding %s price: %w", symbol, err)
	}

	s.cache.put(symbol, q)
	return q, nil
}

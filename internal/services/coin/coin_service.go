package coin

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/coinclub/coinclub-api/internal/config"
	"github.com/coinclub/coinclub-api/internal/pkg/ebay"
	"github.com/coinclub/coinclub-api/internal/pkg/stats"
)

// SoldPriceSource turns a search phrase into observed sale prices. The
// statistics below do not care how the prices were obtained, so the scraper
// can be swapped for a structured API without touching this service.
type SoldPriceSource interface {
	SoldPrices(ctx context.Context, query string) ([]float64, string, error)
}

// CoinService handles the coin valuation endpoints.
type CoinService struct {
	cfg    *config.Config
	source SoldPriceSource
}

// NewCoinService creates a CoinService backed by the eBay scraper.
func NewCoinService(cfg *config.Config) *CoinService {
	return &CoinService{cfg: cfg, source: ebay.NewClient()}
}

// NewCoinServiceWithSource creates a CoinService with a custom price source.
func NewCoinServiceWithSource(cfg *config.Config, source SoldPriceSource) *CoinService {
	return &CoinService{cfg: cfg, source: source}
}

// CompsHandler computes market comparables for a free-text phrase: one
// upstream fetch, no retries, raw and trimmed statistics over whatever
// plausible sale prices the page yields.
func (s *CoinService) CompsHandler(c fiber.Ctx) error {
	var body struct {
		Query string `json:"query"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing query"})
	}

	query := strings.TrimSpace(body.Query)
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing query"})
	}

	prices, searchURL, err := s.source.SoldPrices(context.Background(), query)
	if err != nil {
		var statusErr *ebay.StatusError
		if errors.As(err, &statusErr) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":  "eBay fetch failed",
				"status": statusErr.StatusCode,
			})
		}
		log.Printf("fetching comps for %q: %v", query, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	// Zero extracted prices means a blocked or empty page; that is a failure,
	// not a zero-valued result.
	if len(prices) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No prices found (blocked or no comps)"})
	}

	raw := stats.Summarize(prices)
	trimmed := stats.Summarize(stats.Trim(prices, 0.15))

	return c.JSON(fiber.Map{
		"query":   query,
		"url":     searchURL,
		"count":   raw.Count,
		"median":  raw.Median,
		"average": raw.Average,
		"low":     raw.Low,
		"high":    raw.High,
		"trimmed": trimmed,
	})
}

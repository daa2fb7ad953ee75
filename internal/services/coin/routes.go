package coin

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes registers the coin valuation endpoints. Both are public; the
// comps scrape is rate-limited by eBay itself, not by us.
func (s *CoinService) SetupRoutes(app *fiber.App) {
	app.Post("/api/coin/comps", s.CompsHandler)
	app.Post("/api/coin/explain", s.ExplainHandler)
}

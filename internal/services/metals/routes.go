package metals

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes registers the public spot-price ticker endpoint.
func (s *MetalsService) SetupRoutes(app *fiber.App) {
	app.Get("/api/metals", s.GetMetals)
}

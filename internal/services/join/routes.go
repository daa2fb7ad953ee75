package join

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes registers the public join form endpoint.
func (s *JoinService) SetupRoutes(app *fiber.App) {
	app.Post("/api/join", s.JoinHandler)
}

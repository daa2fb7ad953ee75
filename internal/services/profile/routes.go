package profile

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes registers the account endpoints. All of them require a session.
func (s *ProfileService) SetupRoutes(app *fiber.App, requireAuth fiber.Handler) {
	api := app.Group("/api/profile")
	api.Use(requireAuth)

	api.Get("/", s.GetProfile)
	api.Put("/", s.UpdateProfile)
	api.Get("/listings", s.GetMyListings)
}

package admin

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes registers the moderation console API behind the auth and
// admin gates.
func (s *AdminService) SetupRoutes(app *fiber.App, requireAuth, requireAdmin fiber.Handler) {
	api := app.Group("/api/admin")
	api.Use(requireAuth)
	api.Use(requireAdmin)

	api.Get("/classifieds", s.ListClassifieds)
	api.Put("/classifieds/:id/status", s.SetClassifiedStatus)
	api.Delete("/classifieds/:id", s.DeleteClassified)

	api.Get("/join-requests", s.ListJoinRequests)
	api.Put("/join-requests/:id", s.ReviewJoinRequest)
}

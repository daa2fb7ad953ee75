package cloudinary

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes registers the signed-upload endpoint behind auth.
func (s *CloudinaryService) SetupRoutes(app *fiber.App, requireAuth fiber.Handler) {
	api := app.Group("/api/uploads")
	api.Use(requireAuth)

	api.Get("/params", s.GenerateUploadParams)
}

package classified

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes registers the classifieds API. List and single-item reads are
// public; writes require a session.
func (s *ClassifiedService) SetupRoutes(app *fiber.App, requireAuth fiber.Handler) {
	app.Get("/api/classifieds", s.ListClassifieds)
	app.Get("/api/classifieds/:id", s.GetClassified)

	api := app.Group("/api/classifieds")
	api.Use(requireAuth)

	api.Post("/", s.CreateClassified)
	api.Put("/:id", s.UpdateClassified)
	api.Delete("/:id", s.DeleteClassified)
}

package auth

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes registers the public auth endpoints.
func (s *AuthService) SetupRoutes(app *fiber.App) {
	app.Post("/api/auth/register", s.RegisterHandler)
	app.Post("/api/auth/login", s.LoginHandler)
}

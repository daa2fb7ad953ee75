package middleware

import (
	"github.com/gofiber/fiber/v3"
)

// RoleLookup resolves the stored role for a user id.
type RoleLookup func(userID string) (string, error)

// AdminMiddleware gates a route group to admin accounts. It runs after
// AuthMiddleware and re-reads the role from the profiles table on every
// request, so a revoked admin loses access without waiting for token expiry.
func AdminMiddleware(lookup RoleLookup) fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, _ := c.Locals("userID").(string)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization",
			})
		}

		role, err := lookup(userID)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied",
			})
		}

		if role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied",
			})
		}

		return c.Next()
	}
}

package join

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/coinclub/coinclub-api/internal/config"
	"github.com/coinclub/coinclub-api/internal/db"
)

// JoinService handles membership applications from the public join form.
type JoinService struct {
	cfg *config.Config
}

// NewJoinService creates a new JoinService.
func NewJoinService(cfg *config.Config) *JoinService {
	return &JoinService{cfg: cfg}
}

// JoinHandler stores a pending membership application.
func (s *JoinService) JoinHandler(c fiber.Ctx) error {
	var body struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Message  string `json:"message"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	fullName := strings.TrimSpace(body.FullName)
	email := strings.TrimSpace(body.Email)
	if fullName == "" || email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Full name and email are required."})
	}

	var message *string
	if m := strings.TrimSpace(body.Message); m != "" {
		message = &m
	}

	if err := db.InsertJoinRequest(fullName, email, message); err != nil {
		log.Printf("storing join request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit request"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

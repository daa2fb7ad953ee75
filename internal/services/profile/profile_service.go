package profile

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/coinclub/coinclub-api/internal/config"
	"github.com/coinclub/coinclub-api/internal/db"
)

// ProfileService handles the member account page API.
type ProfileService struct {
	cfg   *config.Config
	store *db.ClassifiedStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(cfg *config.Config, store *db.ClassifiedStore) *ProfileService {
	return &ProfileService{cfg: cfg, store: store}
}

// GetProfile returns the caller's profile.
func (s *ProfileService) GetProfile(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	p, err := db.GetProfile(userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		log.Printf("loading profile %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
	}

	return c.JSON(p)
}

// UpdateProfile upserts the caller's editable profile fields.
func (s *ProfileService) UpdateProfile(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var body struct {
		FullName         *string `json:"full_name"`
		Phone            *string `json:"phone"`
		Location         *string `json:"location"`
		PreferredContact string  `json:"preferred_contact"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	preferred := body.PreferredContact
	if preferred != "phone" {
		preferred = "email"
	}

	p, err := db.UpsertProfile(userID,
		trimPtr(body.FullName), trimPtr(body.Phone), trimPtr(body.Location), preferred)
	if err != nil {
		log.Printf("saving profile %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save profile"})
	}

	return c.JSON(p)
}

// GetMyListings returns the caller's classifieds, newest first.
func (s *ProfileService) GetMyListings(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	listings, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("loading listings for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load listings"})
	}

	return c.JSON(listings)
}

func callerID(c fiber.Ctx) (uuid.UUID, error) {
	userID, _ := c.Locals("userID").(string)
	return uuid.Parse(userID)
}

// trimPtr trims a nullable field, collapsing blank values to NULL.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

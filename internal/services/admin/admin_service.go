package admin

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/coinclub/coinclub-api/internal/config"
	"github.com/coinclub/coinclub-api/internal/db"
	"github.com/coinclub/coinclub-api/internal/models"
)

// Store is the slice of the classifieds store the console needs.
type Store interface {
	List(ctx context.Context, filter models.ClassifiedFilter) ([]models.Classified, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Classified, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Classified, error)
}

// AdminService backs the moderation console. Every route here sits behind
// the admin role gate; ownership checks do not apply.
type AdminService struct {
	cfg   *config.Config
	store Store
}

// NewAdminService creates a new AdminService.
func NewAdminService(cfg *config.Config, store Store) *AdminService {
	return &AdminService{cfg: cfg, store: store}
}

// ListClassifieds returns all ads for the console, with the same filter
// vocabulary as the public list.
func (s *AdminService) ListClassifieds(c fiber.Ctx) error {
	filter := models.ClassifiedFilter{
		Query:    strings.TrimSpace(c.Query("q")),
		Category: strings.TrimSpace(c.Query("category")),
		Status:   strings.TrimSpace(c.Query("status")),
		Sort:     strings.TrimSpace(c.Query("sort")),
	}
	if filter.Sort == "" {
		filter.Sort = "newest"
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	classifieds, err := s.store.List(ctx, filter)
	if err != nil {
		log.Printf("admin listing classifieds: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load classifieds"})
	}

	return c.JSON(classifieds)
}

// SetClassifiedStatus moves an ad to a new moderation status.
func (s *AdminService) SetClassifiedStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing ID"})
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	status := strings.TrimSpace(body.Status)
	if status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status is required."})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	updated, err := s.store.Update(ctx, id, map[string]any{"status": status})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		log.Printf("admin updating status of %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update listing"})
	}

	return c.JSON(updated)
}

// DeleteClassified removes any ad, regardless of owner.
func (s *AdminService) DeleteClassified(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing ID"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	record, err := s.store.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		log.Printf("admin deleting %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete listing"})
	}

	return c.JSON(fiber.Map{"deleted": true, "record": record})
}

// ListJoinRequests returns membership applications for review.
func (s *AdminService) ListJoinRequests(c fiber.Ctx) error {
	requests, err := db.ListJoinRequests(strings.TrimSpace(c.Query("status")))
	if err != nil {
		log.Printf("admin listing join requests: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load join requests"})
	}

	return c.JSON(requests)
}

// ReviewJoinRequest approves or rejects an application.
func (s *AdminService) ReviewJoinRequest(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	status := strings.TrimSpace(body.Status)
	if status != "approved" && status != "rejected" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status must be approved or rejected."})
	}

	request, err := db.UpdateJoinRequestStatus(id, status)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		log.Printf("admin reviewing join request %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update request"})
	}

	return c.JSON(request)
}

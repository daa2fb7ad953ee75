package classified

import (
	"context"
	"errors"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/coinclub/coinclub-api/internal/config"
	"github.com/coinclub/coinclub-api/internal/db"
	"github.com/coinclub/coinclub-api/internal/models"
)

// Store is the record store the classified handlers run against.
type Store interface {
	List(ctx context.Context, f models.ClassifiedFilter) ([]models.Classified, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Classified, error)
	Insert(ctx context.Context, c *models.Classified) (*models.Classified, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Classified, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Classified, error)
}

// ClassifiedService handles the member classifieds API.
type ClassifiedService struct {
	cfg   *config.Config
	store Store
}

// NewClassifiedService creates a new ClassifiedService.
func NewClassifiedService(cfg *config.Config, store Store) *ClassifiedService {
	return &ClassifiedService{cfg: cfg, store: store}
}

// ListClassifieds handles the public list/search endpoint. Malformed price
// bounds are dropped, not rejected, so a broken filter form still returns
// results.
func (s *ClassifiedService) ListClassifieds(c fiber.Ctx) error {
	filter := models.ClassifiedFilter{
		Query:    strings.TrimSpace(c.Query("q")),
		Category: strings.TrimSpace(c.Query("category")),
		Status:   strings.TrimSpace(c.Query("status")),
		Sort:     strings.TrimSpace(c.Query("sort")),
	}
	if filter.Sort == "" {
		filter.Sort = "newest"
	}

	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			filter.MaxPrice = &v
		}
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	classifieds, err := s.store.List(ctx, filter)
	if err != nil {
		log.Printf("listing classifieds: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load classifieds"})
	}

	return c.JSON(classifieds)
}

// GetClassified returns a single ad by id.
func (s *ClassifiedService) GetClassified(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing ID"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	record, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		log.Printf("getting classified %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load listing"})
	}

	return c.JSON(record)
}

// CreateClassified validates and stores a new ad owned by the caller.
func (s *ClassifiedService) CreateClassified(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	var body struct {
		Title        string  `json:"title"`
		Description  string  `json:"description"`
		Price        any     `json:"price"`
		Category     *string `json:"category"`
		Status       *string `json:"status"`
		ContactEmail *string `json:"contact_email"`
		PhotoURL     *string `json:"photo_url"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	title := strings.TrimSpace(body.Title)
	description := strings.TrimSpace(body.Description)
	if title == "" || description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title and description are required."})
	}

	price := 0.0
	if body.Price != nil {
		p, ok := parsePrice(body.Price)
		if !ok || p < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Price must be a number >= 0."})
		}
		price = p
	}

	category := "General"
	if body.Category != nil {
		category = *body.Category
	}
	status := "active"
	if body.Status != nil {
		status = *body.Status
	}

	record := &models.Classified{
		UserID:       userID,
		Title:        title,
		Description:  description,
		Price:        price,
		Category:     category,
		Status:       status,
		ContactEmail: emptyToNil(body.ContactEmail),
		PhotoURL:     emptyToNil(body.PhotoURL),
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	stored, err := s.store.Insert(ctx, record)
	if err != nil {
		log.Printf("creating classified: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create listing"})
	}

	return c.Status(fiber.StatusCreated).JSON(stored)
}

// UpdateClassified applies a partial update to an ad the caller owns. Each
// present field is validated with the same rules as create.
func (s *ClassifiedService) UpdateClassified(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing ID"})
	}

	var body map[string]any
	if err := c.Bind().Body(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	fields := map[string]any{}

	if v, present := body["title"]; present {
		title, ok := v.(string)
		if !ok || strings.TrimSpace(title) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title cannot be empty."})
		}
		fields["title"] = strings.TrimSpace(title)
	}

	if v, present := body["description"]; present {
		description, ok := v.(string)
		if !ok || strings.TrimSpace(description) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Description cannot be empty."})
		}
		fields["description"] = strings.TrimSpace(description)
	}

	if v, present := body["price"]; present {
		p, ok := parsePrice(v)
		if !ok || p < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Price must be a number >= 0."})
		}
		fields["price"] = p
	}

	if v, present := body["category"]; present {
		fields["category"] = stringValue(v)
	}
	if v, present := body["status"]; present {
		fields["status"] = stringValue(v)
	}
	if v, present := body["contact_email"]; present {
		fields["contact_email"] = nullableString(v)
	}
	if v, present := body["photo_url"]; present {
		fields["photo_url"] = nullableString(v)
	}

	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update."})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		log.Printf("loading classified %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load listing"})
	}
	if existing.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to edit this listing"})
	}

	updated, err := s.store.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		log.Printf("updating classified %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update listing"})
	}

	return c.JSON(updated)
}

// DeleteClassified removes an ad the caller owns and returns its prior state.
func (s *ClassifiedService) DeleteClassified(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing ID"})
	}

	ctx, cancel := db.GetContext()
	defer cancel()

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		log.Printf("loading classified %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load listing"})
	}
	if existing.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to delete this listing"})
	}

	record, err := s.store.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		log.Printf("deleting classified %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete listing"})
	}

	return c.JSON(fiber.Map{"deleted": true, "record": record})
}

// callerID reads the authenticated user id set by the auth middleware.
func callerID(c fiber.Ctx) (uuid.UUID, error) {
	userID, _ := c.Locals("userID").(string)
	return uuid.Parse(userID)
}

// parsePrice accepts the price however the client sent it: a JSON number or
// a numeric string. An empty string parses as zero, matching how the web
// form submits an untouched price field.
func parsePrice(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// stringValue renders a free-typed JSON value as the stored text.
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// nullableString maps blank or null JSON values to SQL NULL.
func nullableString(v any) *string {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

// emptyToNil collapses a present-but-blank optional field to NULL.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

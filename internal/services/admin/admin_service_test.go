package admin

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/coinclub/coinclub-api/internal/config"
	"github.com/coinclub/coinclub-api/internal/db"
	"github.com/coinclub/coinclub-api/internal/models"
)

type fakeStore struct {
	lastFilter  *models.ClassifiedFilter
	lastUpdate  map[string]any
	updateCalls int
}

func (f *fakeStore) List(_ context.Context, filter models.ClassifiedFilter) ([]models.Classified, error) {
	f.lastFilter = &filter
	return []models.Classified{}, nil
}

func (f *fakeStore) Update(_ context.Context, id uuid.UUID, fields map[string]any) (*models.Classified, error) {
	f.updateCalls++
	f.lastUpdate = fields
	return nil, db.ErrNotFound
}

func (f *fakeStore) Delete(_ context.Context, id uuid.UUID) (*models.Classified, error) {
	return nil, db.ErrNotFound
}

func passThrough(c fiber.Ctx) error { return c.Next() }

func newConsoleApp(store *fakeStore) *fiber.App {
	app := fiber.New()
	svc := NewAdminService(&config.Config{}, store)
	svc.SetupRoutes(app, passThrough, passThrough)
	return app
}

func TestListClassifieds_DefaultSortIsNewest(t *testing.T) {
	store := &fakeStore{}
	app := newConsoleApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/classifieds", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if store.lastFilter == nil {
		t.Fatal("store.List was not called")
	}
	if store.lastFilter.Sort != "newest" {
		t.Fatalf("Sort = %q, want newest", store.lastFilter.Sort)
	}
}

func TestListClassifieds_PassesExplicitFilter(t *testing.T) {
	store := &fakeStore{}
	app := newConsoleApp(store)

	req := httptest.NewRequest("GET", "/api/admin/classifieds?q=morgan&status=hidden&sort=price_asc", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	f := store.lastFilter
	if f == nil {
		t.Fatal("store.List was not called")
	}
	if f.Query != "morgan" || f.Status != "hidden" || f.Sort != "price_asc" {
		t.Fatalf("filter = %+v", f)
	}
}

func TestSetClassifiedStatus_RequiresStatus(t *testing.T) {
	store := &fakeStore{}
	app := newConsoleApp(store)

	id := uuid.New()
	req := httptest.NewRequest("PUT", "/api/admin/classifieds/"+id.String()+"/status", strings.NewReader(`{"status":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if store.updateCalls != 0 {
		t.Fatalf("store.Update ran %d times on a rejected body", store.updateCalls)
	}
}

func TestSetClassifiedStatus_UnknownListing(t *testing.T) {
	store := &fakeStore{}
	app := newConsoleApp(store)

	id := uuid.New()
	req := httptest.NewRequest("PUT", "/api/admin/classifieds/"+id.String()+"/status", strings.NewReader(`{"status":"hidden"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if store.lastUpdate == nil || store.lastUpdate["status"] != "hidden" {
		t.Fatalf("update fields = %v, want status=hidden", store.lastUpdate)
	}
}

func TestReviewJoinRequest_RejectsUnknownStatus(t *testing.T) {
	app := newConsoleApp(&fakeStore{})

	for _, status := range []string{"", "pending", "maybe"} {
		id := uuid.New()
		req := httptest.NewRequest("PUT", "/api/admin/join-requests/"+id.String(), strings.NewReader(`{"status":"`+status+`"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("status %q: request failed: %v", status, err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("status %q: got %d, want 400", status, resp.StatusCode)
		}
	}
}

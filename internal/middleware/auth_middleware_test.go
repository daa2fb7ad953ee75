package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/coinclub/coinclub-api/internal/utils"
)

func newAuthApp(jwtService *utils.JWTService) *fiber.App {
	app := fiber.New()
	app.Use(AuthMiddleware(jwtService))
	app.Get("/me", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})
	return app
}

func TestAuthMiddleware_AcceptsValidToken(t *testing.T) {
	jwtService := utils.NewJWTService("test-secret")
	userID := uuid.New()
	token, err := jwtService.GenerateToken(userID)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	app := newAuthApp(jwtService)
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("decoding body %q: %v", data, err)
	}
	if body["user_id"] != userID.String() {
		t.Fatalf("user_id = %v, want %s", body["user_id"], userID)
	}
}

func TestAuthMiddleware_RejectsBadHeaders(t *testing.T) {
	jwtService := utils.NewJWTService("test-secret")

	otherService := utils.NewJWTService("other-secret")
	foreignToken, err := otherService.GenerateToken(uuid.New())
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc123"},
		{"no token", "Bearer"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong signing secret", "Bearer " + foreignToken},
	}

	app := newAuthApp(jwtService)
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/me", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request failed: %v", tc.name, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", tc.name, resp.StatusCode)
		}
	}
}

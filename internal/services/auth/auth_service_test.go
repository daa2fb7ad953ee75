package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/coinclub/coinclub-api/internal/config"
)

func newAuthApp() *fiber.App {
	app := fiber.New()
	svc := NewAuthService(&config.Config{JWTSecret: "test-secret"})
	svc.SetupRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding body %q: %v", data, err)
	}
	return resp.StatusCode, decoded
}

// Validation runs before any account lookup, so these paths need no
// database behind the handlers.
func TestRegisterHandler_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"empty email", `{"email":"","password":"longenough"}`, "A valid email is required."},
		{"whitespace email", `{"email":"   ","password":"longenough"}`, "A valid email is required."},
		{"email without at sign", `{"email":"not-an-email","password":"longenough"}`, "A valid email is required."},
		{"short password", `{"email":"kim@example.com","password":"short"}`, "Password must be at least 8 characters."},
		{"missing password", `{"email":"kim@example.com"}`, "Password must be at least 8 characters."},
	}

	app := newAuthApp()
	for _, tc := range cases {
		status, body := postJSON(t, app, "/api/auth/register", tc.body)
		if status != fiber.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tc.name, status)
		}
		if body["error"] != tc.wantErr {
			t.Fatalf("%s: error = %q, want %q", tc.name, body["error"], tc.wantErr)
		}
		if _, ok := body["token"]; ok {
			t.Fatalf("%s: rejection must not issue a token", tc.name)
		}
	}
}

func TestLoginHandler_RejectsMissingCredentials(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty email", `{"email":"","password":"secret123"}`},
		{"empty password", `{"email":"kim@example.com","password":""}`},
		{"both missing", `{}`},
	}

	app := newAuthApp()
	for _, tc := range cases {
		status, body := postJSON(t, app, "/api/auth/login", tc.body)
		if status != fiber.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tc.name, status)
		}
		if body["error"] != "Email and password are required." {
			t.Fatalf("%s: error = %q", tc.name, body["error"])
		}
	}
}

func TestAuthHandlers_RejectMalformedBody(t *testing.T) {
	app := newAuthApp()
	for _, path := range []string{"/api/auth/register", "/api/auth/login"} {
		status, body := postJSON(t, app, path, `{"email":`)
		if status != fiber.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", path, status)
		}
		if body["error"] != "Invalid request body" {
			t.Fatalf("%s: error = %q", path, body["error"])
		}
	}
}

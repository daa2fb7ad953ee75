package join

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/coinclub/coinclub-api/internal/config"
)

func newJoinApp() *fiber.App {
	app := fiber.New()
	svc := NewJoinService(&config.Config{})
	svc.SetupRoutes(app)
	return app
}

func decodeBody(t *testing.T, resp io.Reader, v any) {
	t.Helper()
	data, err := io.ReadAll(resp)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decoding response %q: %v", data, err)
	}
}

func TestJoinHandler_RejectsBlankNameOrEmail(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"kim@example.com"}`},
		{"missing email", `{"full_name":"Kim Vance"}`},
		{"whitespace name", `{"full_name":"   ","email":"kim@example.com"}`},
		{"whitespace email", `{"full_name":"Kim Vance","email":"  "}`},
		{"both empty", `{}`},
	}

	app := newJoinApp()
	for _, tc := range cases {
		req := httptest.NewRequest("POST", "/api/join", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request failed: %v", tc.name, err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tc.name, resp.StatusCode)
		}

		var body map[string]any
		decodeBody(t, resp.Body, &body)
		if body["error"] != "Full name and email are required." {
			t.Fatalf("%s: error = %q", tc.name, body["error"])
		}
	}
}

func TestJoinHandler_RejectsMalformedBody(t *testing.T) {
	app := newJoinApp()

	req := httptest.NewRequest("POST", "/api/join", strings.NewReader(`{"full_name":`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body map[string]any
	decodeBody(t, resp.Body, &body)
	if body["error"] != "Invalid request body" {
		t.Fatalf("error = %q", body["error"])
	}
}

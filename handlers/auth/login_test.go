package auth

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// The handler is built without a database behind it: any request that reaches
// the store lookup would panic, so these tests double as proof that the
// cheap rejections run first.
func loginTestApp() *fiber.App {
	handler := NewAuthHandler(nil, nil, nil)
	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestLoginRejectsMalformedUsernameBeforeLookup(t *testing.T) {
	app := loginTestApp()

	usernames := []string{
		"has spaces",
		"ab",
		"emoji🙂",
		strings.Repeat("x", 31),
	}

	for _, username := range usernames {
		body := fmt.Sprintf(`{"username": %q, "password": "whatever123"}`, username)
		resp := postLogin(t, app, body)

		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("username %q: status = %d, want 401", username, resp.StatusCode)
		}

		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		var parsed map[string]string
		if err := json.Unmarshal(raw, &parsed); err != nil {
			t.Fatalf("username %q: invalid JSON body %q: %v", username, raw, err)
		}
		if parsed["message"] != "Invalid username or password" {
			t.Errorf("username %q: message = %q, want the generic login failure", username, parsed["message"])
		}
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	app := loginTestApp()

	bodies := []string{
		`{"username": "", "password": "whatever123"}`,
		`{"username": "admin", "password": ""}`,
		`{}`,
	}

	for _, body := range bodies {
		resp := postLogin(t, app, body)
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, resp.StatusCode)
		}
	}
}

package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/techspire-labs/academy-api/model"
)

func TestGetUser(t *testing.T) {
	app := fiber.New()
	app.Get("/with-user", func(c *fiber.Ctx) error {
		c.Locals("user", &model.User{Username: "admin", Role: "admin"})
		user, ok := GetUser(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(user.Username)
	})
	app.Get("/without-user", func(c *fiber.Ctx) error {
		if _, ok := GetUser(c); ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/with-user", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK || string(body) != "admin" {
		t.Errorf("with-user: status = %d, body = %q, want 200 %q", resp.StatusCode, body, "admin")
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/without-user", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusNoContent {
		t.Errorf("without-user: status = %d, want 204", resp.StatusCode)
	}
}

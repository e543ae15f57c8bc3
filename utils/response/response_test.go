package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestErrorBodyShape(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return NotFound(c, "Project not found")
	})
	app.Get("/denied", func(c *fiber.Ctx) error {
		return Unauthorized(c, "Invalid username or password")
	})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/missing", fiber.StatusNotFound, "Project not found"},
		{"/denied", fiber.StatusUnauthorized, "Invalid username or password"},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
		if err != nil {
			t.Fatalf("app.Test(%s): %v", tt.path, err)
		}
		if resp.StatusCode != tt.wantStatus {
			t.Errorf("%s: status = %d, want %d", tt.path, resp.StatusCode, tt.wantStatus)
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		var parsed map[string]string
		if err := json.Unmarshal(body, &parsed); err != nil {
			t.Fatalf("%s: invalid JSON body %q: %v", tt.path, body, err)
		}
		if parsed["message"] != tt.wantBody {
			t.Errorf("%s: message = %q, want %q", tt.path, parsed["message"], tt.wantBody)
		}
	}
}

func TestCalculatePagination(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int64
		wantPage       int
		wantPerPage    int
		wantTotalPages int
	}{
		{"first page", 1, 10, 25, 1, 10, 3},
		{"exact division", 2, 5, 20, 2, 5, 4},
		{"page below one clamps", 0, 10, 5, 1, 10, 1},
		{"limit below one defaults", 1, 0, 30, 1, 10, 3},
		{"limit above cap clamps", 1, 500, 300, 1, 100, 3},
		{"empty collection", 1, 10, 0, 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := CalculatePagination(tt.page, tt.limit, tt.total)
			if meta.CurrentPage != tt.wantPage {
				t.Errorf("CurrentPage = %d, want %d", meta.CurrentPage, tt.wantPage)
			}
			if meta.PerPage != tt.wantPerPage {
				t.Errorf("PerPage = %d, want %d", meta.PerPage, tt.wantPerPage)
			}
			if meta.Total != tt.total {
				t.Errorf("Total = %d, want %d", meta.Total, tt.total)
			}
			if meta.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.wantTotalPages)
			}
		})
	}
}

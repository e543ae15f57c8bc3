package services

import (
	"strings"
	"testing"

	"github.com/techspire-labs/academy-api/model"
)

func TestNeedsImageRepair(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"legacy provider", "https://source.unsplash.com/800x600/?college", true},
		{"legacy provider mixed case", "https://SOURCE.UNSPLASH.COM/random", true},
		{"trusted absolute URL", "https://cdn.example.com/a.png", false},
		{"trusted manual paste", "https://images.unsplash.com/photo-123", false},
		{"already repaired", "https://loremflickr.com/800/600/web,coding?lock=100", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsImageRepair(tt.url); got != tt.want {
				t.Errorf("NeedsImageRepair(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestBuildPlaceholderImageURL(t *testing.T) {
	got := BuildPlaceholderImageURL("Smart College Management System", model.CategoryWebDevelopment, 0)
	want := "https://loremflickr.com/800/600/smart,college,management,web,coding,laptop?lock=100"
	if got != want {
		t.Errorf("BuildPlaceholderImageURL = %q, want %q", got, want)
	}
}

func TestBuildPlaceholderImageURLSeedOffset(t *testing.T) {
	first := BuildPlaceholderImageURL("Chat App", model.CategoryAppDevelopment, 0)
	second := BuildPlaceholderImageURL("Chat App", model.CategoryAppDevelopment, 1)

	if !strings.HasSuffix(first, "?lock=100") {
		t.Errorf("batch index 0 should produce lock=100, got %q", first)
	}
	if !strings.HasSuffix(second, "?lock=101") {
		t.Errorf("batch index 1 should produce lock=101, got %q", second)
	}
}

func TestBuildPlaceholderImageURLUnknownCategory(t *testing.T) {
	got := BuildPlaceholderImageURL("Inventory Tracker", model.ProjectCategory("Robotics"), 2)
	want := "https://loremflickr.com/800/600/inventory,tracker,technology,software?lock=102"
	if got != want {
		t.Errorf("BuildPlaceholderImageURL = %q, want %q", got, want)
	}
}

func TestBuildPlaceholderImageURLFallbackTags(t *testing.T) {
	// Every title word is a stop-word or too short, and the category is
	// unknown, so only the fallback tags remain.
	got := BuildPlaceholderImageURL("An App On The To Of", model.ProjectCategory("???"), 0)
	want := "https://loremflickr.com/800/600/technology,software?lock=100"
	if got != want {
		t.Errorf("BuildPlaceholderImageURL = %q, want %q", got, want)
	}
}

func TestTitleTokens(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{"drops stop words and short tokens", "Smart College Management System", []string{"smart", "college", "management"}},
		{"caps at three tokens", "Real Time Weather Forecast Visualization Engine", []string{"real", "time", "weather"}},
		{"strips punctuation", "E-Commerce: Buy & Sell!", []string{"commerce", "buy", "sell"}},
		{"all filtered", "An App for the Online Platform", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titleTokens(tt.title)
			if len(got) != len(tt.want) {
				t.Fatalf("titleTokens(%q) = %v, want %v", tt.title, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("titleTokens(%q)[%d] = %q, want %q", tt.title, i, got[i], tt.want[i])
				}
			}
		})
	}
}

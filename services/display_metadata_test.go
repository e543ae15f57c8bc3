package services

import (
	"fmt"
	"math"
	"testing"
)

func TestDeriveDisplayMetadataDeterministic(t *testing.T) {
	pairs := [][2]string{
		{"smart-college-management-system", "Smart College Management System"},
		{"ai-crop-disease-detector", "AI Based Crop Disease Detection"},
		{"campus-food-delivery-app", "Campus Food Delivery App"},
		{"", ""},
	}

	for _, pair := range pairs {
		first := DeriveDisplayMetadata(pair[0], pair[1])
		for i := 0; i < 5; i++ {
			again := DeriveDisplayMetadata(pair[0], pair[1])
			if again != first {
				t.Fatalf("DeriveDisplayMetadata(%q, %q) not deterministic: %+v vs %+v",
					pair[0], pair[1], first, again)
			}
		}
	}
}

func TestDeriveDisplayMetadataRanges(t *testing.T) {
	for i := 0; i < 200; i++ {
		id := fmt.Sprintf("project-%d", i)
		title := fmt.Sprintf("Project Number %d", i)
		meta := DeriveDisplayMetadata(id, title)

		if meta.DurationMonths != 1 && meta.DurationMonths != 2 {
			t.Errorf("duration for %q out of range: %d", id, meta.DurationMonths)
		}
		if meta.Rating < 4.3 || meta.Rating > 5.0 {
			t.Errorf("rating for %q out of range: %v", id, meta.Rating)
		}
		// Ratings are single-decimal by construction
		scaled := meta.Rating * 10
		if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			t.Errorf("rating for %q is not a single decimal: %v", id, meta.Rating)
		}
	}
}

func TestDeriveDisplayMetadataDurationLabel(t *testing.T) {
	for i := 0; i < 50; i++ {
		meta := DeriveDisplayMetadata(fmt.Sprintf("p-%d", i), "Title")
		want := "1 month"
		if meta.DurationMonths == 2 {
			want = "2 months"
		}
		if meta.Duration != want {
			t.Errorf("duration label = %q, want %q", meta.Duration, want)
		}
	}
}

func TestIdentityHashWraps(t *testing.T) {
	// Long strings must wrap around in 32 bits rather than grow unbounded;
	// the same string always hashes identically.
	long := ""
	for i := 0; i < 100; i++ {
		long += "abcdefghij"
	}
	h1 := identityHash(long)
	h2 := identityHash(long)
	if h1 != h2 {
		t.Fatalf("identityHash not stable: %d vs %d", h1, h2)
	}
}

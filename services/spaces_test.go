package services

import "testing"

func TestObjectKeyFromURL(t *testing.T) {
	client := &SpacesClient{
		bucket:   "academy-assets",
		endpoint: "sgp1.digitaloceanspaces.com",
		cdnURL:   "https://cdn.techspire.example",
	}

	tests := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{
			"origin URL",
			"https://academy-assets.sgp1.digitaloceanspaces.com/projects/smart-parking/abc.png",
			"projects/smart-parking/abc.png",
			true,
		},
		{
			"CDN URL",
			"https://cdn.techspire.example/projects/smart-parking/abc.png",
			"projects/smart-parking/abc.png",
			true,
		},
		{"foreign host", "https://images.example.com/photo.png", "", false},
		{"placeholder provider", "https://loremflickr.com/800/600/web?lock=100", "", false},
		{"empty", "", "", false},
		{"bucket root without key", "https://academy-assets.sgp1.digitaloceanspaces.com/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := client.ObjectKeyFromURL(tt.url)
			if ok != tt.wantOK || key != tt.wantKey {
				t.Errorf("ObjectKeyFromURL(%q) = (%q, %v), want (%q, %v)", tt.url, key, ok, tt.wantKey, tt.wantOK)
			}
		})
	}
}

func TestObjectKeyFromURLWithoutCDN(t *testing.T) {
	client := &SpacesClient{
		bucket:   "academy-assets",
		endpoint: "sgp1.digitaloceanspaces.com",
	}

	if _, ok := client.ObjectKeyFromURL("https://cdn.techspire.example/projects/a.png"); ok {
		t.Error("a CDN URL should not match when no CDN is configured")
	}
	key, ok := client.ObjectKeyFromURL("https://academy-assets.sgp1.digitaloceanspaces.com/projects/a.png")
	if !ok || key != "projects/a.png" {
		t.Errorf("origin URL lookup = (%q, %v), want (%q, true)", key, ok, "projects/a.png")
	}
}

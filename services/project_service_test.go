package services

import "testing"

func TestParseNativeKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantKey uint
		wantOK  bool
	}{
		{"simple numeric", "12", 12, true},
		{"single digit", "7", 7, true},
		{"zero is not a key", "0", 0, false},
		{"empty", "", 0, false},
		{"slug", "smart-college-management-system", 0, false},
		{"negative", "-3", 0, false},
		{"mixed", "12abc", 0, false},
		{"overflows uint32", "18446744073709551616", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := ParseNativeKey(tt.input)
			if ok != tt.wantOK || key != tt.wantKey {
				t.Errorf("ParseNativeKey(%q) = (%d, %v), want (%d, %v)",
					tt.input, key, ok, tt.wantKey, tt.wantOK)
			}
		})
	}
}

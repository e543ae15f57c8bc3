package validation

import "testing"

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		username string
		wantOK   bool
	}{
		{"admin", true},
		{"admin_user-1", true},
		{"ab", false},
		{"has space", false},
		{"emoji🙂", false},
	}

	for _, tt := range tests {
		ok, _ := ValidateUsername(tt.username)
		if ok != tt.wantOK {
			t.Errorf("ValidateUsername(%q) = %v, want %v", tt.username, ok, tt.wantOK)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  padded  ", "padded"},
		{"null\x00byte", "nullbyte"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeString(tt.input); got != tt.want {
			t.Errorf("SanitizeString(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

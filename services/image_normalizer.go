package services

import (
	"regexp"
	"strings"
)

var wwwPrefixPattern = regexp.MustCompile(`^www\.\S+`)

// NormalizeImageURL canonicalizes a user- or seed-supplied image reference
// into a fetchable absolute URL. It is pure and idempotent: applying it twice
// yields the same result as applying it once.
//
// Rules, in order: empty/whitespace returns empty; protocol-relative URLs get
// an https scheme; bare www hosts get an https:// prefix; absolute http(s),
// data-URI and blob references pass through untouched. Anything else (e.g. a
// path relative to a frontend origin) is returned unchanged - only the
// browser knows its own origin, so the server never guesses one.
func NormalizeImageURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if strings.HasPrefix(s, "//") {
		return "https:" + s
	}

	if strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "data:image/") ||
		strings.HasPrefix(s, "blob:") {
		return s
	}

	if wwwPrefixPattern.MatchString(s) {
		return "https://" + s
	}

	return s
}

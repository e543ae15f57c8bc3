package services

import (
	"fmt"
	"math"
)

// DisplayMetadata holds synthetic per-record display values. They are never
// persisted; the same (id, title) pair always derives the same values, so
// every frontend renders identical metadata without a stored column.
type DisplayMetadata struct {
	DurationMonths int     `json:"durationMonths"`
	Duration       string  `json:"duration"`
	Rating         float64 `json:"rating"`
}

// DeriveDisplayMetadata computes a stable duration (1 or 2 months) and rating
// (4.3 to 5.0, one decimal) from a record's identity.
func DeriveDisplayMetadata(id, title string) DisplayMetadata {
	h := identityHash(id + "-" + title)
	if h == math.MinInt32 {
		h = 0
	}
	if h < 0 {
		h = -h
	}

	months := int(h%2) + 1
	unit := "month"
	if months > 1 {
		unit = "months"
	}

	rating := float64(43+h%8) / 10

	return DisplayMetadata{
		DurationMonths: months,
		Duration:       fmt.Sprintf("%d %s", months, unit),
		Rating:         rating,
	}
}

// identityHash is a 32-bit rolling hash (h = h*31 + ch) with wraparound,
// matching the hash the frontends compute for the same records.
func identityHash(s string) int32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	return h
}

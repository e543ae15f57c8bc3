package services

import (
	"fmt"
	"strings"

	"github.com/techspire-labs/academy-api/model"
)

// The site originally used source.unsplash.com for project artwork. That
// service was retired, leaving dead URLs in old records. Only URLs from that
// provider (or blank ones) count as unusable; anything an admin pasted by
// hand is trusted as-is.
const legacyImageProviderHost = "source.unsplash.com"

// placeholderImageTemplate is the replacement provider. The lock parameter
// pins the returned image so the same URL always renders the same photo.
const placeholderImageTemplate = "https://loremflickr.com/800/600/%s?lock=%d"

// placeholderSeedOffset is added to a record's batch position to build the
// lock value, so neighbouring records with identical tags still get
// distinct images.
const placeholderSeedOffset = 100

const maxTitleTokens = 3
const maxImageTags = 6

var titleStopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "to": {},
	"of": {}, "in": {}, "on": {}, "a": {}, "an": {}, "system": {},
	"app": {}, "platform": {}, "online": {},
}

var categoryImageTags = map[model.ProjectCategory][]string{
	model.CategoryWebDevelopment: {"web", "coding", "laptop", "dashboard"},
	model.CategoryAppDevelopment: {"mobile", "app", "smartphone", "interface"},
	model.CategoryFullStack:      {"code", "server", "database", "screen"},
	model.CategoryAIML:           {"ai", "robot", "data", "neural"},
	model.CategoryIEEEStandards:  {"circuit", "electronics", "engineering"},
	model.CategoryFinalYearMajor: {"project", "research", "engineering", "team"},
}

var fallbackImageTags = []string{"technology", "software"}

// NeedsImageRepair reports whether a stored image URL is unusable and should
// be replaced by a synthesized placeholder.
func NeedsImageRepair(imageURL string) bool {
	s := strings.TrimSpace(imageURL)
	if s == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), legacyImageProviderHost)
}

// BuildPlaceholderImageURL deterministically derives a themed image URL from
// a project's title and category. batchIndex is the record's position in its
// listing batch and only influences the lock seed.
func BuildPlaceholderImageURL(title string, category model.ProjectCategory, batchIndex int) string {
	tags := titleTokens(title)

	categoryTags, ok := categoryImageTags[category]
	if !ok {
		categoryTags = fallbackImageTags
	}
	tags = append(tags, categoryTags...)

	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = stripNonAlphanumeric(tag)
		if tag == "" {
			continue
		}
		cleaned = append(cleaned, tag)
		if len(cleaned) == maxImageTags {
			break
		}
	}

	joined := strings.Join(cleaned, ",")
	if joined == "" {
		joined = strings.Join(fallbackImageTags, ",")
	}

	return fmt.Sprintf(placeholderImageTemplate, joined, batchIndex+placeholderSeedOffset)
}

// titleTokens extracts up to maxTitleTokens meaningful words from a title:
// lowercased, split on anything non-alphanumeric, short words and stop-words
// dropped.
func titleTokens(title string) []string {
	lowered := strings.ToLower(title)
	split := strings.FieldsFunc(lowered, func(r rune) bool {
		return !isAlphanumeric(r)
	})

	tokens := make([]string, 0, maxTitleTokens)
	for _, tok := range split {
		if len(tok) <= 2 {
			continue
		}
		if _, stop := titleStopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
		if len(tokens) == maxTitleTokens {
			break
		}
	}
	return tokens
}

func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isAlphanumeric(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

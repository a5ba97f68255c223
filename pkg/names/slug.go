package names

import (
	"regexp"
	"strings"
)

var (
	// Matches characters that are not allowed in a slug.
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	// Matches runs of whitespace.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Matches multiple hyphens.
	multipleHyphens = regexp.MustCompile(`-+`)
)

// Slugify converts a display name to a URL-safe slug.
// "Aarav" -> "aarav".
// "Mary  Anne" -> "mary-anne".
// "Zara (princess)" -> "zara-princess".
// Names without any ASCII letters or digits produce an empty slug.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugDisallowed.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

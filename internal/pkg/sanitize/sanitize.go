package sanitize

import (
	"regexp"
	"strings"
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Clean strips markup-like tags, collapses whitespace runs to a single
// space and trims the result.
func Clean(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Email normalizes an email address for storage and lookups.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

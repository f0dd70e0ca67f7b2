package utils

import (
	"strings"
	"unicode"
)

// Slugify builds a URL-safe slug from the given parts. Non-alphanumeric
// runs collapse to single hyphens; empty parts are skipped.
func Slugify(parts ...string) string {
	var b strings.Builder
	lastHyphen := true

	for _, part := range parts {
		for _, r := range strings.ToLower(part) {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
				lastHyphen = false
			} else if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

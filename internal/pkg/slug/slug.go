// Package slug derives URL-safe identifiers from post titles.
package slug

import "strings"

// Slugify normalizes a title into a URL-safe slug: lowercase, spaces
// collapsed to single hyphens, everything outside [a-z0-9_-] stripped,
// repeated hyphens collapsed, leading/trailing hyphens trimmed.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(s))
	prevHyphen := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		case r == '-':
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_':
			b.WriteRune(r)
			prevHyphen = false
		}
	}

	return strings.Trim(b.String(), "-")
}

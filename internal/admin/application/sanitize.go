package application

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips all markup from free text. Policies are safe for
// concurrent use once built.
var textPolicy = bluemonday.StrictPolicy()

// maxSanitizePasses bounds how many layers of entity encoding are unwrapped.
const maxSanitizePasses = 4

// SanitizeText removes markup and surrounding whitespace, leaving plain text.
// Entity-encoded markup is decoded and stripped too. Input that is still
// changing after maxSanitizePasses is returned in its escaped form.
func SanitizeText(s string) string {
	text := strings.TrimSpace(s)
	for range maxSanitizePasses {
		plain := html.UnescapeString(textPolicy.Sanitize(text))
		if plain == text {
			return strings.TrimSpace(plain)
		}
		text = plain
	}
	return strings.TrimSpace(textPolicy.Sanitize(text))
}

func sanitizeList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, SanitizeText(v))
	}
	return out
}

package dedupe

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxSlugLen = 80

// Slugify derives the URL slug used as a draft's exact-duplicate key.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteRune('-')
			lastHyphen = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLen {
		// Back up to a rune boundary so non-ASCII letters are never split.
		cut := maxSlugLen
		for cut > 0 && !utf8.RuneStart(slug[cut]) {
			cut--
		}
		slug = slug[:cut]
		if i := strings.LastIndex(slug, "-"); i > 0 {
			slug = slug[:i]
		}
	}
	return slug
}

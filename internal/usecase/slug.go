package usecase

import (
	"strings"
	"unicode"
)

// 名前からURL用のslugを作る ("Home & Garden" -> "home-garden")
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func slugOr(slug, name string) string {
	if slug != "" {
		return slug
	}
	return slugify(name)
}

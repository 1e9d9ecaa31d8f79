package locale

import "strings"

// Locale is one of the display languages supported by the salon site.
type Locale string

const (
	DE Locale = "de"
	FR Locale = "fr"
	EN Locale = "en"
)

// Normalize maps an arbitrary language tag to a supported locale. Regional
// variants resolve to their base language (de-CH behaves as de); anything
// outside the supported set falls through to English.
func Normalize(tag string) Locale {
	base := strings.ToLower(tag)
	if i := strings.IndexAny(base, "-_"); i >= 0 {
		base = base[:i]
	}
	switch Locale(base) {
	case DE:
		return DE
	case FR:
		return FR
	case EN:
		return EN
	default:
		return EN
	}
}

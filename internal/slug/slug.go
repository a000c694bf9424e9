// Package slug normalizes document titles into URL-safe identifiers.
package slug

import (
	"strings"
	"unicode"
)

// Normalize converts a title into its slug form: lowercase ASCII letters
// and digits, with every run of other characters collapsed into a single
// hyphen. Leading and trailing hyphens are trimmed.
func Normalize(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}

// Package sanitize normalizes user-provided book titles before they are
// interpolated into prompts.
package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Title normalizes a title to NFC, drops control characters, collapses whitespace runs
// and swaps double quotes for single quotes so the title stays inside its quoted slot
// in the prompt templates.
func Title(title string) string {
	normalized := norm.NFC.String(title)

	var sb strings.Builder
	sb.Grow(len(normalized))
	space := false
	for _, r := range normalized {
		switch {
		case unicode.IsSpace(r):
			space = true
			continue
		case unicode.IsControl(r):
			continue
		case r == '"' || r == '“' || r == '”':
			r = '\''
		}
		if space && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		space = false
		sb.WriteRune(r)
	}
	return sb.String()
}

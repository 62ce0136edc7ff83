package reddit

import (
	"html"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// sanitizeText unescapes HTML entities and removes terminal escape sequences
// and control characters. Newlines and tabs survive.
func sanitizeText(s string) string {
	s = ansi.Strip(html.UnescapeString(s))
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// sanitizeLine is sanitizeText for single-line fields.
func sanitizeLine(s string) string {
	return strings.Join(strings.Fields(sanitizeText(s)), " ")
}

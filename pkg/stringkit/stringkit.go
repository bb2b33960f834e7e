// Package stringkit provides the string escaping helpers of the toolkit.
package stringkit

import (
	"strings"
	"unicode/utf8"
)

// EscapeQ returns the string as a double-quoted literal,
// with control and non-printable bytes escaped C-style.
// Valid multi-byte UTF-8 sequences pass through unescaped.
func EscapeQ(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '"':
			b.WriteString(`\"`)
			i++
		case c == '\\':
			b.WriteString(`\\`)
			i++
		case c == '\n':
			b.WriteString(`\n`)
			i++
		case c == '\r':
			b.WriteString(`\r`)
			i++
		case c == '\t':
			b.WriteString(`\t`)
			i++
		case c < 0x20 || c == 0x7f:
			b.WriteByte('\\')
			b.WriteByte('x')
			b.WriteByte(hexdigits[c>>4])
			b.WriteByte(hexdigits[c&0xf])
			i++
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			i++
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				b.WriteByte('\\')
				b.WriteByte('x')
				b.WriteByte(hexdigits[c>>4])
				b.WriteByte(hexdigits[c&0xf])
				i++
				break
			}
			b.WriteString(s[i : i+size])
			i += size
		}
	}
	b.WriteByte('"')
	return b.String()
}

const hexdigits = "0123456789ABCDEF"

// MaybeQuote quotes a string only when it contains
// whitespace, quotes or non-printable content.
func MaybeQuote(s string) string {
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, " \t\n\r\"'\\") || strings.ContainsFunc(s, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return EscapeQ(s)
	}
	return s
}

// Truncate shortens a string to at most max bytes,
// appending the ellipsis when a cut happened.
// Cutting never splits a UTF-8 sequence.
// The ellipsis is the floor of the result: when max is smaller than the
// ellipsis itself, the whole ellipsis is returned rather than a broken one.
func Truncate(s string, max int, ellipsis string) string {
	if len(s) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return ellipsis
	}
	cut := max - len(ellipsis)
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + ellipsis
}

// Package naming converts user-supplied project names into identifiers that
// are safe to use as package and module names.
package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Normalize trims surrounding whitespace, lowercases the input and drops every
// character that is not a lowercase ASCII letter, a digit or an underscore.
//
// Any input is accepted. The result may be empty.
func Normalize(raw string) string {
	s := lower.String(strings.TrimSpace(raw))

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isIdentByte(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// IsNormalized reports whether s is already in the form Normalize produces.
func IsNormalized(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return false
		}
	}
	return true
}

func isIdentByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}

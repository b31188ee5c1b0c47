// Package domain holds the in-memory social network model.
package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeName returns the display form of a user name: surrounding
// whitespace is trimmed and the first letter is upper-cased. The rest of the
// name is kept as typed.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// SameName reports whether two names identify the same user.
// Names are compared case-insensitively after normalization.
func SameName(a, b string) bool {
	return strings.EqualFold(NormalizeName(a), NormalizeName(b))
}

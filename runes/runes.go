// Package runes contains some generally useful operations on runes, including
// the Scheme lexical classes shared by the reader.
package runes

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// First returns the first rune of s. If the string is empty or not proper UTF-8, returns false.
func First(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size < 2 {
		return 0, false
	}
	return r, true
}

// Single returns the single rune of s. If the string doesn't have exactly one rune, returns
// false.
func Single(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	return r, size == len(s)
}

// IsDelimiter returns whether r terminates a symbol, number or boolean token.
func IsDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')' || r == '"' || r == ';'
}

// IsSymbolInitial returns whether r may start a symbol.
func IsSymbolInitial(r rune) bool {
	return unicode.IsLetter(r) || strings.ContainsRune("!$%&*/:<=>?^_~", r)
}

// IsSymbolSubsequent returns whether r may continue a symbol.
func IsSymbolSubsequent(r rune) bool {
	return IsSymbolInitial(r) || unicode.IsDigit(r) || strings.ContainsRune("+.@-", r)
}

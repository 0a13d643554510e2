package scm

import (
	"fmt"
	"strings"
)

// Named characters recognized in #\<name> literals and produced by Write.
var charNames = map[string]rune{
	"newline": '\n',
	"space":   ' ',
	"tab":     '\t',
}

var charNamesInv = map[rune]string{
	'\n': "newline",
	' ':  "space",
	'\t': "tab",
}

// CharByName returns the character for a literal name such as "newline".
func CharByName(name string) (rune, bool) {
	r, ok := charNames[name]
	return r, ok
}

// FormatChar returns the write form of a character, e.g. #\A or #\newline.
func FormatChar(r rune) string {
	if name, ok := charNamesInv[r]; ok {
		return "#\\" + name
	}
	return fmt.Sprintf("#\\%c", r)
}

var escapeChars = map[rune]string{
	'"':  `\"`,
	'\\': `\\`,
	'\n': `\n`,
}

// FormatString returns the write form of string contents, quoted and with
// backslash, quote and newline escaped.
func FormatString(chars []rune) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, ch := range chars {
		if exp, ok := escapeChars[ch]; ok {
			b.WriteString(exp)
		} else {
			b.WriteRune(ch)
		}
	}
	b.WriteByte('"')
	return b.String()
}

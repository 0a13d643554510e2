package reader

import (
	"fmt"
)

// Kind distinguishes the token classes of the Scheme lexical syntax.
type Kind int

const (
	// LParen and RParen delimit lists.
	LParen Kind = iota
	RParen
	// TString is a string literal; Text holds the decoded contents.
	TString
	// TSymbol is an identifier.
	TSymbol
	// TNumber is an exact integer literal, possibly signed.
	TNumber
	// TBoolean is #t or #f.
	TBoolean
	// TChar is a character literal; Text holds the single character.
	TChar
	// Dot separates the tail of an improper list.
	Dot
	// Quote is the ' mark.
	Quote
)

func (k Kind) String() string {
	switch k {
	case LParen:
		return "("
	case RParen:
		return ")"
	case TString:
		return "string"
	case TSymbol:
		return "symbol"
	case TNumber:
		return "number"
	case TBoolean:
		return "boolean"
	case TChar:
		return "char"
	case Dot:
		return "."
	case Quote:
		return "'"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a lexical unit of Scheme source text.
type Token struct {
	Kind Kind
	// Text is the token's payload: decoded string contents, symbol name,
	// number digits, "t"/"f" for booleans, the character for chars.
	Text string
	// Pos is the character offset of the token in the source.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case LParen, RParen, Dot, Quote:
		return t.Kind.String()
	default:
		return fmt.Sprintf("%v(%s)", t.Kind, t.Text)
	}
}

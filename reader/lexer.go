package reader

import (
	"github.com/dcastelo/scheme-engine/errors"
	"github.com/dcastelo/scheme-engine/runes"
	"github.com/dcastelo/scheme-engine/scm"
)

// ErrUnexpectedEOF is wrapped by errors for source text that was cut off
// mid-token or mid-datum. A REPL may test for it to keep reading input.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

type tokenizer struct {
	src []rune
	pos int
}

// Tokenize splits source text into tokens, skipping whitespace and line
// comments.
func Tokenize(text string) ([]Token, error) {
	t := &tokenizer{src: []rune(text)}
	var tokens []Token
	for {
		token, ok, err := t.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, token)
	}
}

func (t *tokenizer) skipSpace() {
	for t.pos < len(t.src) {
		ch := t.src[t.pos]
		if ch == ';' {
			for t.pos < len(t.src) && t.src[t.pos] != '\n' {
				t.pos++
			}
			continue
		}
		if !isSpace(ch) {
			return
		}
		t.pos++
	}
}

func (t *tokenizer) next() (Token, bool, error) {
	t.skipSpace()
	if t.pos >= len(t.src) {
		return Token{}, false, nil
	}
	start := t.pos
	ch := t.src[t.pos]
	switch {
	case ch == '(':
		t.pos++
		return Token{LParen, "(", start}, true, nil
	case ch == ')':
		t.pos++
		return Token{RParen, ")", start}, true, nil
	case ch == '\'':
		t.pos++
		return Token{Quote, "'", start}, true, nil
	case ch == '"':
		return t.nextString()
	case ch == '#':
		return t.nextHash()
	case isDigit(ch):
		return t.nextNumber(start)
	case ch == '+' || ch == '-':
		if t.pos+1 < len(t.src) && isDigit(t.src[t.pos+1]) {
			return t.nextNumber(start)
		}
		// Bare + and - are symbols.
		t.pos++
		if err := t.expectDelimiter(start); err != nil {
			return Token{}, false, err
		}
		return Token{TSymbol, string(ch), start}, true, nil
	case ch == '.':
		return t.nextDot(start)
	case runes.IsSymbolInitial(ch):
		t.pos++
		for t.pos < len(t.src) && runes.IsSymbolSubsequent(t.src[t.pos]) {
			t.pos++
		}
		if err := t.expectDelimiter(start); err != nil {
			return Token{}, false, err
		}
		return Token{TSymbol, string(t.src[start:t.pos]), start}, true, nil
	default:
		return Token{}, false, errors.New("unknown token at offset %d: %q", start, string(ch))
	}
}

func (t *tokenizer) nextString() (Token, bool, error) {
	start := t.pos
	t.pos++ // opening quote
	var body []rune
	for t.pos < len(t.src) {
		ch := t.src[t.pos]
		switch ch {
		case '"':
			t.pos++
			return Token{TString, string(body), start}, true, nil
		case '\n':
			return Token{}, false, errors.New("newline in string at offset %d", t.pos)
		case '\\':
			if t.pos+1 >= len(t.src) {
				t.pos = len(t.src)
				return Token{}, false, errors.New("unterminated string at offset %d: %v", start, ErrUnexpectedEOF)
			}
			switch esc := t.src[t.pos+1]; esc {
			case 'n':
				body = append(body, '\n')
			case 't':
				body = append(body, '\t')
			default:
				body = append(body, esc)
			}
			t.pos += 2
		default:
			body = append(body, ch)
			t.pos++
		}
	}
	return Token{}, false, errors.New("unterminated string at offset %d: %v", start, ErrUnexpectedEOF)
}

func (t *tokenizer) nextHash() (Token, bool, error) {
	start := t.pos
	if t.pos+1 >= len(t.src) {
		t.pos = len(t.src)
		return Token{}, false, errors.New("clipped token at offset %d: %v", start, ErrUnexpectedEOF)
	}
	switch ch := t.src[t.pos+1]; ch {
	case 't', 'f':
		t.pos += 2
		if err := t.expectDelimiter(start); err != nil {
			return Token{}, false, err
		}
		return Token{TBoolean, string(ch), start}, true, nil
	case '\\':
		return t.nextChar(start)
	default:
		return Token{}, false, errors.New("unknown token at offset %d: %q", start, "#"+string(ch))
	}
}

func (t *tokenizer) nextChar(start int) (Token, bool, error) {
	t.pos += 2 // #\
	if t.pos >= len(t.src) {
		return Token{}, false, errors.New("clipped character at offset %d: %v", start, ErrUnexpectedEOF)
	}
	first := t.src[t.pos]
	t.pos++
	end := t.pos
	for end < len(t.src) && !runes.IsDelimiter(t.src[end]) {
		end++
	}
	if end == t.pos {
		return Token{TChar, string(first), start}, true, nil
	}
	// Multi-character literal: must be a known name, such as #\newline.
	name := string(first) + string(t.src[t.pos:end])
	t.pos = end
	r, ok := scm.CharByName(name)
	if !ok {
		return Token{}, false, errors.New("unknown character name at offset %d: %q", start, name)
	}
	return Token{TChar, string(r), start}, true, nil
}

func (t *tokenizer) nextNumber(start int) (Token, bool, error) {
	if t.src[t.pos] == '+' || t.src[t.pos] == '-' {
		t.pos++
	}
	for t.pos < len(t.src) && isDigit(t.src[t.pos]) {
		t.pos++
	}
	if err := t.expectDelimiter(start); err != nil {
		return Token{}, false, err
	}
	return Token{TNumber, string(t.src[start:t.pos]), start}, true, nil
}

func (t *tokenizer) nextDot(start int) (Token, bool, error) {
	end := t.pos
	for end < len(t.src) && t.src[end] == '.' {
		end++
	}
	switch end - t.pos {
	case 1:
		t.pos = end
		if err := t.expectDelimiter(start); err != nil {
			return Token{}, false, err
		}
		return Token{Dot, ".", start}, true, nil
	case 3:
		// The ellipsis identifier.
		t.pos = end
		if err := t.expectDelimiter(start); err != nil {
			return Token{}, false, err
		}
		return Token{TSymbol, "...", start}, true, nil
	default:
		if end == len(t.src) {
			return Token{}, false, errors.New("clipped token at offset %d: %v", start, ErrUnexpectedEOF)
		}
		return Token{}, false, errors.New("unknown token at offset %d: %q", start, string(t.src[t.pos:end]))
	}
}

// expectDelimiter checks that the token ending at the current position is
// properly terminated.
func (t *tokenizer) expectDelimiter(start int) error {
	if t.pos < len(t.src) && !runes.IsDelimiter(t.src[t.pos]) && t.src[t.pos] != '\'' {
		return errors.New("unknown token at offset %d: %q", start, string(t.src[start:t.pos+1]))
	}
	return nil
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\v' || ch == '\f' || ch == '\r'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

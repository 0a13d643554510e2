// Package reader implements the Scheme datum reader: a tokenizer for the
// lexical syntax and a parser that assembles tokens into scm values.
//
// The quote mark is the only reader prefix: 'x reads as (quote x), nesting on
// repetition, so '''x reads as (quote (quote (quote x))).
package reader

import (
	"io"
	"math/big"

	"github.com/dcastelo/scheme-engine/errors"
	"github.com/dcastelo/scheme-engine/runes"
	"github.com/dcastelo/scheme-engine/scm"

	"github.com/nukata/goarith"
)

var quoteSym = scm.Intern("quote")

// Reader parses a sequence of datums from source text.
type Reader struct {
	tokens []Token
	pos    int
}

// New tokenizes the source text and returns a reader over its datums.
func New(text string) (*Reader, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return &Reader{tokens: tokens}, nil
}

// ReadAll parses all datums in the source text.
func ReadAll(text string) ([]scm.Value, error) {
	r, err := New(text)
	if err != nil {
		return nil, err
	}
	var values []scm.Value
	for {
		v, err := r.Read()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}

// Read parses the next datum. It returns io.EOF when the input is exhausted.
func (r *Reader) Read() (scm.Value, error) {
	if r.pos >= len(r.tokens) {
		return nil, io.EOF
	}
	return r.readDatum()
}

func (r *Reader) readDatum() (scm.Value, error) {
	token, err := r.next()
	if err != nil {
		return nil, err
	}
	switch token.Kind {
	case TSymbol:
		return scm.Intern(token.Text), nil
	case TNumber:
		return readNumber(token)
	case TString:
		return scm.NewString(token.Text), nil
	case TBoolean:
		return scm.Boolean(token.Text == "t"), nil
	case TChar:
		ch, _ := runes.First(token.Text)
		return scm.NewChar(ch), nil
	case Quote:
		quoted, err := r.readDatum()
		if err != nil {
			return nil, err
		}
		return scm.NewList(quoteSym, quoted), nil
	case LParen:
		return r.readList(token)
	case RParen:
		return nil, errors.New("unexpected ) at offset %d", token.Pos)
	case Dot:
		return nil, errors.New("unexpected . at offset %d", token.Pos)
	default:
		return nil, errors.New("unhandled token %v at offset %d", token, token.Pos)
	}
}

// readList parses the remainder of a list, with open the already-consumed
// opening paren. A dot is only valid after at least one element, followed by
// exactly one datum and the closing paren.
func (r *Reader) readList(open Token) (scm.Value, error) {
	var values []scm.Value
	for {
		token, err := r.peek(open)
		if err != nil {
			return nil, err
		}
		switch token.Kind {
		case RParen:
			r.pos++
			return scm.NewList(values...), nil
		case Dot:
			if len(values) == 0 {
				return nil, errors.New("unexpected . at offset %d", token.Pos)
			}
			r.pos++
			tail, err := r.readDatum()
			if err != nil {
				return nil, err
			}
			end, err := r.peek(open)
			if err != nil {
				return nil, err
			}
			if end.Kind != RParen {
				return nil, errors.New("expected ) after dotted tail, got %v at offset %d", end, end.Pos)
			}
			r.pos++
			return scm.NewImproperList(values, tail), nil
		default:
			v, err := r.readDatum()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
}

func (r *Reader) next() (Token, error) {
	if r.pos >= len(r.tokens) {
		return Token{}, errors.New("expected datum: %v", ErrUnexpectedEOF)
	}
	token := r.tokens[r.pos]
	r.pos++
	return token, nil
}

func (r *Reader) peek(open Token) (Token, error) {
	if r.pos >= len(r.tokens) {
		return Token{}, errors.New("unterminated list at offset %d: %v", open.Pos, ErrUnexpectedEOF)
	}
	return r.tokens[r.pos], nil
}

func readNumber(token Token) (scm.Value, error) {
	z, ok := new(big.Int).SetString(token.Text, 10)
	if !ok {
		return nil, errors.New("invalid number at offset %d: %q", token.Pos, token.Text)
	}
	return scm.Number{Value: goarith.AsNumber(z)}, nil
}

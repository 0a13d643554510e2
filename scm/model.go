// Package scm implements the data model for Scheme values.
//
// A value falls in one of three categories:
//
// * atomic: booleans, characters, exact integers and symbols, plus the empty
// list and the unspecified value.
//
// * compound: pairs, which chain into proper and improper lists.
//
// * opaque: mutable strings and procedures, which are compared by identity.
//
// Values have two textual renderings: Write produces a form that reads back as
// the same value (strings quoted, characters as #\x), and Display produces the
// human-readable form used by the display procedure.
package scm

import (
	"fmt"
	"strings"
	"sync"

	"github.com/nukata/goarith"
)

// ---- Basic types

// Value is a representation of a Scheme datum.
//
// String() returns the write form of a value. Types outside this package (such
// as procedures) may implement Value; they are displayed with their String()
// and compared by identity.
type Value interface {
	fmt.Stringer
}

// Boolean is an atomic value representing #t or #f.
type Boolean bool

// Char is an atomic value representing a single character.
type Char struct {
	// Value is the character's code point.
	Value rune
}

// Number is an atomic value representing an exact integer.
type Number struct {
	// Value is the (immutable) numeric value.
	Value goarith.Number
}

// Symbol is an atomic value representing an identifier.
//
// Symbols are interned: there is a single *Symbol per name, so symbols with
// the same name are identical (eq?).
type Symbol struct {
	// Name is the identifier for a symbol.
	Name string
}

// String is a mutable sequence of characters.
type String struct {
	runes []rune
}

// Pair is a compound value holding two values. Chains of pairs ending in the
// empty list form proper lists; any other tail makes the list improper.
type Pair struct {
	// Car is the first element of a pair.
	Car Value
	// Cdr is the rest of a pair, usually another pair or the empty list.
	Cdr Value
}

type emptyList struct{}

type unspecified struct{}

// ---- Public vars

var (
	// True and False are the two boolean values.
	True  = Boolean(true)
	False = Boolean(false)
	// EmptyList is the canonical list terminator, written ().
	EmptyList Value = emptyList{}
	// Unspecified is the value of expressions that have no useful result,
	// such as (newline) or (set! x v).
	Unspecified Value = unspecified{}
)

// ---- Symbols

var (
	symbolsMu sync.Mutex
	symbols   = make(map[string]*Symbol)
)

// Intern returns the unique symbol with the given name.
func Intern(name string) *Symbol {
	symbolsMu.Lock()
	defer symbolsMu.Unlock()
	sym, ok := symbols[name]
	if !ok {
		sym = &Symbol{Name: name}
		symbols[name] = sym
	}
	return sym
}

// ---- Numbers

// NewNumber creates an exact integer from an int64.
func NewNumber(i int64) Number {
	return Number{Value: goarith.AsNumber(i)}
}

// ---- Chars

// NewChar creates a character value.
func NewChar(r rune) Char {
	return Char{Value: r}
}

// ---- Strings

// NewString creates a mutable string with the given contents.
func NewString(text string) *String {
	return &String{runes: []rune(text)}
}

// Text returns the current contents of the string.
func (s *String) Text() string {
	return string(s.runes)
}

// Len returns the number of characters in the string.
func (s *String) Len() int {
	return len(s.runes)
}

// StringIndexError contains data about an out-of-range string access.
type StringIndexError struct {
	Index int
	Len   int
}

func (err *StringIndexError) Error() string {
	return fmt.Sprintf("string index %d out of range (length %d)", err.Index, err.Len)
}

// At returns the i-th character of the string.
func (s *String) At(i int) (rune, error) {
	if i < 0 || i >= len(s.runes) {
		return 0, &StringIndexError{i, len(s.runes)}
	}
	return s.runes[i], nil
}

// Set overwrites the i-th character of the string.
func (s *String) Set(i int, r rune) error {
	if i < 0 || i >= len(s.runes) {
		return &StringIndexError{i, len(s.runes)}
	}
	s.runes[i] = r
	return nil
}

// ---- Pairs and lists

// Cons creates a pair with the provided car and cdr.
func Cons(car, cdr Value) *Pair {
	return &Pair{Car: car, Cdr: cdr}
}

// NewList creates a proper list with the provided values.
func NewList(values ...Value) Value {
	return NewImproperList(values, EmptyList)
}

// NewImproperList creates a list with the provided values and tail. With an
// empty values slice, returns the tail itself.
func NewImproperList(values []Value, tail Value) Value {
	result := tail
	for i := len(values) - 1; i >= 0; i-- {
		result = Cons(values[i], result)
	}
	return result
}

// ListSlice walks a chain of pairs and returns its elements and final tail.
// The tail is EmptyList for a proper list.
func ListSlice(v Value) ([]Value, Value) {
	var values []Value
	for {
		p, ok := v.(*Pair)
		if !ok {
			return values, v
		}
		values = append(values, p.Car)
		v = p.Cdr
	}
}

// ProperSlice returns the elements of a proper list, or false if v is not a
// proper list.
func ProperSlice(v Value) ([]Value, bool) {
	values, tail := ListSlice(v)
	return values, tail == EmptyList
}

// ---- Eqv() and Equal()

// Eqv returns whether v1 and v2 are equivalent: numbers, booleans and
// characters by value, everything else by identity. Interned symbols make
// same-named symbols identical.
func Eqv(v1, v2 Value) bool {
	if x, ok := v1.(Number); ok {
		y, ok := v2.(Number)
		return ok && x.Value.Cmp(y.Value) == 0
	}
	return v1 == v2
}

// Equal returns whether v1 and v2 are structurally equal: pairs recursively,
// strings by contents, everything else as Eqv.
func Equal(v1, v2 Value) bool {
	switch x := v1.(type) {
	case *Pair:
		y, ok := v2.(*Pair)
		return ok && Equal(x.Car, y.Car) && Equal(x.Cdr, y.Cdr)
	case *String:
		y, ok := v2.(*String)
		return ok && x.Text() == y.Text()
	default:
		return Eqv(v1, v2)
	}
}

// ---- Write() and Display()

// Write returns the machine-readable form of a value: strings are quoted and
// escaped, characters appear as #\x.
func Write(v Value) string {
	return v.String()
}

// Display returns the human-readable form of a value: strings and characters
// appear as their raw contents. All other values render as in Write.
func Display(v Value) string {
	var b strings.Builder
	display(v, &b)
	return b.String()
}

func display(v Value, b *strings.Builder) {
	switch t := v.(type) {
	case Char:
		b.WriteRune(t.Value)
	case *String:
		b.WriteString(t.Text())
	case *Pair:
		formatPair(t, b, display)
	default:
		b.WriteString(v.String())
	}
}

func write(v Value, b *strings.Builder) {
	if p, ok := v.(*Pair); ok {
		formatPair(p, b, write)
		return
	}
	b.WriteString(v.String())
}

// formatPair renders a chain of pairs with the conventional list notation,
// placing a dot before the tail of an improper list. Quote forms are not
// abbreviated: (quote x) prints as (quote x), not 'x.
func formatPair(p *Pair, b *strings.Builder, elem func(Value, *strings.Builder)) {
	b.WriteByte('(')
	elem(p.Car, b)
	v := p.Cdr
	for {
		switch t := v.(type) {
		case *Pair:
			b.WriteByte(' ')
			elem(t.Car, b)
			v = t.Cdr
		case emptyList:
			b.WriteByte(')')
			return
		default:
			b.WriteString(" . ")
			elem(v, b)
			b.WriteByte(')')
			return
		}
	}
}

// ---- String()

func (t Boolean) String() string {
	if bool(t) {
		return "#t"
	}
	return "#f"
}

func (t Char) String() string {
	return FormatChar(t.Value)
}

func (t Number) String() string {
	return fmt.Sprintf("%v", t.Value)
}

func (t *Symbol) String() string {
	return t.Name
}

func (s *String) String() string {
	return FormatString(s.runes)
}

func (p *Pair) String() string {
	var b strings.Builder
	formatPair(p, &b, write)
	return b.String()
}

func (emptyList) String() string {
	return "()"
}

func (unspecified) String() string {
	return "#<unspecified>"
}
